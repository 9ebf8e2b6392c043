// Package pdf renders HTML documents to PDF through headless Chrome.
package pdf

import (
	"context"
	"errors"
	"time"
)

// PaperSize is a named page format
type PaperSize string

const (
	PaperLetter PaperSize = "LETTER"
	PaperA4     PaperSize = "A4"
)

// Dimensions returns width and height in millimeters
func (p PaperSize) Dimensions() (float64, float64) {
	switch p {
	case PaperA4:
		return 210, 297
	default:
		return 215.9, 279.4
	}
}

// Margins in millimeters
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// DefaultMargins returns 12mm on every side
func DefaultMargins() Margins {
	return Margins{Top: 12, Right: 12, Bottom: 12, Left: 12}
}

// RenderRequest describes one HTML to PDF conversion
type RenderRequest struct {
	HTML       string
	Title      string
	PaperSize  PaperSize
	Landscape  bool
	Margins    Margins
	FooterHTML string
	// Timeout overrides the renderer default
	Timeout time.Duration
}

// Renderer converts HTML to PDF
type Renderer interface {
	Render(ctx context.Context, req *RenderRequest) ([]byte, error)
	Close() error
}

var (
	ErrEmptyHTML     = errors.New("pdf: html content is empty")
	ErrRenderTimeout = errors.New("pdf: rendering timed out")
	ErrRenderFailed  = errors.New("pdf: rendering failed")
	ErrClosed        = errors.New("pdf: renderer is closed")
)

func mmToInches(mm float64) float64 {
	return mm / 25.4
}
