package finance

import (
	"context"
	"errors"
	"time"

	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
)

// ErrStatementRendererUnavailable is returned when PDF statements are disabled
var ErrStatementRendererUnavailable = errors.New("statement rendering is not available")

// Statement is the printable financial statement for a period
type Statement struct {
	OrganizationName string
	PropertyName     string
	From             time.Time
	To               time.Time
	Currency         valueobject.Currency
	Locale           string
	Summary          Summary
	Transactions     []*Transaction
	GeneratedAt      time.Time
}

// StatementRenderer turns a Statement into a PDF document
type StatementRenderer interface {
	RenderStatement(ctx context.Context, s *Statement) ([]byte, error)
}
