package pdf

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/propertyhub/backend/internal/domain/finance"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const statementDateLayout = "Jan 2, 2006"

const statementTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 11px; color: #1f2933; }
h1 { font-size: 20px; margin: 0 0 4px; }
.muted { color: #616e7c; }
table { width: 100%; border-collapse: collapse; margin-top: 12px; }
th, td { padding: 5px 6px; border-bottom: 1px solid #e4e7eb; text-align: left; }
th { background: #f5f7fa; font-weight: 600; }
td.num, th.num { text-align: right; }
.totals td { font-weight: 600; }
.expense { color: #b42318; }
</style>
</head>
<body>
<h1>{{.OrganizationName}}</h1>
<div class="muted">Financial statement{{if .PropertyName}} for {{.PropertyName}}{{end}}</div>
<div class="muted">{{date .From}} to {{date .To}} ({{.Currency}})</div>

<table>
<tr><th>Summary</th><th class="num">Amount</th></tr>
<tr><td>Income</td><td class="num">{{money .Summary.Income}}</td></tr>
<tr><td>Expenses</td><td class="num expense">{{money .Summary.Expense}}</td></tr>
<tr class="totals"><td>Net</td><td class="num">{{money .Summary.Net}}</td></tr>
</table>

{{if .Summary.Categories}}
<table>
<tr><th>Category</th><th>Type</th><th class="num">Count</th><th class="num">Total</th></tr>
{{range .Summary.Categories}}
<tr><td>{{label .Category}}</td><td>{{label .Type}}</td><td class="num">{{.Count}}</td><td class="num">{{money .Total}}</td></tr>
{{end}}
</table>
{{end}}

<table>
<tr><th>Date</th><th>Description</th><th>Category</th><th>Reference</th><th class="num">Amount</th></tr>
{{range .Transactions}}
<tr>
<td>{{date .TransactionDate}}</td>
<td>{{.Description}}</td>
<td>{{label .Category}}</td>
<td>{{.Reference}}</td>
<td class="num{{if eq .Type "expense"}} expense{{end}}">{{money .SignedAmount}}</td>
</tr>
{{else}}
<tr><td colspan="5" class="muted">No transactions in this period</td></tr>
{{end}}
</table>

<p class="muted">Generated {{datetime .GeneratedAt}}</p>
</body>
</html>`

// StatementRenderer renders finance statements through an HTML template
type StatementRenderer struct {
	renderer Renderer
	tmpl     *template.Template
}

var _ finance.StatementRenderer = (*StatementRenderer)(nil)

// NewStatementRenderer parses the statement template
func NewStatementRenderer(renderer Renderer) (*StatementRenderer, error) {
	tmpl, err := template.New("statement").Funcs(template.FuncMap{
		// money is replaced per render with the statement currency
		"money":    func(decimal.Decimal) string { return "" },
		"date":     func(t time.Time) string { return t.Format(statementDateLayout) },
		"datetime": func(t time.Time) string { return t.UTC().Format("2006-01-02 15:04 MST") },
		"label":    label,
	}).Parse(statementTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse statement template: %w", err)
	}
	return &StatementRenderer{renderer: renderer, tmpl: tmpl}, nil
}

type statementView struct {
	*finance.Statement
	Title string
}

// RenderHTML executes the statement template
func (s *StatementRenderer) RenderHTML(st *finance.Statement) (string, error) {
	if st == nil {
		return "", fmt.Errorf("statement is nil")
	}
	tag, err := valueobject.ParseLocale(st.Locale)
	if err != nil {
		tag = language.AmericanEnglish
	}

	tmpl, err := s.tmpl.Clone()
	if err != nil {
		return "", fmt.Errorf("failed to clone statement template: %w", err)
	}
	tmpl.Funcs(template.FuncMap{
		"money": func(d decimal.Decimal) string { return valueobject.FormatAmount(d, st.Currency, tag) },
	})

	var buf bytes.Buffer
	view := statementView{Statement: st, Title: statementTitle(st)}
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to execute statement template: %w", err)
	}
	return buf.String(), nil
}

// RenderStatement renders the statement HTML and prints it
func (s *StatementRenderer) RenderStatement(ctx context.Context, st *finance.Statement) ([]byte, error) {
	doc, err := s.RenderHTML(st)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(ctx, &RenderRequest{
		HTML:       doc,
		Title:      statementTitle(st),
		PaperSize:  PaperLetter,
		FooterHTML: `<div style="font-size:8px;width:100%;text-align:center;">Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`,
	})
}

func statementTitle(st *finance.Statement) string {
	return fmt.Sprintf("%s statement %s to %s", st.OrganizationName,
		st.From.Format("2006-01-02"), st.To.Format("2006-01-02"))
}

// label turns snake_case enum values into display text
func label(v any) string {
	return cases.Title(language.English).String(strings.ReplaceAll(fmt.Sprint(v), "_", " "))
}
