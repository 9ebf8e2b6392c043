package finance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/finance"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/leasing"
	"github.com/propertyhub/backend/internal/domain/maintenance"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// LinkRepositories groups the repositories used to validate transaction links
type LinkRepositories struct {
	Properties  property.PropertyRepository
	Units       property.UnitRepository
	Leases      leasing.LeaseRepository
	Tenants     leasing.TenantRepository
	Maintenance maintenance.RequestRepository
}

// TransactionService handles income and expense bookkeeping
type TransactionService struct {
	transactionRepo finance.TransactionRepository
	orgRepo         identity.OrganizationRepository
	settingsRepo    identity.SettingsRepository
	links           LinkRepositories
	renderer        finance.StatementRenderer
	publisher       *appevent.Publisher
	logger          *zap.Logger
	now             func() time.Time
}

// NewTransactionService creates a new TransactionService. renderer may be nil,
// in which case statements are unavailable.
func NewTransactionService(
	transactionRepo finance.TransactionRepository,
	orgRepo identity.OrganizationRepository,
	settingsRepo identity.SettingsRepository,
	links LinkRepositories,
	renderer finance.StatementRenderer,
	publisher *appevent.Publisher,
	logger *zap.Logger,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		orgRepo:         orgRepo,
		settingsRepo:    settingsRepo,
		links:           links,
		renderer:        renderer,
		publisher:       publisher,
		logger:          logger,
		now:             time.Now,
	}
}

// Record creates a transaction. The currency defaults to the organization's.
func (s *TransactionService) Record(ctx context.Context, orgID, userID uuid.UUID, req RecordTransactionRequest) (*TransactionResponse, error) {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	entry := req.entry(org.DefaultCurrency)
	if err := s.checkLinks(ctx, orgID, entry.Links); err != nil {
		return nil, err
	}

	tx, err := finance.NewTransaction(orgID, userID, entry)
	if err != nil {
		return nil, err
	}
	if err := s.transactionRepo.Save(ctx, tx); err != nil {
		s.logger.Error("Failed to save transaction", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, tx)

	s.logger.Info("Transaction recorded",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("type", string(tx.Type)),
		zap.String("category", string(tx.Category)),
		zap.String("amount", tx.Amount.String()))

	resp := ToTransactionResponse(tx)
	return &resp, nil
}

// GetByID retrieves a transaction
func (s *TransactionService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*TransactionResponse, error) {
	tx, err := s.transactionRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	resp := ToTransactionResponse(tx)
	return &resp, nil
}

// List retrieves transactions with filtering and pagination
func (s *TransactionService) List(ctx context.Context, orgID uuid.UUID, filter TransactionListFilter) ([]TransactionResponse, int64, error) {
	f := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir, filter.Search)
	if filter.OrderBy == "" {
		f.OrderBy = "transaction_date"
	}
	for key, value := range map[string]string{
		"type":     filter.Type,
		"category": filter.Category,
		"status":   filter.Status,
	} {
		if value != "" {
			f.Filters[key] = value
		}
	}
	for key, raw := range map[string]string{
		"property_id": filter.PropertyID,
		"unit_id":     filter.UnitID,
		"lease_id":    filter.LeaseID,
		"tenant_id":   filter.TenantID,
	} {
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, 0, shared.NewDomainError(shared.ErrInvalidInput.Code, "Invalid "+key)
		}
		f.Filters[key] = id
	}
	from, to, err := periodBounds(filter.DateFrom, filter.DateTo)
	if err != nil {
		return nil, 0, err
	}
	if !from.IsZero() {
		f.Filters["date_from"] = from
	}
	if !to.IsZero() {
		f.Filters["date_to"] = to
	}

	txs, err := s.transactionRepo.FindAllForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.transactionRepo.CountForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	return ToTransactionResponses(txs), total, nil
}

// Update changes a transaction that is not void
func (s *TransactionService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateTransactionRequest) (*TransactionResponse, error) {
	tx, err := s.transactionRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if tx.IsVoid() {
		return nil, shared.NewDomainError(shared.ErrInvalidState.Code, "Void transactions cannot be edited")
	}
	entry := req.merge(tx)
	if err := s.checkLinks(ctx, orgID, entry.Links); err != nil {
		return nil, err
	}
	if err := tx.Update(entry); err != nil {
		return nil, err
	}
	if err := s.transactionRepo.Save(ctx, tx); err != nil {
		s.logger.Error("Failed to update transaction", zap.Error(err))
		return nil, err
	}
	s.publisher.Publish(ctx, tx)

	resp := ToTransactionResponse(tx)
	return &resp, nil
}

// Void cancels a transaction so it no longer counts toward totals
func (s *TransactionService) Void(ctx context.Context, orgID, id uuid.UUID, req VoidTransactionRequest) (*TransactionResponse, error) {
	tx, err := s.transactionRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Void(req.Reason); err != nil {
		return nil, err
	}
	if err := s.transactionRepo.Save(ctx, tx); err != nil {
		s.logger.Error("Failed to void transaction", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, tx)

	s.logger.Info("Transaction voided",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("reason", tx.VoidReason))

	resp := ToTransactionResponse(tx)
	return &resp, nil
}

// Summary totals completed income and expense for a period
func (s *TransactionService) Summary(ctx context.Context, orgID uuid.UUID, req SummaryRequest) (*SummaryResponse, error) {
	query, err := s.summaryQuery(ctx, orgID, req)
	if err != nil {
		return nil, err
	}
	totals, err := s.transactionRepo.SumByCategory(ctx, orgID, query)
	if err != nil {
		return nil, err
	}

	resp := ToSummaryResponse(finance.Summarize(totals))
	if !query.From.IsZero() {
		resp.DateFrom = &query.From
	}
	if !query.To.IsZero() {
		resp.DateTo = &query.To
	}
	resp.PropertyID = query.PropertyID
	return &resp, nil
}

// Statement renders the summary and completed transactions of a period as a PDF.
// Without a date range the statement covers the current month to date.
func (s *TransactionService) Statement(ctx context.Context, orgID, userID uuid.UUID, req SummaryRequest) (*StatementResult, error) {
	if s.renderer == nil {
		return nil, finance.ErrStatementRendererUnavailable
	}

	now := s.now().UTC()
	if req.DateFrom == nil && req.DateTo == nil {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		req.DateFrom, req.DateTo = &start, &now
	}
	query, err := s.summaryQuery(ctx, orgID, req)
	if err != nil {
		return nil, err
	}

	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	st := &finance.Statement{
		OrganizationName: org.Name,
		From:             query.From,
		To:               query.To,
		Currency:         org.DefaultCurrency,
		Locale:           valueobject.DefaultLocale,
		GeneratedAt:      now,
	}
	if settings, err := s.settingsRepo.FindByUser(ctx, orgID, userID); err == nil {
		st.Locale = settings.Locale
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if query.PropertyID != nil {
		p, err := s.links.Properties.FindByIDForOrg(ctx, orgID, *query.PropertyID)
		if err != nil {
			return nil, err
		}
		st.PropertyName = p.Name
	}

	totals, err := s.transactionRepo.SumByCategory(ctx, orgID, query)
	if err != nil {
		return nil, err
	}
	st.Summary = finance.Summarize(totals)

	f := shared.Filter{
		OrderBy:  "transaction_date",
		OrderDir: "asc",
		Filters: map[string]interface{}{
			"status":    string(finance.TransactionStatusCompleted),
			"date_from": query.From,
			"date_to":   query.To,
		},
	}
	if query.PropertyID != nil {
		f.Filters["property_id"] = *query.PropertyID
	}
	txs, err := s.transactionRepo.FindAllForOrg(ctx, orgID, f)
	if err != nil {
		return nil, err
	}
	st.Transactions = make([]*finance.Transaction, len(txs))
	for i := range txs {
		st.Transactions[i] = &txs[i]
	}

	content, err := s.renderer.RenderStatement(ctx, st)
	if err != nil {
		s.logger.Error("Failed to render statement", zap.String("org_id", orgID.String()), zap.Error(err))
		return nil, fmt.Errorf("render statement: %w", err)
	}

	s.logger.Info("Statement generated",
		zap.String("org_id", orgID.String()),
		zap.Int("transactions", len(txs)),
		zap.Int("bytes", len(content)))

	return &StatementResult{
		FileName: fmt.Sprintf("statement-%s-%s.pdf", query.From.Format("20060102"), query.To.Format("20060102")),
		Content:  content,
	}, nil
}

func (s *TransactionService) summaryQuery(ctx context.Context, orgID uuid.UUID, req SummaryRequest) (finance.SummaryQuery, error) {
	var q finance.SummaryQuery
	from, to, err := periodBounds(req.DateFrom, req.DateTo)
	if err != nil {
		return q, err
	}
	q.From, q.To = from, to
	if req.PropertyID != "" {
		id, err := uuid.Parse(req.PropertyID)
		if err != nil {
			return q, shared.NewDomainError(shared.ErrInvalidInput.Code, "Invalid property_id")
		}
		if _, err := s.links.Properties.FindByIDForOrg(ctx, orgID, id); err != nil {
			return q, err
		}
		q.PropertyID = &id
	}
	return q, nil
}

// checkLinks verifies that every linked record exists in the organization and
// that a linked unit belongs to the linked property
func (s *TransactionService) checkLinks(ctx context.Context, orgID uuid.UUID, links finance.Links) error {
	if id := links.PropertyID; id != nil {
		if _, err := s.links.Properties.FindByIDForOrg(ctx, orgID, *id); err != nil {
			return linkError("property", err)
		}
	}
	if id := links.UnitID; id != nil {
		unit, err := s.links.Units.FindByIDForOrg(ctx, orgID, *id)
		if err != nil {
			return linkError("unit", err)
		}
		if links.PropertyID != nil && unit.PropertyID != *links.PropertyID {
			return shared.NewDomainError("INVALID_LINK", "Unit does not belong to the property")
		}
	}
	if id := links.LeaseID; id != nil {
		if _, err := s.links.Leases.FindByIDForOrg(ctx, orgID, *id); err != nil {
			return linkError("lease", err)
		}
	}
	if id := links.TenantID; id != nil {
		if _, err := s.links.Tenants.FindByIDForOrg(ctx, orgID, *id); err != nil {
			return linkError("tenant", err)
		}
	}
	if id := links.MaintenanceRequestID; id != nil && s.links.Maintenance != nil {
		if _, err := s.links.Maintenance.FindByIDForOrg(ctx, orgID, *id); err != nil {
			return linkError("maintenance request", err)
		}
	}
	return nil
}

func linkError(what string, err error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewDomainError("INVALID_LINK", "Linked "+what+" does not exist")
	}
	return err
}

// periodBounds turns optional calendar dates into an inclusive UTC range.
// The end date covers its whole day.
func periodBounds(from, to *time.Time) (time.Time, time.Time, error) {
	var start, end time.Time
	if from != nil {
		start = leasing.DateOnly(*from)
	}
	if to != nil {
		end = leasing.DateOnly(*to).Add(24*time.Hour - time.Nanosecond)
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return start, end, shared.NewDomainError("INVALID_DATE_RANGE", "date_to must not be before date_from")
	}
	return start, end, nil
}
