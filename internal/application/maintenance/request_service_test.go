package maintenance

import (
	"context"
	"testing"

	"github.com/google/uuid"
	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/maintenance"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type requestFixture struct {
	orgID      uuid.UUID
	userID     uuid.UUID
	requests   *MockRequestRepository
	properties *MockPropertyRepository
	units      *MockUnitRepository
	tenants    *MockTenantRepository
	members    *MockTeamMemberRepository
	bus        *recordingBus
	svc        *RequestService
}

func newRequestFixture() *requestFixture {
	f := &requestFixture{
		orgID:      uuid.New(),
		userID:     uuid.New(),
		requests:   new(MockRequestRepository),
		properties: new(MockPropertyRepository),
		units:      new(MockUnitRepository),
		tenants:    new(MockTenantRepository),
		members:    new(MockTeamMemberRepository),
		bus:        &recordingBus{},
	}
	f.svc = NewRequestService(f.requests, f.properties, f.units, f.tenants, f.members,
		appevent.NewPublisher(f.bus, nil), zap.NewNop())
	return f
}

func (f *requestFixture) property(t *testing.T) *property.Property {
	t.Helper()
	addr, err := valueobject.NewAddress("9 Elm St", "Austin", "TX", "78701", "US")
	require.NoError(t, err)
	p, err := property.NewProperty(f.orgID, f.userID, "Elm House", property.TypeApartment, addr)
	require.NoError(t, err)
	return p
}

func (f *requestFixture) request(t *testing.T, status maintenance.Status) *maintenance.Request {
	t.Helper()
	r, err := maintenance.NewRequest(f.orgID, f.userID, uuid.New(), maintenance.Details{
		Title:    "Leaking faucet",
		Category: maintenance.CategoryPlumbing,
	})
	require.NoError(t, err)
	r.Status = status
	r.ClearDomainEvents()
	return r
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	de, ok := shared.AsDomainError(err)
	require.True(t, ok, "expected domain error, got %v", err)
	return de.Code
}

func TestRequestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults priority and publishes creation", func(t *testing.T) {
		f := newRequestFixture()
		p := f.property(t)
		f.properties.On("FindByIDForOrg", ctx, f.orgID, p.ID).Return(p, nil)
		f.requests.On("Save", ctx, mock.AnythingOfType("*maintenance.Request")).Return(nil)

		resp, err := f.svc.Create(ctx, f.orgID, f.userID, CreateRequestRequest{
			PropertyID: p.ID,
			Title:      "  Broken heater ",
			Category:   "hvac",
		})
		require.NoError(t, err)

		assert.Equal(t, "Broken heater", resp.Title)
		assert.Equal(t, "medium", resp.Priority)
		assert.Equal(t, "open", resp.Status)
		assert.Equal(t, []string{maintenance.EventTypeRequestCreated}, f.bus.types())
		f.requests.AssertExpectations(t)
	})

	t.Run("unit from another property is rejected", func(t *testing.T) {
		f := newRequestFixture()
		p := f.property(t)
		u, err := property.NewUnit(f.orgID, f.userID, uuid.New(), "2B", property.UnitSpec{})
		require.NoError(t, err)
		f.properties.On("FindByIDForOrg", ctx, f.orgID, p.ID).Return(p, nil)
		f.units.On("FindByIDForOrg", ctx, f.orgID, u.ID).Return(u, nil)

		_, err = f.svc.Create(ctx, f.orgID, f.userID, CreateRequestRequest{
			PropertyID: p.ID,
			UnitID:     &u.ID,
			Title:      "Door sticks",
		})

		assert.Equal(t, "INVALID_UNIT", errorCode(t, err))
		f.requests.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown tenant is rejected", func(t *testing.T) {
		f := newRequestFixture()
		p := f.property(t)
		tenantID := uuid.New()
		f.properties.On("FindByIDForOrg", ctx, f.orgID, p.ID).Return(p, nil)
		f.tenants.On("FindByIDForOrg", ctx, f.orgID, tenantID).Return(nil, shared.ErrNotFound)

		_, err := f.svc.Create(ctx, f.orgID, f.userID, CreateRequestRequest{
			PropertyID: p.ID,
			TenantID:   &tenantID,
			Title:      "Mold in bathroom",
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("missing property", func(t *testing.T) {
		f := newRequestFixture()
		id := uuid.New()
		f.properties.On("FindByIDForOrg", ctx, f.orgID, id).Return(nil, shared.ErrNotFound)

		_, err := f.svc.Create(ctx, f.orgID, f.userID, CreateRequestRequest{PropertyID: id, Title: "x"})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestRequestService_Transitions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		from   maintenance.Status
		call   func(s *RequestService, ctx context.Context, orgID, id uuid.UUID) (*RequestResponse, error)
		want   maintenance.Status
		errMsg string
	}{
		{"start open", maintenance.StatusOpen, (*RequestService).Start, maintenance.StatusInProgress, ""},
		{"hold in progress", maintenance.StatusInProgress, (*RequestService).Hold, maintenance.StatusOnHold, ""},
		{"resume on hold", maintenance.StatusOnHold, (*RequestService).Resume, maintenance.StatusInProgress, ""},
		{"cancel on hold", maintenance.StatusOnHold, (*RequestService).Cancel, maintenance.StatusCancelled, ""},
		{"reopen cancelled", maintenance.StatusCancelled, (*RequestService).Reopen, maintenance.StatusOpen, ""},
		{"hold open", maintenance.StatusOpen, (*RequestService).Hold, "", "INVALID_STATE"},
		{"cancel completed", maintenance.StatusCompleted, (*RequestService).Cancel, "", "INVALID_STATE"},
		{"reopen open", maintenance.StatusOpen, (*RequestService).Reopen, "", "INVALID_STATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRequestFixture()
			r := f.request(t, tt.from)
			f.requests.On("FindByIDForOrg", ctx, f.orgID, r.ID).Return(r, nil)
			f.requests.On("Save", ctx, r).Return(nil).Maybe()

			resp, err := tt.call(f.svc, ctx, f.orgID, r.ID)

			if tt.errMsg != "" {
				assert.Equal(t, tt.errMsg, errorCode(t, err))
				f.requests.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				assert.Empty(t, f.bus.events)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, string(tt.want), resp.Status)
			assert.Equal(t, []string{maintenance.EventTypeRequestStatusChanged}, f.bus.types())
		})
	}
}

func TestRequestService_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("records cost and publishes completion", func(t *testing.T) {
		f := newRequestFixture()
		r := f.request(t, maintenance.StatusInProgress)
		f.requests.On("FindByIDForOrg", ctx, f.orgID, r.ID).Return(r, nil)
		f.requests.On("Save", ctx, r).Return(nil)

		cost := decimal.RequireFromString("185.40")
		resp, err := f.svc.Complete(ctx, f.orgID, r.ID, CompleteRequest{ActualCost: &cost, Notes: "Replaced cartridge"})
		require.NoError(t, err)

		assert.Equal(t, "completed", resp.Status)
		assert.NotNil(t, resp.CompletedAt)
		assert.True(t, cost.Equal(*resp.ActualCost))
		assert.Equal(t, []string{
			maintenance.EventTypeRequestStatusChanged,
			maintenance.EventTypeRequestCompleted,
		}, f.bus.types())
	})

	t.Run("negative cost is rejected", func(t *testing.T) {
		f := newRequestFixture()
		r := f.request(t, maintenance.StatusInProgress)
		f.requests.On("FindByIDForOrg", ctx, f.orgID, r.ID).Return(r, nil)

		cost := decimal.NewFromInt(-5)
		_, err := f.svc.Complete(ctx, f.orgID, r.ID, CompleteRequest{ActualCost: &cost})

		assert.Equal(t, "INVALID_COST", errorCode(t, err))
	})
}

func TestRequestService_Assign(t *testing.T) {
	ctx := context.Background()

	t.Run("active member", func(t *testing.T) {
		f := newRequestFixture()
		r := f.request(t, maintenance.StatusOpen)
		assignee := uuid.New()
		f.members.On("FindByUser", ctx, f.orgID, assignee).
			Return(&identity.TeamMember{UserID: &assignee, Status: identity.MemberStatusActive}, nil)
		f.requests.On("FindByIDForOrg", ctx, f.orgID, r.ID).Return(r, nil)
		f.requests.On("Save", ctx, r).Return(nil)

		resp, err := f.svc.Assign(ctx, f.orgID, r.ID, AssignRequest{UserID: assignee})
		require.NoError(t, err)

		assert.Equal(t, assignee, *resp.AssignedTo)
		assert.Equal(t, "open", resp.Status)
	})

	tests := []struct {
		name   string
		member *identity.TeamMember
		err    error
	}{
		{"not a member", nil, shared.ErrNotFound},
		{"removed member", &identity.TeamMember{Status: identity.MemberStatusRemoved}, nil},
		{"pending invite", &identity.TeamMember{Status: identity.MemberStatusInvited}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRequestFixture()
			assignee := uuid.New()
			if tt.member == nil {
				f.members.On("FindByUser", ctx, f.orgID, assignee).Return(nil, tt.err)
			} else {
				f.members.On("FindByUser", ctx, f.orgID, assignee).Return(tt.member, nil)
			}

			_, err := f.svc.Assign(ctx, f.orgID, uuid.New(), AssignRequest{UserID: assignee})

			assert.Equal(t, "INVALID_ASSIGNEE", errorCode(t, err))
			f.requests.AssertNotCalled(t, "FindByIDForOrg", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRequestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps omitted fields", func(t *testing.T) {
		f := newRequestFixture()
		r := f.request(t, maintenance.StatusOpen)
		f.requests.On("FindByIDForOrg", ctx, f.orgID, r.ID).Return(r, nil)
		f.requests.On("Save", ctx, r).Return(nil)

		priority := "urgent"
		resp, err := f.svc.Update(ctx, f.orgID, r.ID, UpdateRequestRequest{Priority: &priority})
		require.NoError(t, err)

		assert.Equal(t, "urgent", resp.Priority)
		assert.Equal(t, "Leaking faucet", resp.Title)
		assert.Equal(t, "plumbing", resp.Category)
		assert.Equal(t, []string{maintenance.EventTypeRequestUpdated}, f.bus.types())
	})

	t.Run("closed request cannot be edited", func(t *testing.T) {
		f := newRequestFixture()
		r := f.request(t, maintenance.StatusCompleted)
		f.requests.On("FindByIDForOrg", ctx, f.orgID, r.ID).Return(r, nil)

		title := "New title"
		_, err := f.svc.Update(ctx, f.orgID, r.ID, UpdateRequestRequest{Title: &title})

		assert.Equal(t, "INVALID_STATE", errorCode(t, err))
	})
}

func TestRequestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("passes parsed filters", func(t *testing.T) {
		f := newRequestFixture()
		propertyID := uuid.New()
		matcher := mock.MatchedBy(func(fl shared.Filter) bool {
			return fl.Filters["property_id"] == propertyID && fl.Filters["status"] == "open" && fl.Page == 2
		})
		f.requests.On("FindAllForOrg", ctx, f.orgID, matcher).Return([]maintenance.Request{*f.request(t, maintenance.StatusOpen)}, nil)
		f.requests.On("CountForOrg", ctx, f.orgID, matcher).Return(int64(21), nil)

		items, total, err := f.svc.List(ctx, f.orgID, RequestListFilter{
			Status:     "open",
			PropertyID: propertyID.String(),
			Page:       2,
			PageSize:   20,
		})
		require.NoError(t, err)

		assert.Len(t, items, 1)
		assert.Equal(t, int64(21), total)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newRequestFixture()

		_, _, err := f.svc.List(ctx, f.orgID, RequestListFilter{AssignedTo: "nope"})

		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestRequestService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newRequestFixture()
	r := f.request(t, maintenance.StatusOpen)
	f.requests.On("FindByIDForOrg", ctx, f.orgID, r.ID).Return(r, nil)
	f.requests.On("DeleteForOrg", ctx, f.orgID, r.ID).Return(nil)

	require.NoError(t, f.svc.Delete(ctx, f.orgID, r.ID))
	f.requests.AssertExpectations(t)
	assert.Equal(t, []string{maintenance.EventTypeRequestDeleted}, f.bus.types())
}
