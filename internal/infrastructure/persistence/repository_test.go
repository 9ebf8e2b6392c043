package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/document"
	"github.com/propertyhub/backend/internal/domain/finance"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/inspection"
	"github.com/propertyhub/backend/internal/domain/leasing"
	"github.com/propertyhub/backend/internal/domain/maintenance"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
	"github.com/propertyhub/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database with every model migrated.
// A single connection keeps the in-memory database shared across queries.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func newTestProperty(t *testing.T, orgID uuid.UUID, name, city string) *property.Property {
	t.Helper()
	addr, err := valueobject.NewAddress("12 Oak St", city, "TX", "78701", "US")
	require.NoError(t, err)
	p, err := property.NewProperty(orgID, uuid.New(), name, property.TypeApartment, addr)
	require.NoError(t, err)
	return p
}

func TestSaveVersioned(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPropertyRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	p := newTestProperty(t, orgID, "Maple Court", "Austin")
	require.NoError(t, repo.Save(ctx, p))

	t.Run("updates when the stored version matches", func(t *testing.T) {
		require.NoError(t, p.Update("Maple Court East", p.Type, p.Address, "renovated"))
		require.NoError(t, repo.Save(ctx, p))

		found, err := repo.FindByIDForOrg(ctx, orgID, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Maple Court East", found.Name)
		assert.Equal(t, p.Version, found.Version)
	})

	t.Run("stale copy is rejected", func(t *testing.T) {
		stale, err := repo.FindByIDForOrg(ctx, orgID, p.ID)
		require.NoError(t, err)

		require.NoError(t, p.Deactivate())
		require.NoError(t, repo.Save(ctx, p))

		require.NoError(t, stale.Update("Other", stale.Type, stale.Address, ""))
		err = repo.Save(ctx, stale)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	})
}

func TestConstraintError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"nil", nil, nil},
		{"duplicate key", gorm.ErrDuplicatedKey, shared.ErrAlreadyExists},
		{"wrapped duplicate key", fmt.Errorf("insert users: %w", gorm.ErrDuplicatedKey), shared.ErrAlreadyExists},
		{"foreign key", gorm.ErrForeignKeyViolated, shared.ErrInvalidState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := constraintError(tt.err)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		other := errors.New("connection reset")
		assert.Same(t, other, constraintError(other))
	})
}

func TestPropertyRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPropertyRepository(db)
	ctx := context.Background()
	orgID, otherOrg := uuid.New(), uuid.New()

	for _, p := range []*property.Property{
		newTestProperty(t, orgID, "Maple Court", "Austin"),
		newTestProperty(t, orgID, "Birch Lofts", "Dallas"),
		newTestProperty(t, orgID, "Cedar House", "austin"),
		newTestProperty(t, otherOrg, "Foreign Plaza", "Austin"),
	} {
		require.NoError(t, repo.Save(ctx, p))
	}

	tests := []struct {
		name   string
		filter shared.Filter
		want   []string
	}{
		{"all properties sorted by name", shared.Filter{OrderBy: "name", OrderDir: "asc"}, []string{"Birch Lofts", "Cedar House", "Maple Court"}},
		{"city match ignores case", shared.Filter{OrderBy: "name", OrderDir: "asc", Filters: map[string]interface{}{"city": "AUSTIN"}}, []string{"Cedar House", "Maple Court"}},
		{"search by name", shared.Filter{Search: "lofts"}, []string{"Birch Lofts"}},
		{"page window", shared.Filter{OrderBy: "name", OrderDir: "asc", Page: 2, PageSize: 2}, []string{"Maple Court"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindAllForOrg(ctx, orgID, tt.filter)
			require.NoError(t, err)
			names := make([]string, len(got))
			for i := range got {
				names[i] = got[i].Name
			}
			assert.Equal(t, tt.want, names)
		})
	}

	t.Run("count honours the filter", func(t *testing.T) {
		n, err := repo.CountForOrg(ctx, orgID, shared.Filter{Filters: map[string]interface{}{"city": "austin"}})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("other organizations are invisible", func(t *testing.T) {
		foreign, err := repo.FindAllForOrg(ctx, otherOrg, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, foreign, 1)

		_, err = repo.FindByIDForOrg(ctx, orgID, foreign[0].ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.DeleteForOrg(ctx, orgID, foreign[0].ID), shared.ErrNotFound)
	})
}

func TestUnitRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUnitRepository(db)
	ctx := context.Background()
	orgID, propertyID := uuid.New(), uuid.New()

	spec := property.UnitSpec{Bedrooms: 2, Bathrooms: decimal.NewFromFloat(1.5), MarketRent: decimal.NewFromInt(1500)}
	a, err := property.NewUnit(orgID, uuid.New(), propertyID, "4B", spec)
	require.NoError(t, err)
	b, err := property.NewUnit(orgID, uuid.New(), propertyID, "5A", spec)
	require.NoError(t, err)
	require.NoError(t, b.MarkOccupied())
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	t.Run("unit number uniqueness is case-insensitive", func(t *testing.T) {
		exists, err := repo.ExistsByNumber(ctx, orgID, propertyID, "4b", nil)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByNumber(ctx, orgID, propertyID, "4B", &a.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.ExistsByNumber(ctx, orgID, uuid.New(), "4B", nil)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("counts by status and property", func(t *testing.T) {
		counts, err := repo.CountByStatus(ctx, orgID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts[property.UnitStatusVacant])
		assert.Equal(t, int64(1), counts[property.UnitStatusOccupied])
		assert.Equal(t, int64(2), counts.Total())

		n, err := repo.CountByProperty(ctx, orgID, propertyID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("decimal fields round trip", func(t *testing.T) {
		found, err := repo.FindByIDForOrg(ctx, orgID, a.ID)
		require.NoError(t, err)
		assert.True(t, found.Bathrooms.Equal(decimal.NewFromFloat(1.5)))
		assert.True(t, found.MarketRent.Equal(decimal.NewFromInt(1500)))
	})

	t.Run("filter by status", func(t *testing.T) {
		got, err := repo.FindAllForOrg(ctx, orgID, shared.DefaultFilter().With("status", property.UnitStatusOccupied))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "5A", got[0].UnitNumber)
	})
}

func TestLeaseRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormLeaseRepository(db)
	ctx := context.Background()
	orgID, propertyID, unitID, tenantID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	today := leasing.DateOnly(time.Now())

	newLease := func(start, end time.Time, activate bool) *leasing.Lease {
		l, err := leasing.NewLease(orgID, uuid.New(), propertyID, unitID, tenantID, leasing.LeaseTerms{
			StartDate:   start,
			EndDate:     end,
			MonthlyRent: decimal.NewFromInt(1200),
			RentDueDay:  1,
		})
		require.NoError(t, err)
		if activate {
			require.NoError(t, l.Activate())
		}
		require.NoError(t, repo.Save(ctx, l))
		return l
	}

	ended := newLease(today.AddDate(-1, 0, 0), today.AddDate(0, 0, -1), true)
	current := newLease(today.AddDate(0, -6, 0), today.AddDate(0, 0, 20), true)
	draft := newLease(today.AddDate(0, 1, 0), today.AddDate(1, 1, 0), false)

	t.Run("finds leases past their end date", func(t *testing.T) {
		expired, err := repo.FindExpired(ctx, orgID, today)
		require.NoError(t, err)
		require.Len(t, expired, 1)
		assert.Equal(t, ended.ID, expired[0].ID)
	})

	t.Run("active leases by unit and tenant", func(t *testing.T) {
		active, err := repo.FindActiveByUnit(ctx, orgID, unitID)
		require.NoError(t, err)
		assert.Len(t, active, 2)

		n, err := repo.CountActiveByTenant(ctx, orgID, tenantID, &current.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("expiring_before only returns active leases", func(t *testing.T) {
		got, err := repo.FindAllForOrg(ctx, orgID, shared.DefaultFilter().With("expiring_before", today.AddDate(0, 0, 30)))
		require.NoError(t, err)
		ids := []uuid.UUID{}
		for _, l := range got {
			ids = append(ids, l.ID)
		}
		assert.ElementsMatch(t, []uuid.UUID{ended.ID, current.ID}, ids)
		assert.NotContains(t, ids, draft.ID)
	})

	t.Run("dates survive the round trip", func(t *testing.T) {
		found, err := repo.FindByIDForOrg(ctx, orgID, draft.ID)
		require.NoError(t, err)
		assert.True(t, found.StartDate.Equal(draft.StartDate))
		assert.Equal(t, leasing.LeaseStatusDraft, found.Status)
	})
}

func TestTenantRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTenantRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	for _, c := range []leasing.TenantContact{
		{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "555-0100"},
		{FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", Phone: "555-0199"},
		{FirstName: "Grace", LastName: "Hopper", Email: "grace_h@example.com"},
	} {
		tn, err := leasing.NewTenant(orgID, uuid.New(), c)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, tn))
	}

	tests := []struct {
		search string
		want   int64
	}{
		{"lovelace", 1},
		{"EXAMPLE.COM", 3},
		{"555-01", 2},
		{"grace_", 1},
		{"%", 0},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			n, err := repo.CountForOrg(ctx, orgID, shared.Filter{Search: tt.search})
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestMaintenanceRepository_CountOpenByPriority(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormMaintenanceRepository(db)
	ctx := context.Background()
	orgID, propertyID := uuid.New(), uuid.New()

	file := func(priority maintenance.Priority, complete bool) {
		r, err := maintenance.NewRequest(orgID, uuid.New(), propertyID, maintenance.Details{
			Title:    "Leaking tap",
			Category: maintenance.CategoryPlumbing,
			Priority: priority,
		})
		require.NoError(t, err)
		if complete {
			require.NoError(t, r.Start())
			require.NoError(t, r.Complete(nil, "fixed"))
		}
		require.NoError(t, repo.Save(ctx, r))
	}
	file(maintenance.PriorityUrgent, false)
	file(maintenance.PriorityUrgent, false)
	file(maintenance.PriorityLow, false)
	file(maintenance.PriorityHigh, true)

	counts, err := repo.CountOpenByPriority(ctx, orgID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[maintenance.PriorityUrgent])
	assert.Equal(t, int64(1), counts[maintenance.PriorityLow])
	assert.Zero(t, counts[maintenance.PriorityHigh])
	assert.Equal(t, int64(3), counts.Total())
}

func TestTransactionRepository_SumByCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTransactionRepository(db)
	ctx := context.Background()
	orgID, propertyID, requestID := uuid.New(), uuid.New(), uuid.New()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	record := func(typ finance.TransactionType, cat finance.Category, amount string, date time.Time, links finance.Links) *finance.Transaction {
		tx, err := finance.NewTransaction(orgID, uuid.New(), finance.Entry{
			Type:            typ,
			Category:        cat,
			Amount:          decimal.RequireFromString(amount),
			TransactionDate: date,
			Links:           links,
		})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, tx))
		return tx
	}

	onProperty := finance.Links{PropertyID: &propertyID}
	record(finance.TransactionTypeIncome, finance.CategoryRent, "1500.00", day, onProperty)
	record(finance.TransactionTypeIncome, finance.CategoryRent, "1500.00", day.AddDate(0, 0, 5), onProperty)
	record(finance.TransactionTypeExpense, finance.CategoryMaintenance, "250.50", day, finance.Links{PropertyID: &propertyID, MaintenanceRequestID: &requestID})
	record(finance.TransactionTypeIncome, finance.CategoryRent, "900.00", day.AddDate(0, -2, 0), onProperty)
	voided := record(finance.TransactionTypeIncome, finance.CategoryLateFee, "50.00", day, onProperty)
	require.NoError(t, voided.Void("entered twice"))
	require.NoError(t, repo.Save(ctx, voided))

	totals, err := repo.SumByCategory(ctx, orgID, finance.SummaryQuery{
		From:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		PropertyID: &propertyID,
	})
	require.NoError(t, err)

	summary := finance.Summarize(totals)
	assert.Equal(t, "3000", summary.Income.String())
	assert.Equal(t, "250.5", summary.Expense.String())
	assert.Equal(t, "2749.5", summary.Net.String())
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, int64(2), summary.Categories[0].Count)

	t.Run("maintenance link lookup ignores void rows", func(t *testing.T) {
		live, err := repo.FindLiveForMaintenance(ctx, orgID, requestID)
		require.NoError(t, err)
		assert.Equal(t, "250.5", live.Amount.String())

		_, err = repo.FindLiveForMaintenance(ctx, orgID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("date range filter on listing", func(t *testing.T) {
		n, err := repo.CountForOrg(ctx, orgID, shared.DefaultFilter().
			With("date_from", day).
			With("date_to", day).
			With("status", finance.TransactionStatusCompleted))
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("voided maintenance expense is no longer live", func(t *testing.T) {
		live, err := repo.FindLiveForMaintenance(ctx, orgID, requestID)
		require.NoError(t, err)
		require.NoError(t, live.Void("superseded"))
		require.NoError(t, repo.Save(ctx, live))

		_, err = repo.FindLiveForMaintenance(ctx, orgID, requestID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestInspectionRepository_Items(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInspectionRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	in, err := inspection.NewInspection(orgID, uuid.New(), inspection.ScheduleParams{
		PropertyID:    uuid.New(),
		Type:          inspection.TypeMoveIn,
		ScheduledDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, in))
	require.NoError(t, in.Start())
	require.NoError(t, in.RecordItems([]inspection.Item{
		{Area: "Kitchen", Item: "Sink", Condition: inspection.ConditionGood},
		{Area: "Bedroom", Item: "Window", Condition: inspection.ConditionDamaged},
	}))
	require.NoError(t, repo.Save(ctx, in))

	found, err := repo.FindByIDForOrg(ctx, orgID, in.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 2)
	assert.Equal(t, "Sink", found.Items[0].Item)
	assert.Equal(t, 1, found.Items[1].SortOrder)

	t.Run("saving replaces the checklist", func(t *testing.T) {
		require.NoError(t, found.RecordItems(found.Items[:1]))
		require.NoError(t, repo.Save(ctx, found))

		again, err := repo.FindByIDForOrg(ctx, orgID, in.ID)
		require.NoError(t, err)
		assert.Len(t, again.Items, 1)
	})

	t.Run("listing omits items", func(t *testing.T) {
		list, err := repo.FindAllForOrg(ctx, orgID, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Empty(t, list[0].Items)
	})

	t.Run("delete removes items too", func(t *testing.T) {
		require.NoError(t, repo.DeleteForOrg(ctx, orgID, in.ID))
		var n int64
		require.NoError(t, db.Model(&models.InspectionItemModel{}).Where("inspection_id = ?", in.ID).Count(&n).Error)
		assert.Zero(t, n)
	})
}

func TestDocumentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormDocumentRepository(db)
	ctx := context.Background()
	orgID := uuid.New()

	upload := func(name string) *document.Document {
		d, err := document.NewPendingDocument(orgID, uuid.New(), document.UploadParams{
			FileName:    name,
			ContentType: "application/pdf",
			FileSize:    1024,
		})
		require.NoError(t, err)
		return d
	}

	active := upload("lease.pdf")
	require.NoError(t, active.Confirm())
	require.NoError(t, repo.Save(ctx, active))

	stale := upload("abandoned.pdf")
	stale.CreatedAt = time.Now().UTC().Add(-48 * time.Hour)
	require.NoError(t, repo.Save(ctx, stale))

	fresh := upload("fresh.pdf")
	require.NoError(t, repo.Save(ctx, fresh))

	deleted := upload("old.pdf")
	require.NoError(t, deleted.Confirm())
	require.NoError(t, deleted.MarkDeleted())
	require.NoError(t, repo.Save(ctx, deleted))

	t.Run("listing shows active documents only", func(t *testing.T) {
		docs, err := repo.FindAllForOrg(ctx, orgID, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, active.ID, docs[0].ID)
	})

	t.Run("deleted documents are not found", func(t *testing.T) {
		_, err := repo.FindByIDForOrg(ctx, orgID, deleted.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("stale pending uploads", func(t *testing.T) {
		docs, err := repo.FindStalePending(ctx, orgID, time.Now().Add(-24*time.Hour), 10)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, stale.ID, docs[0].ID)

		require.NoError(t, repo.HardDelete(ctx, orgID, stale.ID))
		assert.ErrorIs(t, repo.HardDelete(ctx, orgID, stale.ID), shared.ErrNotFound)
	})
}

func TestIdentityRepositories(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	orgs := NewGormOrganizationRepository(db)
	users := NewGormUserRepository(db)
	members := NewGormTeamMemberRepository(db)
	settings := NewGormSettingsRepository(db)

	org, err := identity.NewOrganization("Acme Rentals")
	require.NoError(t, err)
	require.NoError(t, orgs.Save(ctx, org))

	suspended, err := identity.NewOrganization("Dormant LLC")
	require.NoError(t, err)
	require.NoError(t, suspended.Suspend())
	require.NoError(t, orgs.Save(ctx, suspended))

	user, err := identity.NewUser(org.ID, "Owner@Example.com", "Sup3r-secret!", "Olive", "Owner")
	require.NoError(t, err)
	require.NoError(t, users.Save(ctx, user))
	require.NoError(t, members.Save(ctx, identity.NewOwnerMember(org.ID, user)))

	t.Run("active organizations", func(t *testing.T) {
		ids, err := orgs.FindActiveIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{org.ID}, ids)

		bySlug, err := orgs.FindBySlug(ctx, org.Slug)
		require.NoError(t, err)
		assert.Equal(t, org.ID, bySlug.ID)
	})

	t.Run("duplicate email loses the race with already exists", func(t *testing.T) {
		dup, err := identity.NewUser(org.ID, "owner@example.com", "An0ther-secret!", "Otto", "Owner")
		require.NoError(t, err)
		assert.ErrorIs(t, users.Save(ctx, dup), shared.ErrAlreadyExists)
	})

	t.Run("email lookup is normalized", func(t *testing.T) {
		found, err := users.FindByEmail(ctx, "  owner@EXAMPLE.com ")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		exists, err := users.ExistsByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("pending invitations and owners", func(t *testing.T) {
		invite, err := identity.NewInvitedMember(org.ID, user.ID, "new@example.com", "Nia", identity.RoleManager, "tok")
		require.NoError(t, err)
		require.NoError(t, members.Save(ctx, invite))

		pending, err := members.FindPendingByEmail(ctx, "NEW@example.com")
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, identity.RoleManager, pending[0].Role)

		current, err := members.FindCurrentByEmail(ctx, org.ID, "new@example.com")
		require.NoError(t, err)
		assert.Equal(t, invite.ID, current.ID)

		owners, err := members.CountActiveOwners(ctx, org.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), owners)

		n, err := members.CountForOrg(ctx, org.ID, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("settings keep widget order", func(t *testing.T) {
		s := identity.NewDefaultSettings(org.ID, user.ID, valueobject.USD)
		require.NoError(t, s.SetDashboardWidgets([]string{"open_maintenance", "occupancy"}))
		require.NoError(t, settings.Save(ctx, s))

		found, err := settings.FindByUser(ctx, org.ID, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []identity.DashboardWidget{identity.WidgetOpenMaintenance, identity.WidgetOccupancy}, found.DashboardWidgets)

		_, err = settings.FindByUser(ctx, uuid.New(), user.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
