package persistence

import (
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// saveVersioned writes model with an optimistic lock. Aggregates bump their
// version on every mutation, so the update only applies while the stored row
// is older than version. A row that does not exist yet is inserted.
func saveVersioned(db *gorm.DB, model interface{}, id uuid.UUID, version int) error {
	result := db.Model(model).
		Where("id = ? AND version < ?", id, version).
		Select("*").
		Updates(model)
	if result.Error != nil {
		return constraintError(result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return shared.ErrConcurrencyConflict
	}
	return constraintError(db.Create(model).Error)
}

// ErrStillReferenced reports a delete or update rejected by a foreign key
var ErrStillReferenced = shared.NewDomainError(shared.ErrInvalidState.Code, "Record is still referenced by other records")

// constraintError maps the constraint violations gorm translates into the
// domain errors the HTTP layer understands. The database stays the last
// line for uniqueness races and history rows the services do not pre-check.
func constraintError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.ErrAlreadyExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrStillReferenced
	}
	return err
}

// filterColumns maps filter keys to the columns they compare by equality
type filterColumns map[string]string

// applyEquals adds an equality condition for every known, non-empty filter key.
// Keys ending in _id accept uuid values and are skipped when unparseable.
func applyEquals(query *gorm.DB, filter shared.Filter, columns filterColumns) *gorm.DB {
	keys := make([]string, 0, len(columns))
	for key := range columns {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		column := columns[key]
		v, ok := filter.Filters[key]
		if !ok || v == nil {
			continue
		}
		if isIDKey(key) {
			id, ok := uuidValue(v)
			if !ok {
				continue
			}
			query = query.Where(column+" = ?", id)
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		query = query.Where(column+" = ?", v)
	}
	return query
}

// applyDateRange bounds column by the date_from and date_to filters, inclusive
func applyDateRange(query *gorm.DB, filter shared.Filter, column string) *gorm.DB {
	if from, ok := timeValue(filter.Filters["date_from"]); ok {
		query = query.Where(column+" >= ?", from)
	}
	if to, ok := timeValue(filter.Filters["date_to"]); ok {
		query = query.Where(column+" <= ?", to)
	}
	return query
}

func isIDKey(key string) bool {
	return strings.HasSuffix(key, "_id") || key == "assigned_to"
}

// deleteForOrg removes one org-owned row, reporting ErrNotFound when absent
func deleteForOrg(db *gorm.DB, model interface{}, orgID, id uuid.UUID) error {
	result := db.Where("org_id = ? AND id = ?", orgID, id).Delete(model)
	if result.Error != nil {
		return constraintError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
