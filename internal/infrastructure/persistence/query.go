package persistence

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// paginate applies validated ordering and the filter's page window
func paginate(query *gorm.DB, filter shared.Filter, columns sortColumns, defaultField string) *gorm.DB {
	field := columns.pick(filter.OrderBy, defaultField)
	query = query.Order(field + " " + sortDirection(filter.OrderDir))
	if field != "id" {
		query = query.Order("id ASC")
	}
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}

// searchAny matches term case-insensitively against any of columns.
// LOWER/LIKE keeps the query portable between postgres and sqlite.
func searchAny(query *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return query
	}
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	clauses := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		clauses[i] = "LOWER(" + col + ") LIKE ? ESCAPE '\\'"
		args[i] = pattern
	}
	return query.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// uuidValue accepts uuid.UUID, *uuid.UUID or a parseable string
func uuidValue(v interface{}) (uuid.UUID, bool) {
	switch x := v.(type) {
	case uuid.UUID:
		return x, x != uuid.Nil
	case *uuid.UUID:
		if x == nil {
			return uuid.Nil, false
		}
		return *x, *x != uuid.Nil
	case string:
		id, err := uuid.Parse(x)
		return id, err == nil
	}
	return uuid.Nil, false
}

// timeValue accepts time.Time or *time.Time
func timeValue(v interface{}) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, !x.IsZero()
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, !x.IsZero()
	}
	return time.Time{}, false
}
