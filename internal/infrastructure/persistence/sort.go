package persistence

import "strings"

// sortColumns whitelists the columns a list endpoint may order by. Only
// whitelisted names ever reach the ORDER BY clause.
type sortColumns map[string]struct{}

// sortable builds a whitelist holding the given columns plus id and the
// timestamps every table has
func sortable(columns ...string) sortColumns {
	c := sortColumns{"id": {}, "created_at": {}, "updated_at": {}}
	for _, col := range columns {
		c[col] = struct{}{}
	}
	return c
}

// pick returns field when it is whitelisted, fallback otherwise
func (c sortColumns) pick(field, fallback string) string {
	field = strings.TrimSpace(field)
	if _, ok := c[field]; ok {
		return field
	}
	return fallback
}

// sortDirection normalizes a direction; anything but asc sorts descending
func sortDirection(dir string) string {
	if strings.EqualFold(strings.TrimSpace(dir), "asc") {
		return "ASC"
	}
	return "DESC"
}

var (
	propertySort    = sortable("name", "type", "status", "city", "year_built")
	unitSort        = sortable("unit_number", "bedrooms", "square_feet", "market_rent", "status")
	tenantSort      = sortable("first_name", "last_name", "email", "status")
	leaseSort       = sortable("start_date", "end_date", "monthly_rent", "status")
	maintenanceSort = sortable("title", "priority", "status", "scheduled_date", "completed_at")
	transactionSort = sortable("transaction_date", "amount", "type", "category", "status")
	inspectionSort  = sortable("scheduled_date", "type", "status", "completed_at")
	documentSort    = sortable("name", "file_name", "file_size", "category", "uploaded_at")
	teamMemberSort  = sortable("name", "email", "role", "status", "joined_at")
)
