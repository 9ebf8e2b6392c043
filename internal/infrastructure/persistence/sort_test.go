package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "DESC"},
		{"asc", "ASC"},
		{"  ASC ", "ASC"},
		{"desc", "DESC"},
		{"sideways", "DESC"},
		{"ASC; DROP TABLE leases;--", "DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sortDirection(tt.input))
		})
	}
}

func TestSortColumnsPick(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		expected string
	}{
		{"empty uses fallback", "", "start_date"},
		{"whitelisted column", "monthly_rent", "monthly_rent"},
		{"common column", "created_at", "created_at"},
		{"surrounding space", " end_date ", "end_date"},
		{"case sensitive", "END_DATE", "start_date"},
		{"unknown column", "tenant_ssn", "start_date"},
		{"injection", "start_date; DROP TABLE leases;--", "start_date"},
		{"subquery", "(SELECT password_hash FROM users)", "start_date"},
		{"expression", "CASE WHEN 1=1 THEN id END", "start_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, leaseSort.pick(tt.field, "start_date"))
		})
	}
}

func TestSortWhitelists(t *testing.T) {
	for name, columns := range map[string]sortColumns{
		"property":    propertySort,
		"unit":        unitSort,
		"tenant":      tenantSort,
		"lease":       leaseSort,
		"maintenance": maintenanceSort,
		"transaction": transactionSort,
		"inspection":  inspectionSort,
		"document":    documentSort,
		"team member": teamMemberSort,
	} {
		t.Run(name, func(t *testing.T) {
			for _, common := range []string{"id", "created_at", "updated_at"} {
				assert.Contains(t, columns, common)
			}
			assert.Greater(t, len(columns), 3)
		})
	}
}
