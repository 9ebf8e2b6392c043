package valueobject

import (
	"strings"

	"github.com/propertyhub/backend/internal/domain/shared"
)

// Address is the postal address of a property. Stored as embedded columns.
type Address struct {
	Street     string `gorm:"column:street;size:255"`
	City       string `gorm:"column:city;size:100;index"`
	State      string `gorm:"column:state;size:100"`
	PostalCode string `gorm:"column:postal_code;size:20"`
	Country    string `gorm:"column:country;size:2"`
}

// NewAddress validates and normalizes an address
func NewAddress(street, city, state, postalCode, country string) (Address, error) {
	a := Address{
		Street:     strings.TrimSpace(street),
		City:       strings.TrimSpace(city),
		State:      strings.TrimSpace(state),
		PostalCode: strings.TrimSpace(postalCode),
		Country:    strings.ToUpper(strings.TrimSpace(country)),
	}
	if a.Street == "" {
		return Address{}, shared.NewDomainError("INVALID_ADDRESS", "Street cannot be empty")
	}
	if len(a.Street) > 255 {
		return Address{}, shared.NewDomainError("INVALID_ADDRESS", "Street cannot exceed 255 characters")
	}
	if a.City == "" {
		return Address{}, shared.NewDomainError("INVALID_ADDRESS", "City cannot be empty")
	}
	if len(a.City) > 100 || len(a.State) > 100 {
		return Address{}, shared.NewDomainError("INVALID_ADDRESS", "City and state cannot exceed 100 characters")
	}
	if len(a.PostalCode) > 20 {
		return Address{}, shared.NewDomainError("INVALID_ADDRESS", "Postal code cannot exceed 20 characters")
	}
	if a.Country == "" {
		a.Country = "US"
	}
	if len(a.Country) != 2 {
		return Address{}, shared.NewDomainError("INVALID_ADDRESS", "Country must be a 2-letter ISO code")
	}
	return a, nil
}

// IsEmpty returns true when no street or city is set
func (a Address) IsEmpty() bool {
	return a.Street == "" && a.City == ""
}

// FullAddress joins the non-empty parts, e.g. "12 Oak St, Austin, TX 78701, US"
func (a Address) FullAddress() string {
	parts := make([]string, 0, 4)
	if a.Street != "" {
		parts = append(parts, a.Street)
	}
	if a.City != "" {
		parts = append(parts, a.City)
	}
	region := strings.TrimSpace(a.State + " " + a.PostalCode)
	if region != "" {
		parts = append(parts, region)
	}
	if a.Country != "" {
		parts = append(parts, a.Country)
	}
	return strings.Join(parts, ", ")
}
