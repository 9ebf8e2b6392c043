// Package models contains the gorm persistence models. Domain aggregates are
// mapped to and from these types by the repositories, so table layout and
// column tags stay out of the domain layer.
package models
