package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
	"gorm.io/datatypes"
)

// OrganizationModel is the persistence model for organizations
type OrganizationModel struct {
	AggregateModel
	Name            string                      `gorm:"type:varchar(200);not null"`
	Slug            string                      `gorm:"type:varchar(100);not null;uniqueIndex"`
	Status          identity.OrganizationStatus `gorm:"type:varchar(20);not null;default:'active'"`
	DefaultCurrency valueobject.Currency        `gorm:"type:char(3);not null;default:'USD'"`
	OwnerID         *uuid.UUID                  `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (OrganizationModel) TableName() string {
	return "organizations"
}

// ToDomain converts the model to a domain Organization
func (m *OrganizationModel) ToDomain() *identity.Organization {
	return &identity.Organization{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Slug:              m.Slug,
		Status:            m.Status,
		DefaultCurrency:   m.DefaultCurrency,
		OwnerID:           m.OwnerID,
	}
}

// OrganizationModelFromDomain builds a model from a domain Organization
func OrganizationModelFromDomain(o *identity.Organization) *OrganizationModel {
	m := &OrganizationModel{
		Name:            o.Name,
		Slug:            o.Slug,
		Status:          o.Status,
		DefaultCurrency: o.DefaultCurrency,
		OwnerID:         o.OwnerID,
	}
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	return m
}

// UserModel is the persistence model for user accounts
type UserModel struct {
	OrgAggregateModel
	Email             string              `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash      string              `gorm:"type:varchar(255);not null"`
	FirstName         string              `gorm:"type:varchar(100)"`
	LastName          string              `gorm:"type:varchar(100)"`
	Phone             string              `gorm:"type:varchar(50)"`
	AvatarURL         string              `gorm:"type:varchar(500)"`
	Status            identity.UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt       *time.Time
	LastLoginIP       string `gorm:"type:varchar(45)"`
	FailedAttempts    int    `gorm:"not null;default:0"`
	LockedUntil       *time.Time
	PasswordChangedAt *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		OrgAggregateRoot:  m.ToDomainOrgAggregateRoot(),
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Phone:             m.Phone,
		AvatarURL:         m.AvatarURL,
		Status:            m.Status,
		LastLoginAt:       m.LastLoginAt,
		LastLoginIP:       m.LastLoginIP,
		FailedAttempts:    m.FailedAttempts,
		LockedUntil:       m.LockedUntil,
		PasswordChangedAt: m.PasswordChangedAt,
	}
}

// UserModelFromDomain builds a model from a domain User
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Phone:             u.Phone,
		AvatarURL:         u.AvatarURL,
		Status:            u.Status,
		LastLoginAt:       u.LastLoginAt,
		LastLoginIP:       u.LastLoginIP,
		FailedAttempts:    u.FailedAttempts,
		LockedUntil:       u.LockedUntil,
		PasswordChangedAt: u.PasswordChangedAt,
	}
	m.FromDomainOrgAggregateRoot(u.OrgAggregateRoot)
	return m
}

// TeamMemberModel is the persistence model for organization memberships
type TeamMemberModel struct {
	OrgAggregateModel
	UserID          *uuid.UUID            `gorm:"type:uuid;index"`
	Email           string                `gorm:"type:varchar(255);not null;index"`
	Name            string                `gorm:"type:varchar(200)"`
	Role            identity.Role         `gorm:"type:varchar(20);not null"`
	Status          identity.MemberStatus `gorm:"type:varchar(20);not null"`
	InviteTokenHash string                `gorm:"type:varchar(64);index"`
	InvitedBy       *uuid.UUID            `gorm:"type:uuid"`
	InvitedAt       *time.Time
	InviteExpiresAt *time.Time
	JoinedAt        *time.Time
	RemovedAt       *time.Time
}

// TableName returns the table name for GORM
func (TeamMemberModel) TableName() string {
	return "team_members"
}

// ToDomain converts the model to a domain TeamMember
func (m *TeamMemberModel) ToDomain() *identity.TeamMember {
	return &identity.TeamMember{
		OrgAggregateRoot: m.ToDomainOrgAggregateRoot(),
		UserID:           m.UserID,
		Email:            m.Email,
		Name:             m.Name,
		Role:             m.Role,
		Status:           m.Status,
		InviteTokenHash:  m.InviteTokenHash,
		InvitedBy:        m.InvitedBy,
		InvitedAt:        m.InvitedAt,
		InviteExpiresAt:  m.InviteExpiresAt,
		JoinedAt:         m.JoinedAt,
		RemovedAt:        m.RemovedAt,
	}
}

// TeamMemberModelFromDomain builds a model from a domain TeamMember
func TeamMemberModelFromDomain(t *identity.TeamMember) *TeamMemberModel {
	m := &TeamMemberModel{
		UserID:          t.UserID,
		Email:           t.Email,
		Name:            t.Name,
		Role:            t.Role,
		Status:          t.Status,
		InviteTokenHash: t.InviteTokenHash,
		InvitedBy:       t.InvitedBy,
		InvitedAt:       t.InvitedAt,
		InviteExpiresAt: t.InviteExpiresAt,
		JoinedAt:        t.JoinedAt,
		RemovedAt:       t.RemovedAt,
	}
	m.FromDomainOrgAggregateRoot(t.OrgAggregateRoot)
	return m
}

// UserSettingsModel stores per-user preferences. Widgets are a JSON array.
type UserSettingsModel struct {
	OrgAggregateModel
	UserID             uuid.UUID            `gorm:"type:uuid;not null;index"`
	Currency           valueobject.Currency `gorm:"type:char(3);not null"`
	Locale             string               `gorm:"type:varchar(20);not null"`
	Timezone           string               `gorm:"type:varchar(64);not null"`
	DateFormat         string               `gorm:"type:varchar(20);not null"`
	Theme              identity.Theme       `gorm:"type:varchar(10);not null"`
	DashboardWidgets   datatypes.JSONSlice[string]
	EmailNotifications bool `gorm:"not null;default:true"`
	SMSNotifications   bool `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// ToDomain converts the model to domain UserSettings
func (m *UserSettingsModel) ToDomain() *identity.UserSettings {
	widgets := make([]identity.DashboardWidget, 0, len(m.DashboardWidgets))
	for _, w := range m.DashboardWidgets {
		widgets = append(widgets, identity.DashboardWidget(w))
	}
	return &identity.UserSettings{
		OrgAggregateRoot:   m.ToDomainOrgAggregateRoot(),
		UserID:             m.UserID,
		Currency:           m.Currency,
		Locale:             m.Locale,
		Timezone:           m.Timezone,
		DateFormat:         m.DateFormat,
		Theme:              m.Theme,
		DashboardWidgets:   widgets,
		EmailNotifications: m.EmailNotifications,
		SMSNotifications:   m.SMSNotifications,
	}
}

// UserSettingsModelFromDomain builds a model from domain UserSettings
func UserSettingsModelFromDomain(s *identity.UserSettings) *UserSettingsModel {
	widgets := make(datatypes.JSONSlice[string], 0, len(s.DashboardWidgets))
	for _, w := range s.DashboardWidgets {
		widgets = append(widgets, string(w))
	}
	m := &UserSettingsModel{
		UserID:             s.UserID,
		Currency:           s.Currency,
		Locale:             s.Locale,
		Timezone:           s.Timezone,
		DateFormat:         s.DateFormat,
		Theme:              s.Theme,
		DashboardWidgets:   widgets,
		EmailNotifications: s.EmailNotifications,
		SMSNotifications:   s.SMSNotifications,
	}
	m.FromDomainOrgAggregateRoot(s.OrgAggregateRoot)
	return m
}
