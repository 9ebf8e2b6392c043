package identity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolePermissions(t *testing.T) {
	assert.True(t, RoleOwner.HasPermission(PermTeamManage))
	assert.True(t, RoleOwner.HasPermission(PermSettingsManage))
	assert.False(t, RoleManager.HasPermission(PermTeamManage))
	assert.True(t, RoleManager.HasPermission(PermLeaseWrite))
	assert.True(t, RoleMaintenance.HasPermission(PermMaintenanceWrite))
	assert.False(t, RoleMaintenance.HasPermission(PermFinanceRead))
	assert.False(t, RoleViewer.HasPermission(PermPropertyWrite))
	assert.True(t, RoleViewer.HasPermission(PermPropertyRead))

	perms := RoleViewer.Permissions()
	assert.IsIncreasing(t, perms)

	_, err := ParseRole("admin")
	assert.Error(t, err)
}

func TestTeamMember_InviteFlow(t *testing.T) {
	orgID := uuid.New()
	inviter := uuid.New()

	m, err := NewInvitedMember(orgID, inviter, "Bob@Example.com", "Bob", RoleManager, "tok-123")
	require.NoError(t, err)
	assert.Equal(t, MemberStatusInvited, m.Status)
	assert.Equal(t, "bob@example.com", m.Email)
	assert.NotEqual(t, "tok-123", m.InviteTokenHash)

	now := time.Now()
	assert.True(t, m.MatchesInvite("tok-123", now))
	assert.False(t, m.MatchesInvite("other", now))
	assert.False(t, m.MatchesInvite("tok-123", now.Add(InviteTTL+time.Hour)))

	t.Run("accept requires matching email", func(t *testing.T) {
		other, err := NewUser(orgID, "alice@example.com", "password123", "", "")
		require.NoError(t, err)
		assert.Error(t, m.Accept(other))
	})

	user, err := NewUser(orgID, "bob@example.com", "password123", "Bob", "B")
	require.NoError(t, err)
	require.NoError(t, m.Accept(user))
	assert.Equal(t, MemberStatusActive, m.Status)
	assert.True(t, m.IsUser(user.ID))
	assert.Empty(t, m.InviteTokenHash)
	assert.False(t, m.MatchesInvite("tok-123", now))

	assert.Error(t, m.Accept(user))
	assert.Error(t, m.RotateInvite("x"))
}

func TestTeamMember_RoleAndRemoval(t *testing.T) {
	user, err := NewUser(uuid.New(), "owner@example.com", "password123", "O", "W")
	require.NoError(t, err)
	m := NewOwnerMember(user.OrgID, user)
	assert.True(t, m.IsActiveOwner())

	require.NoError(t, m.ChangeRole(RoleViewer))
	assert.False(t, m.IsActiveOwner())
	assert.Error(t, m.ChangeRole("superuser"))

	require.NoError(t, m.Remove())
	assert.Equal(t, MemberStatusRemoved, m.Status)
	assert.NotNil(t, m.RemovedAt)
	assert.Error(t, m.Remove())
	assert.Error(t, m.ChangeRole(RoleManager))
}

func TestUserSettings(t *testing.T) {
	s := NewDefaultSettings(uuid.New(), uuid.New(), "")
	assert.Equal(t, "USD", string(s.Currency))
	assert.Equal(t, AllDashboardWidgets(), s.DashboardWidgets)
	assert.True(t, s.WidgetEnabled(WidgetOccupancy))

	t.Run("applies partial updates", func(t *testing.T) {
		cur, loc, tz := "gbp", "en-GB", "Europe/London"
		sms := true
		require.NoError(t, s.Apply(SettingsUpdate{Currency: &cur, Locale: &loc, Timezone: &tz, SMSNotifications: &sms}))
		assert.Equal(t, "GBP", string(s.Currency))
		assert.Equal(t, "en-GB", s.Locale)
		assert.Equal(t, "Europe/London", s.Timezone)
		assert.True(t, s.SMSNotifications)
		assert.True(t, s.EmailNotifications)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		bad := "nope"
		assert.Error(t, s.Apply(SettingsUpdate{Currency: &bad}))
		assert.Error(t, s.Apply(SettingsUpdate{Timezone: &bad}))
		assert.Error(t, s.Apply(SettingsUpdate{Theme: &bad}))
		assert.Error(t, s.Apply(SettingsUpdate{DateFormat: &bad}))
	})

	t.Run("dashboard widgets keep order and reject duplicates", func(t *testing.T) {
		require.NoError(t, s.SetDashboardWidgets([]string{"open_maintenance", "occupancy"}))
		assert.Equal(t, []DashboardWidget{WidgetOpenMaintenance, WidgetOccupancy}, s.DashboardWidgets)
		assert.False(t, s.WidgetEnabled(WidgetFinancialSummary))

		assert.Error(t, s.SetDashboardWidgets([]string{"occupancy", "occupancy"}))
		assert.Error(t, s.SetDashboardWidgets([]string{"weather"}))

		require.NoError(t, s.SetDashboardWidgets([]string{}))
		assert.Empty(t, s.DashboardWidgets)
	})
}
