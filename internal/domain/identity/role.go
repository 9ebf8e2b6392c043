package identity

import (
	"sort"

	"github.com/propertyhub/backend/internal/domain/shared"
)

// Role is a team member's role within an organization
type Role string

const (
	RoleOwner       Role = "owner"
	RoleManager     Role = "manager"
	RoleMaintenance Role = "maintenance"
	RoleViewer      Role = "viewer"
)

// Permission codes are "<resource>:<action>"
const (
	PermPropertyRead     = "property:read"
	PermPropertyWrite    = "property:write"
	PermUnitRead         = "unit:read"
	PermUnitWrite        = "unit:write"
	PermTenantRead       = "tenant:read"
	PermTenantWrite      = "tenant:write"
	PermLeaseRead        = "lease:read"
	PermLeaseWrite       = "lease:write"
	PermMaintenanceRead  = "maintenance:read"
	PermMaintenanceWrite = "maintenance:write"
	PermFinanceRead      = "finance:read"
	PermFinanceWrite     = "finance:write"
	PermInspectionRead   = "inspection:read"
	PermInspectionWrite  = "inspection:write"
	PermDocumentRead     = "document:read"
	PermDocumentWrite    = "document:write"
	PermDashboardRead    = "dashboard:read"
	PermTeamRead         = "team:read"
	PermTeamManage       = "team:manage"
	PermSettingsManage   = "settings:manage"
)

var readPermissions = []string{
	PermPropertyRead,
	PermUnitRead,
	PermTenantRead,
	PermLeaseRead,
	PermMaintenanceRead,
	PermFinanceRead,
	PermInspectionRead,
	PermDocumentRead,
	PermDashboardRead,
	PermTeamRead,
}

var writePermissions = []string{
	PermPropertyWrite,
	PermUnitWrite,
	PermTenantWrite,
	PermLeaseWrite,
	PermMaintenanceWrite,
	PermFinanceWrite,
	PermInspectionWrite,
	PermDocumentWrite,
}

var rolePermissions = map[Role][]string{
	RoleOwner:   concat(readPermissions, writePermissions, []string{PermTeamManage, PermSettingsManage}),
	RoleManager: concat(readPermissions, writePermissions),
	RoleMaintenance: {
		PermPropertyRead,
		PermUnitRead,
		PermMaintenanceRead,
		PermMaintenanceWrite,
		PermInspectionRead,
		PermInspectionWrite,
		PermDocumentRead,
		PermDocumentWrite,
		PermDashboardRead,
	},
	RoleViewer: concat(readPermissions),
}

// ParseRole validates a role string
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := rolePermissions[r]; !ok {
		return "", shared.NewDomainError("INVALID_ROLE", "Role must be one of owner, manager, maintenance, viewer")
	}
	return r, nil
}

// Permissions returns the sorted permission codes granted by the role
func (r Role) Permissions() []string {
	perms := rolePermissions[r]
	out := make([]string, len(perms))
	copy(out, perms)
	sort.Strings(out)
	return out
}

// HasPermission reports whether the role grants the permission
func (r Role) HasPermission(code string) bool {
	for _, p := range rolePermissions[r] {
		if p == code {
			return true
		}
	}
	return false
}

// AllRoles returns every role in privilege order
func AllRoles() []Role {
	return []Role{RoleOwner, RoleManager, RoleMaintenance, RoleViewer}
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
