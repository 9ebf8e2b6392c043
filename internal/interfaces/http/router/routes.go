package router

import (
	"github.com/gin-gonic/gin"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/interfaces/http/handler"
	"github.com/propertyhub/backend/internal/interfaces/http/middleware"
)

// Handlers bundles the HTTP handlers mounted under the API prefix
type Handlers struct {
	Auth        *handler.AuthHandler
	Team        *handler.TeamHandler
	Settings    *handler.SettingsHandler
	Property    *handler.PropertyHandler
	Unit        *handler.UnitHandler
	Tenant      *handler.TenantHandler
	Lease       *handler.LeaseHandler
	Maintenance *handler.MaintenanceHandler
	Transaction *handler.TransactionHandler
	Inspection  *handler.InspectionHandler
	Document    *handler.DocumentHandler
	Dashboard   *handler.DashboardHandler
}

// RouteOptions holds route-level middleware shared by several groups
type RouteOptions struct {
	// AuthRateLimit guards signup, login and refresh. Nil disables it.
	AuthRateLimit gin.HandlerFunc
	// Permissions configures permission checks (logging of denials)
	Permissions middleware.PermissionConfig
}

// APIGroups builds the domain route groups. Every route except signup,
// login and refresh expects the JWT middleware to have run; write routes
// additionally check the caller's role permissions.
func APIGroups(h Handlers, opts RouteOptions) []*DomainGroup {
	can := func(perm string) gin.HandlerFunc {
		return middleware.RequirePermissionWithConfig(perm, opts.Permissions)
	}
	limited := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		if opts.AuthRateLimit == nil {
			return []gin.HandlerFunc{fn}
		}
		return []gin.HandlerFunc{opts.AuthRateLimit, fn}
	}

	authRoutes := NewDomainGroup("auth", "/auth")
	authRoutes.POST("/signup", limited(h.Auth.SignUp)...)
	authRoutes.POST("/login", limited(h.Auth.Login)...)
	authRoutes.POST("/refresh", limited(h.Auth.RefreshToken)...)
	authRoutes.POST("/logout", h.Auth.Logout)
	authRoutes.GET("/me", h.Auth.GetProfile)
	authRoutes.PUT("/me", h.Auth.UpdateProfile)
	authRoutes.PUT("/me/password", h.Auth.ChangePassword)

	teamRoutes := NewDomainGroup("team", "/team")
	teamRoutes.GET("", can(identity.PermTeamRead), h.Team.List)
	teamRoutes.POST("/invite", can(identity.PermTeamManage), h.Team.Invite)
	teamRoutes.GET("/:id", can(identity.PermTeamRead), h.Team.GetByID)
	teamRoutes.POST("/:id/resend", can(identity.PermTeamManage), h.Team.ResendInvite)
	teamRoutes.PUT("/:id/role", can(identity.PermTeamManage), h.Team.ChangeRole)
	teamRoutes.DELETE("/:id", can(identity.PermTeamManage), h.Team.Remove)

	// Settings belong to the calling user; any member may edit their own
	settingsRoutes := NewDomainGroup("settings", "/settings")
	settingsRoutes.GET("", h.Settings.Get)
	settingsRoutes.PUT("", h.Settings.Update)
	settingsRoutes.PUT("/dashboard-widgets", h.Settings.UpdateDashboardWidgets)

	propertyRoutes := NewDomainGroup("property", "/properties")
	propertyRoutes.POST("", can(identity.PermPropertyWrite), h.Property.Create)
	propertyRoutes.GET("", can(identity.PermPropertyRead), h.Property.List)
	propertyRoutes.GET("/:id", can(identity.PermPropertyRead), h.Property.GetByID)
	propertyRoutes.PUT("/:id", can(identity.PermPropertyWrite), h.Property.Update)
	propertyRoutes.POST("/:id/activate", can(identity.PermPropertyWrite), h.Property.Activate)
	propertyRoutes.POST("/:id/deactivate", can(identity.PermPropertyWrite), h.Property.Deactivate)
	propertyRoutes.DELETE("/:id", can(identity.PermPropertyWrite), h.Property.Delete)

	unitRoutes := NewDomainGroup("unit", "/units")
	unitRoutes.POST("", can(identity.PermUnitWrite), h.Unit.Create)
	unitRoutes.GET("", can(identity.PermUnitRead), h.Unit.List)
	unitRoutes.GET("/:id", can(identity.PermUnitRead), h.Unit.GetByID)
	unitRoutes.PUT("/:id", can(identity.PermUnitWrite), h.Unit.Update)
	unitRoutes.PUT("/:id/status", can(identity.PermUnitWrite), h.Unit.SetStatus)
	unitRoutes.DELETE("/:id", can(identity.PermUnitWrite), h.Unit.Delete)

	tenantRoutes := NewDomainGroup("tenant", "/tenants")
	tenantRoutes.POST("", can(identity.PermTenantWrite), h.Tenant.Create)
	tenantRoutes.GET("", can(identity.PermTenantRead), h.Tenant.List)
	tenantRoutes.GET("/:id", can(identity.PermTenantRead), h.Tenant.GetByID)
	tenantRoutes.PUT("/:id", can(identity.PermTenantWrite), h.Tenant.Update)
	tenantRoutes.DELETE("/:id", can(identity.PermTenantWrite), h.Tenant.Delete)

	leaseRoutes := NewDomainGroup("lease", "/leases")
	leaseRoutes.POST("", can(identity.PermLeaseWrite), h.Lease.Create)
	leaseRoutes.GET("", can(identity.PermLeaseRead), h.Lease.List)
	leaseRoutes.GET("/:id", can(identity.PermLeaseRead), h.Lease.GetByID)
	leaseRoutes.PUT("/:id", can(identity.PermLeaseWrite), h.Lease.Update)
	leaseRoutes.DELETE("/:id", can(identity.PermLeaseWrite), h.Lease.Delete)
	leaseRoutes.POST("/:id/activate", can(identity.PermLeaseWrite), h.Lease.Activate)
	leaseRoutes.POST("/:id/terminate", can(identity.PermLeaseWrite), h.Lease.Terminate)
	leaseRoutes.POST("/:id/renew", can(identity.PermLeaseWrite), h.Lease.Renew)
	// Rent payments create income transactions
	leaseRoutes.POST("/:id/payments", middleware.RequireAllPermissions(identity.PermLeaseWrite, identity.PermFinanceWrite), h.Lease.RecordPayment)

	maintenanceRoutes := NewDomainGroup("maintenance", "/maintenance")
	maintenanceRoutes.POST("", can(identity.PermMaintenanceWrite), h.Maintenance.Create)
	maintenanceRoutes.GET("", can(identity.PermMaintenanceRead), h.Maintenance.List)
	maintenanceRoutes.GET("/:id", can(identity.PermMaintenanceRead), h.Maintenance.GetByID)
	maintenanceRoutes.PUT("/:id", can(identity.PermMaintenanceWrite), h.Maintenance.Update)
	maintenanceRoutes.DELETE("/:id", can(identity.PermMaintenanceWrite), h.Maintenance.Delete)
	maintenanceRoutes.POST("/:id/assign", can(identity.PermMaintenanceWrite), h.Maintenance.Assign)
	maintenanceRoutes.POST("/:id/start", can(identity.PermMaintenanceWrite), h.Maintenance.Start)
	maintenanceRoutes.POST("/:id/hold", can(identity.PermMaintenanceWrite), h.Maintenance.Hold)
	maintenanceRoutes.POST("/:id/resume", can(identity.PermMaintenanceWrite), h.Maintenance.Resume)
	maintenanceRoutes.POST("/:id/complete", can(identity.PermMaintenanceWrite), h.Maintenance.Complete)
	maintenanceRoutes.POST("/:id/cancel", can(identity.PermMaintenanceWrite), h.Maintenance.Cancel)
	maintenanceRoutes.POST("/:id/reopen", can(identity.PermMaintenanceWrite), h.Maintenance.Reopen)

	transactionRoutes := NewDomainGroup("finance", "/transactions")
	transactionRoutes.POST("", can(identity.PermFinanceWrite), h.Transaction.Record)
	transactionRoutes.GET("", can(identity.PermFinanceRead), h.Transaction.List)
	transactionRoutes.GET("/summary", can(identity.PermFinanceRead), h.Transaction.Summary)
	transactionRoutes.GET("/statement", can(identity.PermFinanceRead), h.Transaction.Statement)
	transactionRoutes.GET("/:id", can(identity.PermFinanceRead), h.Transaction.GetByID)
	transactionRoutes.PUT("/:id", can(identity.PermFinanceWrite), h.Transaction.Update)
	transactionRoutes.POST("/:id/void", can(identity.PermFinanceWrite), h.Transaction.Void)

	inspectionRoutes := NewDomainGroup("inspection", "/inspections")
	inspectionRoutes.POST("", can(identity.PermInspectionWrite), h.Inspection.Schedule)
	inspectionRoutes.GET("", can(identity.PermInspectionRead), h.Inspection.List)
	inspectionRoutes.GET("/:id", can(identity.PermInspectionRead), h.Inspection.GetByID)
	inspectionRoutes.DELETE("/:id", can(identity.PermInspectionWrite), h.Inspection.Delete)
	inspectionRoutes.POST("/:id/reschedule", can(identity.PermInspectionWrite), h.Inspection.Reschedule)
	inspectionRoutes.POST("/:id/assign", can(identity.PermInspectionWrite), h.Inspection.AssignInspector)
	inspectionRoutes.POST("/:id/start", can(identity.PermInspectionWrite), h.Inspection.Start)
	inspectionRoutes.PUT("/:id/items", can(identity.PermInspectionWrite), h.Inspection.RecordItems)
	inspectionRoutes.POST("/:id/complete", can(identity.PermInspectionWrite), h.Inspection.Complete)
	inspectionRoutes.POST("/:id/cancel", can(identity.PermInspectionWrite), h.Inspection.Cancel)

	documentRoutes := NewDomainGroup("document", "/documents")
	documentRoutes.POST("/upload", can(identity.PermDocumentWrite), h.Document.InitiateUpload)
	documentRoutes.GET("", can(identity.PermDocumentRead), h.Document.List)
	documentRoutes.GET("/:id", can(identity.PermDocumentRead), h.Document.GetByID)
	documentRoutes.GET("/:id/download-url", can(identity.PermDocumentRead), h.Document.GetDownloadURL)
	documentRoutes.POST("/:id/confirm", can(identity.PermDocumentWrite), h.Document.ConfirmUpload)
	documentRoutes.PUT("/:id", can(identity.PermDocumentWrite), h.Document.Update)
	documentRoutes.DELETE("/:id", can(identity.PermDocumentWrite), h.Document.Delete)

	dashboardRoutes := NewDomainGroup("dashboard", "/dashboard")
	dashboardRoutes.GET("/summary", can(identity.PermDashboardRead), h.Dashboard.Summary)

	return []*DomainGroup{
		authRoutes,
		teamRoutes,
		settingsRoutes,
		propertyRoutes,
		unitRoutes,
		tenantRoutes,
		leaseRoutes,
		maintenanceRoutes,
		transactionRoutes,
		inspectionRoutes,
		documentRoutes,
		dashboardRoutes,
	}
}
