package models

// All returns every persistence model in dependency order
func All() []interface{} {
	return []interface{}{
		&OrganizationModel{},
		&UserModel{},
		&TeamMemberModel{},
		&UserSettingsModel{},
		&PropertyModel{},
		&UnitModel{},
		&TenantModel{},
		&LeaseModel{},
		&MaintenanceRequestModel{},
		&TransactionModel{},
		&InspectionModel{},
		&InspectionItemModel{},
		&DocumentModel{},
	}
}
