package models

type Module string

const (
	UsersModule     Module = "USERS"
	ProjectModule   Module = "PROJECT"
	TaskModule      Module = "TASK"
	TimesheetModule Module = "TIMESHEET"
	FormModule      Module = "FORM"
	HseModule       Module = "HSE"
	ProfileModule   Module = "PROFILE"
	CompanyModule   Module = "COMPANY"
)

// RbacFunc decides, beyond the role check, whether the request is allowed.
type RbacFunc func(companyID, userID string, role UserRole, uri string) bool

type Permission string

const (
	CreatePermission  Permission = "CREATE"
	EditPermission    Permission = "EDIT"
	ViewPermission    Permission = "VIEW"
	DeletePermission  Permission = "DELETE"
	ManagePermission  Permission = "MANAGE"
	ProcessPermission Permission = "PROCESS"
	ExportPermission  Permission = "EXPORT"
)
