package rbac

import (
	"bygg-tools-backend/models"
)

var (
	AdminRoleSet        = []models.UserRole{models.CompanyAdminRole}
	AdminManagerRoleSet = []models.UserRole{models.CompanyAdminRole, models.CompanyManagerRole}
	AllRoles            = []models.UserRole{models.CompanyAdminRole, models.CompanyManagerRole, models.CompanyUserRole}
)

func (i *impl) initRules() {
	i.addUsersRbac()
	i.addCompanyRbac()
	i.addProjectRbac()
	i.addTaskRbac()
	i.addTimesheetRbac()
	i.addFormRbac()
	i.addHseRbac()
	i.addProfileRbac()
}

func (i *impl) addUsersRbac() {
	//VIEW
	i.RegisterRule(models.UsersModule, models.ViewPermission, AllRoles, "/api/v1/users/list [post]", nil)
	i.RegisterRule(models.UsersModule, models.ViewPermission, AllRoles, "/api/v1/users/{id} [get]", nil)
	//MANAGE
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminManagerRoleSet, "/api/v1/users [post]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminManagerRoleSet, "/api/v1/users/{id} [put]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminManagerRoleSet, "/api/v1/users/{id} [delete]", nil)
}

func (i *impl) addCompanyRbac() {
	i.RegisterRule(models.CompanyModule, models.ViewPermission, AllRoles, "/api/v1/company [get]", nil)
	i.RegisterRule(models.CompanyModule, models.ManagePermission, AdminRoleSet, "/api/v1/company [put]", nil)
}

func (i *impl) addProjectRbac() {
	//VIEW
	i.RegisterRule(models.ProjectModule, models.ViewPermission, AllRoles, "/api/v1/projects/list [post]", nil)
	i.RegisterRule(models.ProjectModule, models.ViewPermission, AllRoles, "/api/v1/projects/{id} [get]", nil)
	//MANAGE
	i.RegisterRule(models.ProjectModule, models.CreatePermission, AdminManagerRoleSet, "/api/v1/projects [post]", nil)
	i.RegisterRule(models.ProjectModule, models.EditPermission, AdminManagerRoleSet, "/api/v1/projects/{id} [put]", nil)
	i.RegisterRule(models.ProjectModule, models.DeletePermission, AdminManagerRoleSet, "/api/v1/projects/{id} [delete]", nil)
	i.RegisterRule(models.ProjectModule, models.ManagePermission, AdminManagerRoleSet, "/api/v1/projects/{id}/members/{userId} [put]", nil)
}

func (i *impl) addTaskRbac() {
	//VIEW
	i.RegisterRule(models.TaskModule, models.ViewPermission, AllRoles, "/api/v1/projects/{id}/tasks/list [post]", nil)
	i.RegisterRule(models.TaskModule, models.ViewPermission, AllRoles, "/api/v1/tasks/{id} [get]", nil)
	//CREATE/EDIT
	i.RegisterRule(models.TaskModule, models.CreatePermission, AllRoles, "/api/v1/projects/{id}/tasks [post]", nil)
	i.RegisterRule(models.TaskModule, models.EditPermission, AllRoles, "/api/v1/tasks/{id} [put]", nil)
	i.RegisterRule(models.TaskModule, models.EditPermission, AllRoles, "/api/v1/tasks/{id}/comments [post]", nil)
	i.RegisterRule(models.TaskModule, models.EditPermission, AllRoles, "/api/v1/tasks/{id}/files [post]", nil)
	i.RegisterRule(models.TaskModule, models.DeletePermission, AdminManagerRoleSet, "/api/v1/tasks/{id} [delete]", nil)
}

func (i *impl) addTimesheetRbac() {
	i.RegisterRule(models.TimesheetModule, models.CreatePermission, AllRoles, "/api/v1/timesheet [post]", nil)
	i.RegisterRule(models.TimesheetModule, models.DeletePermission, AllRoles, "/api/v1/timesheet/{id} [delete]", nil)
	i.RegisterRule(models.TimesheetModule, models.ViewPermission, AllRoles, "/api/v1/timesheet/my [get]", nil)
	i.RegisterRule(models.TimesheetModule, models.ViewPermission, AdminManagerRoleSet, "/api/v1/timesheet/project/{id} [get]", nil)
	i.RegisterRule(models.TimesheetModule, models.ViewPermission, AdminManagerRoleSet, "/api/v1/timesheet/totals [get]", nil)
	i.RegisterRule(models.TimesheetModule, models.ExportPermission, AdminManagerRoleSet, "/api/v1/timesheet/project/{id}/export [get]", nil)
	i.RegisterRule(models.TimesheetModule, models.ExportPermission, AdminManagerRoleSet, "/api/v1/timesheet/totals/export [get]", nil)
}

func (i *impl) addFormRbac() {
	//CREATE
	i.RegisterRule(models.FormModule, models.CreatePermission, AllRoles, "/api/v1/forms/deviation [post]", nil)
	i.RegisterRule(models.FormModule, models.CreatePermission, AllRoles, "/api/v1/forms/change [post]", nil)
	i.RegisterRule(models.FormModule, models.CreatePermission, AllRoles, "/api/v1/forms/sja [post]", nil)
	//VIEW
	i.RegisterRule(models.FormModule, models.ViewPermission, AdminManagerRoleSet, "/api/v1/forms/list [post]", nil)
	i.RegisterRule(models.FormModule, models.ViewPermission, AdminManagerRoleSet, "/api/v1/forms/{id} [get]", nil)
	//PROCESS
	i.RegisterRule(models.FormModule, models.ProcessPermission, AdminManagerRoleSet, "/api/v1/forms/{id}/status [put]", nil)
	i.RegisterRule(models.FormModule, models.ProcessPermission, AdminManagerRoleSet, "/api/v1/forms/{id}/solution [put]", nil)
	i.RegisterRule(models.FormModule, models.ProcessPermission, AdminManagerRoleSet, "/api/v1/forms/{id}/archive [put]", nil)
	i.RegisterRule(models.FormModule, models.DeletePermission, AdminRoleSet, "/api/v1/forms/{id} [delete]", nil)
	//EXPORT
	i.RegisterRule(models.FormModule, models.ExportPermission, AdminManagerRoleSet, "/api/v1/forms/{id}/pdf [get]", nil)
}

func (i *impl) addHseRbac() {
	//VIEW
	i.RegisterRule(models.HseModule, models.ViewPermission, AllRoles, "/api/v1/hse/handbook [get]", nil)
	i.RegisterRule(models.HseModule, models.ViewPermission, AllRoles, "/api/v1/hse/documents/list [post]", nil)
	i.RegisterRule(models.HseModule, models.ViewPermission, AllRoles, "/api/v1/hse/documents/{id} [get]", nil)
	//MANAGE
	i.RegisterRule(models.HseModule, models.ManagePermission, AdminRoleSet, "/api/v1/hse/handbook [post]", nil)
	i.RegisterRule(models.HseModule, models.ManagePermission, AdminManagerRoleSet, "/api/v1/hse/documents [post]", nil)
	i.RegisterRule(models.HseModule, models.ManagePermission, AdminManagerRoleSet, "/api/v1/hse/documents/{id} [delete]", nil)
}

func (i *impl) addProfileRbac() {
	i.RegisterRule(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/profile [get]", nil)
	i.RegisterRule(models.ProfileModule, models.EditPermission, AllRoles, "/api/v1/profile [put]", nil)
	i.RegisterRule(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/profile/notifications [get]", nil)
	i.RegisterRule(models.ProfileModule, models.EditPermission, AllRoles, "/api/v1/profile/notifications/{id}/read [put]", nil)
}
