package models

type UserRole string

const (
	CompanyAdminRole   UserRole = "COMPANY_ADMIN_ROLE"
	CompanyManagerRole UserRole = "COMPANY_MANAGER_ROLE"
	CompanyUserRole    UserRole = "COMPANY_USER_ROLE"
)

var roleHumanName = map[UserRole]string{
	CompanyAdminRole:   "Administrator",
	CompanyManagerRole: "Leder",
	CompanyUserRole:    "Ansatt",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsCompanyAdmin() bool {
	return r == CompanyAdminRole
}

type UserStatus string

const (
	UserWorkingStatus  UserStatus = "WORKING"
	UserVacationStatus UserStatus = "VACATION"
	UserDismissedStatus UserStatus = "DISMISSED"
)

var userStatusHumanName = map[UserStatus]string{
	UserWorkingStatus:   "Aktiv",
	UserVacationStatus:  "Ferie",
	UserDismissedStatus: "Sluttet",
}

func (r UserStatus) ToHuman() string {
	if human, exist := userStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}
