package dbmodels

import (
	"fmt"
	"time"

	"bygg-tools-backend/models"
	companyapimodels "bygg-tools-backend/models/api/company"
)

type CompanyUser struct {
	BaseModel
	Password        string            `gorm:"type:varchar(128)"`
	FirstName       string            `gorm:"type:varchar(150)"`
	LastName        string            `gorm:"type:varchar(150)"`
	Email           string            `gorm:"type:varchar(255);index"`
	IsActive        bool
	IsEmailVerified bool
	PhoneNumber     string            `gorm:"type:varchar(15)"`
	Position        string            `gorm:"type:varchar(150)"`
	PictureKey      string            `gorm:"type:varchar(500)"`
	CompanyID       string            `gorm:"type:varchar(36);index"`
	Company         *Company
	Role            models.UserRole   `gorm:"type:varchar(50)"`
	Status          models.UserStatus `gorm:"type:varchar(50)"`
	LastLogin       time.Time
}

func (r CompanyUser) ToModel() companyapimodels.CompanyUser {
	return companyapimodels.CompanyUser{
		ID: r.ID,
		CompanyUserCommonData: companyapimodels.CompanyUserCommonData{
			Email:       r.Email,
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			PhoneNumber: r.PhoneNumber,
			Position:    r.Position,
			IsAdmin:     r.Role.IsCompanyAdmin(),
			CompanyID:   r.CompanyID,
			Role:        r.Role.ToHuman(),
		},
	}
}

func (r CompanyUser) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
