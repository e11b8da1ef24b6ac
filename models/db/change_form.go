package dbmodels

import (
	"time"

	"bygg-tools-backend/models"
)

// ChangeForm (endringsskjema) requests a change to scope or execution of a
// running project.
type ChangeForm struct {
	BaseCompanyModel
	ChangeNumber       string       `gorm:"type:varchar(20);index"`
	ProjectID          *string      `gorm:"type:varchar(36)"`
	Project            *Project
	ProjectName        string       `gorm:"type:varchar(255)"`
	Description        string
	SubmittedBy        string       `gorm:"type:varchar(255)"`
	ImplementationDate *time.Time
	FollowUpPerson     string       `gorm:"type:varchar(255)"`
	Status             string       `gorm:"type:varchar(50);index"`
	CreatedByID        string       `gorm:"type:varchar(36)"`
	CreatedBy          *CompanyUser `gorm:"foreignKey:CreatedByID"`
	HandlerID          *string      `gorm:"type:varchar(36)"`
	Handler            *CompanyUser `gorm:"foreignKey:HandlerID"`
	Solution           string
}

func (f ChangeForm) FormType() models.FormType {
	return models.FormTypeChange
}

func (f ChangeForm) CurrentStatus() models.FormStatus {
	return models.FormStatusFromStorage(f.Status, models.FormTypeChange)
}
