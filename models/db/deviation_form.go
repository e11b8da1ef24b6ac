package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"bygg-tools-backend/models"
)

// DeviationForm (avviksskjema) reports a deviation from HSE routine on a
// site or project.
type DeviationForm struct {
	BaseCompanyModel
	DeviationNumber string       `gorm:"type:varchar(20);index"`
	Title           string       `gorm:"type:varchar(255)"`
	Content         FormContent  `gorm:"type:jsonb"`
	Status          string       `gorm:"type:varchar(50);index"`
	ProjectID       *string      `gorm:"type:varchar(36)"`
	Project         *Project
	CreatedByID     string       `gorm:"type:varchar(36)"`
	CreatedBy       *CompanyUser `gorm:"foreignKey:CreatedByID"`
	HandlerID       *string      `gorm:"type:varchar(36)"`
	Handler         *CompanyUser `gorm:"foreignKey:HandlerID"`
	Solution        string
	Notes           string
}

func (f DeviationForm) FormType() models.FormType {
	return models.FormTypeDeviation
}

func (f DeviationForm) CurrentStatus() models.FormStatus {
	return models.FormStatusFromStorage(f.Status, models.FormTypeDeviation)
}

// FormContent is the type-specific opaque payload of a submitted form.
type FormContent map[string]interface{}

func (j FormContent) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *FormContent) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}
