package dbmodels

import (
	"time"

	"github.com/lib/pq"

	"bygg-tools-backend/models"
)

// SJAForm (sikker jobb-analyse) documents the risk review done before a
// hazardous job starts.
type SJAForm struct {
	BaseCompanyModel
	JobTitle          string         `gorm:"type:varchar(255)"`
	JobLocation       string         `gorm:"type:varchar(255)"`
	JobDate           *time.Time
	Participants      pq.StringArray `gorm:"type:text[]"`
	JobDescription    string
	IdentifiedRisks   pq.StringArray `gorm:"type:text[]"`
	RiskMitigation    pq.StringArray `gorm:"type:text[]"`
	ResponsiblePerson string         `gorm:"type:varchar(255)"`
	ApprovalDate      *time.Time
	Status            string         `gorm:"type:varchar(50);index"`
	ProjectID         *string        `gorm:"type:varchar(36)"`
	Project           *Project
	CreatedByID       string         `gorm:"type:varchar(36)"`
	CreatedBy         *CompanyUser   `gorm:"foreignKey:CreatedByID"`
	HandlerID         *string        `gorm:"type:varchar(36)"`
	Handler           *CompanyUser   `gorm:"foreignKey:HandlerID"`
	// the SJA form stores its resolution in the comments column
	Comments string
}

func (f SJAForm) FormType() models.FormType {
	return models.FormTypeSJA
}

func (f SJAForm) CurrentStatus() models.FormStatus {
	return models.FormStatusFromStorage(f.Status, models.FormTypeSJA)
}
