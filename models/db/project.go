package dbmodels

import (
	"time"

	"bygg-tools-backend/models"
)

type Project struct {
	BaseCompanyModel
	Name        string               `gorm:"type:varchar(255)"`
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Status      models.ProjectStatus `gorm:"type:varchar(50);index"`
	Tasks       []Task
	Members     []CompanyUser        `gorm:"many2many:project_members;"`
}
