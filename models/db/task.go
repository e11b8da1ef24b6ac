package dbmodels

import (
	"time"

	"bygg-tools-backend/models"
)

type Task struct {
	BaseCompanyModel
	Title          string              `gorm:"type:varchar(255)"`
	Description    string
	StartDate      time.Time
	EndDate        time.Time
	Status         models.TaskStatus   `gorm:"type:varchar(50);index"`
	Priority       models.TaskPriority `gorm:"type:varchar(50)"`
	EstimatedHours float64
	ActualHours    float64
	ProjectID      string              `gorm:"type:varchar(36);index"`
	Project        *Project
	AssigneeID     *string             `gorm:"type:varchar(36)"`
	Assignee       *CompanyUser        `gorm:"foreignKey:AssigneeID"`
	Comments       []TaskComment
	Files          []TaskFile
}

type TaskComment struct {
	BaseCompanyModel
	TaskID   string       `gorm:"type:varchar(36);index"`
	AuthorID string       `gorm:"type:varchar(36)"`
	Author   *CompanyUser `gorm:"foreignKey:AuthorID"`
	Text     string
}

type TaskFile struct {
	BaseCompanyModel
	TaskID    string `gorm:"type:varchar(36);index"`
	FileName  string `gorm:"type:varchar(255)"`
	ObjectKey string `gorm:"type:varchar(500)"`
	Size      int64
}
