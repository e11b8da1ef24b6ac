package dbmodels

import "time"

type TimeEntry struct {
	BaseCompanyModel
	UserID      string       `gorm:"type:varchar(36);index"`
	User        *CompanyUser `gorm:"foreignKey:UserID"`
	ProjectID   string       `gorm:"type:varchar(36);index"`
	Project     *Project
	TaskID      *string      `gorm:"type:varchar(36)"`
	Task        *Task
	Date        time.Time    `gorm:"index"`
	Hours       float64
	Description string
}
