package dbmodels

import "time"

type EmailVerify struct {
	BaseModel
	Email     string `gorm:"type:varchar(255);index"`
	Code      string `gorm:"type:varchar(36);index"`
	ExpiresAt time.Time
	UsedAt    *time.Time
}
