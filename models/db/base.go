package dbmodels

import (
	"time"

	"github.com/pkg/errors"
)

type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BaseCompanyModel is the base for every tenant-scoped record.
type BaseCompanyModel struct {
	BaseModel
	CompanyID string `gorm:"type:varchar(36);index"`
}

func (b BaseCompanyModel) Validate() error {
	if b.CompanyID == "" {
		return errors.New("company id is not set")
	}
	return nil
}
