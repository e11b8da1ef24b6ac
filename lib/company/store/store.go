package companystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "bygg-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Company) (companyID string, err error)
	Update(companyID string, updMap map[string]interface{}) error
	GetByID(companyID string) (rec *dbmodels.Company, err error)
	ExistByOrgNumber(orgNumber string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Company) (companyID string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(companyID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Company{}).
		Where("id = ?", companyID).
		Updates(updMap).
		Error
}

func (i impl) GetByID(companyID string) (rec *dbmodels.Company, err error) {
	err = i.db.
		Where("id = ?", companyID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ExistByOrgNumber(orgNumber string) (bool, error) {
	var exists bool
	err := i.db.Model(&dbmodels.Company{}).
		Select("count(*) > 0").
		Where("org_number = ?", orgNumber).
		Find(&exists).
		Error
	return exists, err
}
