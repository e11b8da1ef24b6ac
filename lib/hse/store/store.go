package hsestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bygg-tools-backend/models"
	dbmodels "bygg-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.HseDocument) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.HseDocument, err error)
	Delete(companyID, id string) error
	List(companyID string) ([]dbmodels.HseDocument, error)
	SetHandbookKey(companyID, objectKey string) error
	GetHandbookKey(companyID string) (string, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.HseDocument) (string, error) {
	err := i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.HseDocument, error) {
	rec := dbmodels.HseDocument{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Delete(companyID, id string) error {
	tx := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Delete(&dbmodels.HseDocument{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) List(companyID string) ([]dbmodels.HseDocument, error) {
	list := []dbmodels.HseDocument{}
	err := i.db.
		Where("company_id = ?", companyID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetHandbookKey(companyID, objectKey string) error {
	tx := i.db.
		Model(&dbmodels.Company{}).
		Where("id = ?", companyID).
		Update("hse_handbook_key", objectKey)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) GetHandbookKey(companyID string) (string, error) {
	var key string
	err := i.db.
		Model(&dbmodels.Company{}).
		Select("hse_handbook_key").
		Where("id = ?", companyID).
		Find(&key).
		Error
	return key, err
}
