package usersstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bygg-tools-backend/models"
	dbmodels "bygg-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.CompanyUser) (string, error)
	Update(userID string, updMap map[string]interface{}) error
	Delete(userID string) error
	GetList(companyID string, page, limit int) (userList []dbmodels.CompanyUser, err error)
	ExistByEmail(email string) (bool, error)
	FindByEmail(email string) (rec *dbmodels.CompanyUser, err error)
	GetByID(userID string) (rec *dbmodels.CompanyUser, err error)
	ListManagers(companyID string) ([]dbmodels.CompanyUser, error)
	ListProjectMembers(companyID, projectID string) ([]dbmodels.CompanyUser, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CompanyUser) (string, error) {
	err := i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.CompanyUser{}).
		Where("id = ?", userID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) Delete(userID string) error {
	return i.db.
		Where("id = ?", userID).
		Delete(&dbmodels.CompanyUser{}).
		Error
}

func (i impl) GetList(companyID string, page, limit int) (userList []dbmodels.CompanyUser, err error) {
	tx := i.db.Model(dbmodels.CompanyUser{})
	i.setPage(tx, page, limit)
	err = tx.
		Where("company_id = ?", companyID).
		Order("last_name, first_name").
		Find(&userList).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return userList, nil
}

func (i impl) ExistByEmail(email string) (bool, error) {
	var exists bool
	err := i.db.Model(&dbmodels.CompanyUser{}).
		Select("count(*) > 0").
		Where("lower(email) = ?", strings.ToLower(email)).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) FindByEmail(email string) (rec *dbmodels.CompanyUser, err error) {
	err = i.db.Model(dbmodels.CompanyUser{}).
		Where("lower(email) = ?", strings.ToLower(email)).
		Preload(clause.Associations).
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

func (i impl) GetByID(userID string) (rec *dbmodels.CompanyUser, err error) {
	err = i.db.Model(dbmodels.CompanyUser{}).
		Where("id = ?", userID).
		Preload(clause.Associations).
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

func (i impl) ListManagers(companyID string) ([]dbmodels.CompanyUser, error) {
	list := []dbmodels.CompanyUser{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("role in (?)", []models.UserRole{models.CompanyAdminRole, models.CompanyManagerRole}).
		Where("is_active = true").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListProjectMembers(companyID, projectID string) ([]dbmodels.CompanyUser, error) {
	list := []dbmodels.CompanyUser{}
	err := i.db.
		Joins("join project_members as pm on pm.company_user_id = company_users.id").
		Where("pm.project_id = ?", projectID).
		Where("company_users.company_id = ?", companyID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	if limit > 0 {
		tx.Limit(limit)
		if page > 1 {
			tx.Offset((page - 1) * limit)
		}
	}
}
