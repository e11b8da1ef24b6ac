package projectstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bygg-tools-backend/models"
	dbmodels "bygg-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Project) (id string, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	Delete(companyID, id string) error
	GetByID(companyID, id string) (rec *dbmodels.Project, err error)
	List(companyID string, status *models.ProjectStatus) ([]dbmodels.Project, error)
	AddMember(projectID, userID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Project) (string, error) {
	err := i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(companyID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Project{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) Delete(companyID, id string) error {
	tx := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Delete(&dbmodels.Project{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Project, error) {
	rec := dbmodels.Project{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("Tasks").
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

func (i impl) List(companyID string, status *models.ProjectStatus) ([]dbmodels.Project, error) {
	list := []dbmodels.Project{}
	tx := i.db.
		Where("company_id = ?", companyID).
		Order("created_at desc").
		Preload("Tasks")
	if status != nil {
		tx = tx.Where("status = ?", *status)
	}
	err := tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AddMember(projectID, userID string) error {
	return i.db.Exec(
		"insert into project_members (project_id, company_user_id) values (?, ?) on conflict do nothing",
		projectID, userID,
	).Error
}
