package taskstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bygg-tools-backend/models"
	dbmodels "bygg-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Task) (id string, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	Delete(companyID, id string) error
	GetByID(companyID, id string) (rec *dbmodels.Task, err error)
	ListByProject(companyID, projectID string) ([]dbmodels.Task, error)
	AddComment(rec dbmodels.TaskComment) error
	AddFile(rec dbmodels.TaskFile) error
	ListFiles(companyID, taskID string) ([]dbmodels.TaskFile, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Task) (string, error) {
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
		Model(&dbmodels.Task{}).
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
		Delete(&dbmodels.Task{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Task, error) {
	rec := dbmodels.Task{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("Assignee").
		Preload("Comments").
		Preload("Comments.Author").
		Preload("Files").
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

func (i impl) ListByProject(companyID, projectID string) ([]dbmodels.Task, error) {
	list := []dbmodels.Task{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("project_id = ?", projectID).
		Order("created_at desc").
		Preload("Assignee").
		Preload("Comments").
		Preload("Files").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AddComment(rec dbmodels.TaskComment) error {
	return i.db.Omit(clause.Associations).Save(&rec).Error
}

func (i impl) AddFile(rec dbmodels.TaskFile) error {
	return i.db.Omit(clause.Associations).Save(&rec).Error
}

func (i impl) ListFiles(companyID, taskID string) ([]dbmodels.TaskFile, error) {
	list := []dbmodels.TaskFile{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("task_id = ?", taskID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
