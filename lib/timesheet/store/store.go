package timesheetstore

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bygg-tools-backend/models"
	timesheetapimodels "bygg-tools-backend/models/api/timesheet"
	dbmodels "bygg-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TimeEntry) (id string, err error)
	Delete(companyID, userID, id string) error
	ListByUser(companyID, userID string) ([]dbmodels.TimeEntry, error)
	ListByProject(companyID, projectID string) ([]dbmodels.TimeEntry, error)
	ProjectTotals(companyID string) ([]timesheetapimodels.ProjectHours, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TimeEntry) (string, error) {
	err := i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// a user may only remove own entries
func (i impl) Delete(companyID, userID, id string) error {
	tx := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Where("user_id = ?", userID).
		Delete(&dbmodels.TimeEntry{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) ListByUser(companyID, userID string) ([]dbmodels.TimeEntry, error) {
	list := []dbmodels.TimeEntry{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("user_id = ?", userID).
		Order("date desc").
		Preload("Project").
		Preload("Task").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByProject(companyID, projectID string) ([]dbmodels.TimeEntry, error) {
	list := []dbmodels.TimeEntry{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("project_id = ?", projectID).
		Order("date desc").
		Preload("User").
		Preload("Project").
		Preload("Task").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ProjectTotals(companyID string) ([]timesheetapimodels.ProjectHours, error) {
	result := []timesheetapimodels.ProjectHours{}
	err := i.db.
		Model(&dbmodels.TimeEntry{}).
		Select("time_entries.project_id, p.name as project_name, sum(time_entries.hours) as total_hours").
		Joins("join projects as p on p.id = time_entries.project_id").
		Where("time_entries.company_id = ?", companyID).
		Group("time_entries.project_id, p.name").
		Order("total_hours desc").
		Find(&result).
		Error
	if err != nil {
		return nil, err
	}
	return result, nil
}
