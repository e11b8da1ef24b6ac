package projectapimodels

import (
	"time"

	"github.com/pkg/errors"

	"bygg-tools-backend/models"
)

type CreateProject struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	StartDate   time.Time            `json:"start_date"`
	EndDate     time.Time            `json:"end_date"`
	Status      models.ProjectStatus `json:"status"`
}

func (r CreateProject) Validate() error {
	if r.Name == "" {
		return errors.New("project name is required")
	}
	if r.Status != "" && !r.Status.IsValid() {
		return errors.Errorf("unknown project status: %s", r.Status)
	}
	if !r.EndDate.IsZero() && r.EndDate.Before(r.StartDate) {
		return errors.New("end date is before start date")
	}
	return nil
}

type UpdateProject struct {
	Name        *string               `json:"name,omitempty"`
	Description *string               `json:"description,omitempty"`
	StartDate   *time.Time            `json:"start_date,omitempty"`
	EndDate     *time.Time            `json:"end_date,omitempty"`
	Status      *models.ProjectStatus `json:"status,omitempty"`
}

func (r UpdateProject) Validate() error {
	if r.Status != nil && !r.Status.IsValid() {
		return errors.Errorf("unknown project status: %s", *r.Status)
	}
	return nil
}

type ListFilter struct {
	Status *models.ProjectStatus `json:"status,omitempty"`
}

func (r ListFilter) Validate() error {
	if r.Status != nil && !r.Status.IsValid() {
		return errors.Errorf("unknown project status: %s", *r.Status)
	}
	return nil
}

type ProjectView struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	StartDate   time.Time            `json:"start_date"`
	EndDate     time.Time            `json:"end_date"`
	Status      models.ProjectStatus `json:"status"`
	StatusName  string               `json:"status_name"`
	TaskCount   int                  `json:"task_count"`
}
