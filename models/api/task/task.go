package taskapimodels

import (
	"time"

	"github.com/pkg/errors"

	"bygg-tools-backend/models"
)

type CreateTask struct {
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	StartDate      time.Time           `json:"start_date"`
	EndDate        time.Time           `json:"end_date"`
	Status         models.TaskStatus   `json:"status"`
	Priority       models.TaskPriority `json:"priority"`
	EstimatedHours float64             `json:"estimated_hours"`
	ProjectID      string              `json:"project_id"`
	AssigneeID     *string             `json:"assignee_id,omitempty"`
}

func (r CreateTask) Validate() error {
	if r.Title == "" {
		return errors.New("task title is required")
	}
	if r.ProjectID == "" {
		return errors.New("project id is required")
	}
	if r.Status != "" && !r.Status.IsValid() {
		return errors.Errorf("unknown task status: %s", r.Status)
	}
	if r.Priority != "" && !r.Priority.IsValid() {
		return errors.Errorf("unknown task priority: %s", r.Priority)
	}
	return nil
}

type UpdateTask struct {
	Title          *string              `json:"title,omitempty"`
	Description    *string              `json:"description,omitempty"`
	StartDate      *time.Time           `json:"start_date,omitempty"`
	EndDate        *time.Time           `json:"end_date,omitempty"`
	Status         *models.TaskStatus   `json:"status,omitempty"`
	Priority       *models.TaskPriority `json:"priority,omitempty"`
	EstimatedHours *float64             `json:"estimated_hours,omitempty"`
	ActualHours    *float64             `json:"actual_hours,omitempty"`
	AssigneeID     *string              `json:"assignee_id,omitempty"`
}

func (r UpdateTask) Validate() error {
	if r.Status != nil && !r.Status.IsValid() {
		return errors.Errorf("unknown task status: %s", *r.Status)
	}
	if r.Priority != nil && !r.Priority.IsValid() {
		return errors.Errorf("unknown task priority: %s", *r.Priority)
	}
	return nil
}

type AddComment struct {
	Text string `json:"text"`
}

func (r AddComment) Validate() error {
	if r.Text == "" {
		return errors.New("comment text is required")
	}
	return nil
}

type TaskView struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	StartDate      time.Time           `json:"start_date"`
	EndDate        time.Time           `json:"end_date"`
	Status         models.TaskStatus   `json:"status"`
	StatusName     string              `json:"status_name"`
	Priority       models.TaskPriority `json:"priority"`
	PriorityName   string              `json:"priority_name"`
	EstimatedHours float64             `json:"estimated_hours"`
	ActualHours    float64             `json:"actual_hours"`
	ProjectID      string              `json:"project_id"`
	AssigneeName   string              `json:"assignee_name,omitempty"`
	CommentCount   int                 `json:"comment_count"`
	FileCount      int                 `json:"file_count"`
}
