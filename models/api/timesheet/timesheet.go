package timesheetapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type AddTimeEntry struct {
	ProjectID   string    `json:"project_id"`
	TaskID      *string   `json:"task_id,omitempty"`
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description"`
}

func (r AddTimeEntry) Validate() error {
	if r.ProjectID == "" {
		return errors.New("project id is required")
	}
	if r.Date.IsZero() {
		return errors.New("date is required")
	}
	if r.Hours <= 0 || r.Hours > 24 {
		return errors.New("hours must be between 0 and 24")
	}
	return nil
}

type TimeEntryView struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	ProjectName string    `json:"project_name"`
	TaskTitle   string    `json:"task_title,omitempty"`
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description"`
}

// ProjectHours is the per-project aggregation used on the manager dashboard
// and in the xlsx export.
type ProjectHours struct {
	ProjectID   string  `json:"project_id"`
	ProjectName string  `json:"project_name"`
	TotalHours  float64 `json:"total_hours"`
}
