package formapimodels

import (
	"time"

	"github.com/pkg/errors"

	"bygg-tools-backend/models"
)

// UserRef identifies a user on a form view (creator or case handler).
type UserRef struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FormSummary is the common projection of the three form types used on the
// form board and in the archive. Type-specific fields stay under Content.
type FormSummary struct {
	ID          string                 `json:"id"`
	FormType    models.FormType        `json:"form_type"`
	Number      string                 `json:"number,omitempty"` // deviation/change number, empty for SJA
	Title       string                 `json:"title"`
	Status      models.FormStatus      `json:"status"`
	StatusName  string                 `json:"status_name"`
	CreatedAt   time.Time              `json:"created_at"`
	CreatedBy   *UserRef               `json:"created_by,omitempty"`
	Handler     *UserRef               `json:"handler,omitempty"`
	Solution    string                 `json:"solution,omitempty"`
	Notes       string                 `json:"notes,omitempty"`
	Content     map[string]interface{} `json:"content,omitempty"`
}

type ChangeStatusRequest struct {
	FormType models.FormType   `json:"form_type"`
	Status   models.FormStatus `json:"status"`
}

func (r ChangeStatusRequest) Validate() error {
	if !r.FormType.IsValid() {
		return errors.Errorf("unknown form type: %s", r.FormType)
	}
	if !r.Status.IsValid() {
		return errors.Errorf("unknown form status: %s", r.Status)
	}
	return nil
}

type SolutionRequest struct {
	FormType models.FormType `json:"form_type"`
	Solution string          `json:"solution"`
	Notes    string          `json:"notes,omitempty"` // deviation forms only
}

func (r SolutionRequest) Validate() error {
	if !r.FormType.IsValid() {
		return errors.Errorf("unknown form type: %s", r.FormType)
	}
	if r.Solution == "" {
		return errors.New("solution text is required")
	}
	return nil
}

type ListFilter struct {
	FormType *models.FormType   `json:"form_type,omitempty"`
	Status   *models.FormStatus `json:"status,omitempty"`
}

func (r ListFilter) Validate() error {
	if r.FormType != nil && !r.FormType.IsValid() {
		return errors.Errorf("unknown form type: %s", *r.FormType)
	}
	if r.Status != nil && !r.Status.IsValid() {
		return errors.Errorf("unknown form status: %s", *r.Status)
	}
	return nil
}

type CreateDeviationRequest struct {
	Title     string                 `json:"title"`
	Content   map[string]interface{} `json:"content"`
	ProjectID *string                `json:"project_id,omitempty"`
}

func (r CreateDeviationRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

type CreateChangeRequest struct {
	ProjectID          *string    `json:"project_id,omitempty"`
	ProjectName        string     `json:"project_name"`
	Description        string     `json:"description"`
	SubmittedBy        string     `json:"submitted_by"`
	ImplementationDate *time.Time `json:"implementation_date,omitempty"`
	FollowUpPerson     string     `json:"follow_up_person"`
}

func (r CreateChangeRequest) Validate() error {
	if r.ProjectName == "" {
		return errors.New("project name is required")
	}
	if r.Description == "" {
		return errors.New("description is required")
	}
	return nil
}

type CreateSJARequest struct {
	JobTitle          string     `json:"job_title"`
	JobLocation       string     `json:"job_location"`
	JobDate           *time.Time `json:"job_date,omitempty"`
	Participants      []string   `json:"participants"`
	JobDescription    string     `json:"job_description"`
	IdentifiedRisks   []string   `json:"identified_risks"`
	RiskMitigation    []string   `json:"risk_mitigation"`
	ResponsiblePerson string     `json:"responsible_person"`
	ProjectID         *string    `json:"project_id,omitempty"`
}

func (r CreateSJARequest) Validate() error {
	if r.JobTitle == "" {
		return errors.New("job title is required")
	}
	if r.JobLocation == "" {
		return errors.New("job location is required")
	}
	return nil
}
