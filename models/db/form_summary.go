package dbmodels

import (
	formapimodels "bygg-tools-backend/models/api/form"
)

// The three form types are structurally distinct; the board and the archive
// present them through this common projection. The conversions are total over
// any stored record.

func userRef(u *CompanyUser) *formapimodels.UserRef {
	if u == nil {
		return nil
	}
	return &formapimodels.UserRef{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func (f DeviationForm) ToSummary() formapimodels.FormSummary {
	return formapimodels.FormSummary{
		ID:         f.ID,
		FormType:   f.FormType(),
		Number:     f.DeviationNumber,
		Title:      f.Title,
		Status:     f.CurrentStatus(),
		StatusName: f.CurrentStatus().ToHuman(),
		CreatedAt:  f.CreatedAt,
		CreatedBy:  userRef(f.CreatedBy),
		Handler:    userRef(f.Handler),
		Solution:   f.Solution,
		Notes:      f.Notes,
		Content:    f.Content,
	}
}

func (f ChangeForm) ToSummary() formapimodels.FormSummary {
	content := map[string]interface{}{
		"project_name":     f.ProjectName,
		"description":      f.Description,
		"submitted_by":     f.SubmittedBy,
		"follow_up_person": f.FollowUpPerson,
	}
	if f.ImplementationDate != nil {
		content["implementation_date"] = *f.ImplementationDate
	}
	return formapimodels.FormSummary{
		ID:         f.ID,
		FormType:   f.FormType(),
		Number:     f.ChangeNumber,
		Title:      f.ProjectName,
		Status:     f.CurrentStatus(),
		StatusName: f.CurrentStatus().ToHuman(),
		CreatedAt:  f.CreatedAt,
		CreatedBy:  userRef(f.CreatedBy),
		Handler:    userRef(f.Handler),
		Solution:   f.Solution,
		Content:    content,
	}
}

func (f SJAForm) ToSummary() formapimodels.FormSummary {
	content := map[string]interface{}{
		"job_title":          f.JobTitle,
		"job_location":       f.JobLocation,
		"participants":       []string(f.Participants),
		"job_description":    f.JobDescription,
		"identified_risks":   []string(f.IdentifiedRisks),
		"risk_mitigation":    []string(f.RiskMitigation),
		"responsible_person": f.ResponsiblePerson,
	}
	if f.JobDate != nil {
		content["job_date"] = *f.JobDate
	}
	if f.ApprovalDate != nil {
		content["approval_date"] = *f.ApprovalDate
	}
	return formapimodels.FormSummary{
		ID:         f.ID,
		FormType:   f.FormType(),
		Title:      f.JobTitle,
		Status:     f.CurrentStatus(),
		StatusName: f.CurrentStatus().ToHuman(),
		CreatedAt:  f.CreatedAt,
		CreatedBy:  userRef(f.CreatedBy),
		Handler:    userRef(f.Handler),
		Solution:   f.Comments,
		Content:    content,
	}
}
