package timesheet

import (
	"bygg-tools-backend/db"
	timesheetstore "bygg-tools-backend/lib/timesheet/store"
	timesheetapimodels "bygg-tools-backend/models/api/timesheet"
	dbmodels "bygg-tools-backend/models/db"
)

type Provider interface {
	Add(companyID, userID string, req timesheetapimodels.AddTimeEntry) (timesheetapimodels.TimeEntryView, error)
	Delete(companyID, userID, id string) error
	ListByUser(companyID, userID string) ([]timesheetapimodels.TimeEntryView, error)
	ListByProject(companyID, projectID string) ([]timesheetapimodels.TimeEntryView, error)
	ProjectTotals(companyID string) ([]timesheetapimodels.ProjectHours, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: timesheetstore.NewInstance(db.DB),
	}
}

type impl struct {
	store timesheetstore.Provider
}

func (i impl) Add(companyID, userID string, req timesheetapimodels.AddTimeEntry) (timesheetapimodels.TimeEntryView, error) {
	rec := dbmodels.TimeEntry{
		BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
		UserID:           userID,
		ProjectID:        req.ProjectID,
		TaskID:           req.TaskID,
		Date:             req.Date,
		Hours:            req.Hours,
		Description:      req.Description,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return timesheetapimodels.TimeEntryView{}, err
	}
	rec.ID = id
	return toView(rec), nil
}

func (i impl) Delete(companyID, userID, id string) error {
	return i.store.Delete(companyID, userID, id)
}

func (i impl) ListByUser(companyID, userID string) ([]timesheetapimodels.TimeEntryView, error) {
	list, err := i.store.ListByUser(companyID, userID)
	if err != nil {
		return nil, err
	}
	return toViews(list), nil
}

func (i impl) ListByProject(companyID, projectID string) ([]timesheetapimodels.TimeEntryView, error) {
	list, err := i.store.ListByProject(companyID, projectID)
	if err != nil {
		return nil, err
	}
	return toViews(list), nil
}

func (i impl) ProjectTotals(companyID string) ([]timesheetapimodels.ProjectHours, error) {
	return i.store.ProjectTotals(companyID)
}

func toViews(list []dbmodels.TimeEntry) []timesheetapimodels.TimeEntryView {
	result := make([]timesheetapimodels.TimeEntryView, 0, len(list))
	for _, rec := range list {
		result = append(result, toView(rec))
	}
	return result
}

func toView(rec dbmodels.TimeEntry) timesheetapimodels.TimeEntryView {
	view := timesheetapimodels.TimeEntryView{
		ID:          rec.ID,
		ProjectID:   rec.ProjectID,
		Date:        rec.Date,
		Hours:       rec.Hours,
		Description: rec.Description,
	}
	if rec.Project != nil {
		view.ProjectName = rec.Project.Name
	}
	if rec.Task != nil {
		view.TaskTitle = rec.Task.Title
	}
	return view
}
