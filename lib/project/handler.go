package project

import (
	"bygg-tools-backend/db"
	projectstore "bygg-tools-backend/lib/project/store"
	"bygg-tools-backend/models"
	projectapimodels "bygg-tools-backend/models/api/project"
	dbmodels "bygg-tools-backend/models/db"
)

type Provider interface {
	Create(companyID string, req projectapimodels.CreateProject) (projectapimodels.ProjectView, error)
	Update(companyID, id string, req projectapimodels.UpdateProject) error
	Delete(companyID, id string) error
	GetByID(companyID, id string) (projectapimodels.ProjectView, error)
	List(companyID string, status *models.ProjectStatus) ([]projectapimodels.ProjectView, error)
	AddMember(companyID, projectID, userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: projectstore.NewInstance(db.DB),
	}
}

type impl struct {
	store projectstore.Provider
}

func (i impl) Create(companyID string, req projectapimodels.CreateProject) (projectapimodels.ProjectView, error) {
	status := req.Status
	if status == "" {
		status = models.ProjectStatusPlanned
	}
	rec := dbmodels.Project{
		BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
		Name:             req.Name,
		Description:      req.Description,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Status:           status,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	return i.GetByID(companyID, id)
}

func (i impl) Update(companyID, id string, req projectapimodels.UpdateProject) error {
	updMap := map[string]interface{}{}
	if req.Name != nil {
		updMap["name"] = *req.Name
	}
	if req.Description != nil {
		updMap["description"] = *req.Description
	}
	if req.StartDate != nil {
		updMap["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updMap["end_date"] = *req.EndDate
	}
	if req.Status != nil {
		updMap["status"] = *req.Status
	}
	return i.store.Update(companyID, id, updMap)
}

func (i impl) Delete(companyID, id string) error {
	return i.store.Delete(companyID, id)
}

func (i impl) GetByID(companyID, id string) (projectapimodels.ProjectView, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	if rec == nil {
		return projectapimodels.ProjectView{}, models.ErrNotFound
	}
	return toView(*rec), nil
}

func (i impl) List(companyID string, status *models.ProjectStatus) ([]projectapimodels.ProjectView, error) {
	list, err := i.store.List(companyID, status)
	if err != nil {
		return nil, err
	}
	result := make([]projectapimodels.ProjectView, 0, len(list))
	for _, rec := range list {
		result = append(result, toView(rec))
	}
	return result, nil
}

func (i impl) AddMember(companyID, projectID, userID string) error {
	rec, err := i.store.GetByID(companyID, projectID)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	return i.store.AddMember(projectID, userID)
}

func toView(rec dbmodels.Project) projectapimodels.ProjectView {
	return projectapimodels.ProjectView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		StartDate:   rec.StartDate,
		EndDate:     rec.EndDate,
		Status:      rec.Status,
		StatusName:  rec.Status.ToHuman(),
		TaskCount:   len(rec.Tasks),
	}
}
