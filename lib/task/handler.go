package task

import (
	"fmt"

	"bygg-tools-backend/db"
	"bygg-tools-backend/lib/notification"
	projectstore "bygg-tools-backend/lib/project/store"
	taskstore "bygg-tools-backend/lib/task/store"
	usersstore "bygg-tools-backend/lib/users/store"
	"bygg-tools-backend/models"
	taskapimodels "bygg-tools-backend/models/api/task"
	dbmodels "bygg-tools-backend/models/db"
)

type Provider interface {
	Create(companyID, userID string, req taskapimodels.CreateTask) (taskapimodels.TaskView, error)
	Update(companyID, id string, req taskapimodels.UpdateTask) error
	Delete(companyID, id string) error
	GetByID(companyID, id string) (taskapimodels.TaskView, error)
	ListByProject(companyID, projectID string) ([]taskapimodels.TaskView, error)
	AddComment(companyID, taskID, authorID string, req taskapimodels.AddComment) error
	AttachFile(companyID, taskID, fileName, objectKey string, size int64) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        taskstore.NewInstance(db.DB),
		projectStore: projectstore.NewInstance(db.DB),
		usersStore:   usersstore.NewInstance(db.DB),
		sink:         notification.Instance,
	}
}

type impl struct {
	store        taskstore.Provider
	projectStore projectstore.Provider
	usersStore   usersstore.Provider
	sink         notification.Provider
}

func (i impl) Create(companyID, userID string, req taskapimodels.CreateTask) (taskapimodels.TaskView, error) {
	project, err := i.projectStore.GetByID(companyID, req.ProjectID)
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	if project == nil {
		return taskapimodels.TaskView{}, models.ErrNotFound
	}
	status := req.Status
	if status == "" {
		status = models.TaskStatusNotStarted
	}
	priority := req.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}
	rec := dbmodels.Task{
		BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
		Title:            req.Title,
		Description:      req.Description,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Status:           status,
		Priority:         priority,
		EstimatedHours:   req.EstimatedHours,
		ProjectID:        req.ProjectID,
		AssigneeID:       req.AssigneeID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	i.notifyProjectMembers(companyID, project, rec.Title, id)
	return i.GetByID(companyID, id)
}

// every project member gets a notification about the new task
func (i impl) notifyProjectMembers(companyID string, project *dbmodels.Project, taskTitle, taskID string) {
	if i.sink == nil {
		return
	}
	members, err := i.usersStore.ListProjectMembers(companyID, project.ID)
	if err != nil {
		return
	}
	msg := fmt.Sprintf("Ny oppgave \"%s\" opprettet i prosjektet \"%s\".", taskTitle, project.Name)
	url := fmt.Sprintf("/prosjekt/%s/oppgaver/%s", project.ID, taskID)
	for _, member := range members {
		i.sink.NotifyUser(member.ID, msg, url)
	}
}

func (i impl) Update(companyID, id string, req taskapimodels.UpdateTask) error {
	updMap := map[string]interface{}{}
	if req.Title != nil {
		updMap["title"] = *req.Title
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
	if req.Priority != nil {
		updMap["priority"] = *req.Priority
	}
	if req.EstimatedHours != nil {
		updMap["estimated_hours"] = *req.EstimatedHours
	}
	if req.ActualHours != nil {
		updMap["actual_hours"] = *req.ActualHours
	}
	if req.AssigneeID != nil {
		updMap["assignee_id"] = *req.AssigneeID
	}
	return i.store.Update(companyID, id, updMap)
}

func (i impl) Delete(companyID, id string) error {
	return i.store.Delete(companyID, id)
}

func (i impl) GetByID(companyID, id string) (taskapimodels.TaskView, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	if rec == nil {
		return taskapimodels.TaskView{}, models.ErrNotFound
	}
	return toView(*rec), nil
}

func (i impl) ListByProject(companyID, projectID string) ([]taskapimodels.TaskView, error) {
	list, err := i.store.ListByProject(companyID, projectID)
	if err != nil {
		return nil, err
	}
	result := make([]taskapimodels.TaskView, 0, len(list))
	for _, rec := range list {
		result = append(result, toView(rec))
	}
	return result, nil
}

func (i impl) AddComment(companyID, taskID, authorID string, req taskapimodels.AddComment) error {
	rec, err := i.store.GetByID(companyID, taskID)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	return i.store.AddComment(dbmodels.TaskComment{
		BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
		TaskID:           taskID,
		AuthorID:         authorID,
		Text:             req.Text,
	})
}

func (i impl) AttachFile(companyID, taskID, fileName, objectKey string, size int64) error {
	rec, err := i.store.GetByID(companyID, taskID)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	return i.store.AddFile(dbmodels.TaskFile{
		BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
		TaskID:           taskID,
		FileName:         fileName,
		ObjectKey:        objectKey,
		Size:             size,
	})
}

func toView(rec dbmodels.Task) taskapimodels.TaskView {
	view := taskapimodels.TaskView{
		ID:             rec.ID,
		Title:          rec.Title,
		Description:    rec.Description,
		StartDate:      rec.StartDate,
		EndDate:        rec.EndDate,
		Status:         rec.Status,
		StatusName:     rec.Status.ToHuman(),
		Priority:       rec.Priority,
		PriorityName:   rec.Priority.ToHuman(),
		EstimatedHours: rec.EstimatedHours,
		ActualHours:    rec.ActualHours,
		ProjectID:      rec.ProjectID,
		CommentCount:   len(rec.Comments),
		FileCount:      len(rec.Files),
	}
	if rec.Assignee != nil {
		view.AssigneeName = rec.Assignee.GetFullName()
	}
	return view
}
