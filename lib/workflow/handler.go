package workflow

import (
	"github.com/pkg/errors"

	"bygg-tools-backend/db"
	formstore "bygg-tools-backend/lib/forms/store"
	"bygg-tools-backend/models"
	formapimodels "bygg-tools-backend/models/api/form"
)

// The workflow engine owns the lifecycle of a submitted form: legal status
// transitions, case-handler assignment, solution entry and archival. It is
// type-agnostic; everything type-specific sits in the store and the status
// label codec.
type Provider interface {
	ChangeStatus(companyID, id string, formType models.FormType, target models.FormStatus, handlerID string) (formapimodels.FormSummary, error)
	RecordSolution(companyID, id string, formType models.FormType, solution, notes string) (formapimodels.FormSummary, error)
	Archive(companyID, id string, formType models.FormType, actingUserID string) (formapimodels.FormSummary, error)
	Delete(companyID, id string, formType models.FormType) error
	ListByStatus(companyID string, filter formapimodels.ListFilter) ([]formapimodels.FormSummary, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(formstore.NewInstance(db.DB))
}

func NewInstance(store formstore.Provider) Provider {
	return impl{
		store: store,
	}
}

type impl struct {
	store formstore.Provider
}

func (i impl) ChangeStatus(companyID, id string, formType models.FormType, target models.FormStatus, handlerID string) (formapimodels.FormSummary, error) {
	if !target.IsValid() {
		return formapimodels.FormSummary{}, errors.Wrapf(models.ErrInvalidTransition, "unknown status %s", target)
	}
	row, err := i.store.Get(companyID, id, formType)
	if err != nil {
		return formapimodels.FormSummary{}, err
	}
	if row == nil {
		return formapimodels.FormSummary{}, models.ErrNotFound
	}
	if !row.Status.IsAllowStatusChange(target) {
		return formapimodels.FormSummary{}, errors.Wrapf(models.ErrInvalidTransition, "%s -> %s", row.Status, target)
	}
	// status and handler always move together, in one guarded write
	updMap := map[string]interface{}{
		"status":     target.StorageLabel(formType),
		"handler_id": handlerID,
	}
	err = i.store.UpdateGuarded(companyID, id, formType, row.UpdatedAt, updMap)
	if err != nil {
		return formapimodels.FormSummary{}, err
	}
	return i.loadSummary(companyID, id, formType)
}

func (i impl) RecordSolution(companyID, id string, formType models.FormType, solution, notes string) (formapimodels.FormSummary, error) {
	if solution == "" {
		return formapimodels.FormSummary{}, errors.Wrap(models.ErrValidation, "solution text is required")
	}
	row, err := i.store.Get(companyID, id, formType)
	if err != nil {
		return formapimodels.FormSummary{}, err
	}
	if row == nil {
		return formapimodels.FormSummary{}, models.ErrNotFound
	}
	if row.HandlerID == nil {
		return formapimodels.FormSummary{}, errors.Wrap(models.ErrValidation, "no case handler assigned")
	}
	updMap := map[string]interface{}{
		solutionColumn(formType): solution,
	}
	if formType == models.FormTypeDeviation {
		// only the deviation form carries a secondary notes field
		updMap["notes"] = notes
	}
	err = i.store.UpdateGuarded(companyID, id, formType, row.UpdatedAt, updMap)
	if err != nil {
		return formapimodels.FormSummary{}, err
	}
	return i.loadSummary(companyID, id, formType)
}

func (i impl) Archive(companyID, id string, formType models.FormType, actingUserID string) (formapimodels.FormSummary, error) {
	return i.ChangeStatus(companyID, id, formType, models.FormStatusArchived, actingUserID)
}

func (i impl) Delete(companyID, id string, formType models.FormType) error {
	return i.store.Delete(companyID, id, formType)
}

func (i impl) ListByStatus(companyID string, filter formapimodels.ListFilter) ([]formapimodels.FormSummary, error) {
	return i.store.List(companyID, filter.FormType, filter.Status)
}

func (i impl) loadSummary(companyID, id string, formType models.FormType) (formapimodels.FormSummary, error) {
	summary, err := i.store.GetSummary(companyID, id, formType)
	if err != nil {
		return formapimodels.FormSummary{}, err
	}
	if summary == nil {
		return formapimodels.FormSummary{}, models.ErrNotFound
	}
	return *summary, nil
}

// the SJA form keeps its resolution in the comments column
func solutionColumn(formType models.FormType) string {
	if formType == models.FormTypeSJA {
		return "comments"
	}
	return "solution"
}
