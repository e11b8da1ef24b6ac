package forms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"bygg-tools-backend/db"
	formstore "bygg-tools-backend/lib/forms/store"
	"bygg-tools-backend/lib/notification"
	"bygg-tools-backend/models"
	formapimodels "bygg-tools-backend/models/api/form"
	dbmodels "bygg-tools-backend/models/db"
)

const (
	deviationNumberPrefix = "AV"
	changeNumberPrefix    = "EN"
)

type Provider interface {
	CreateDeviation(companyID, userID string, req formapimodels.CreateDeviationRequest) (formapimodels.FormSummary, error)
	CreateChange(companyID, userID string, req formapimodels.CreateChangeRequest) (formapimodels.FormSummary, error)
	CreateSJA(companyID, userID string, req formapimodels.CreateSJARequest) (formapimodels.FormSummary, error)
	GetByID(companyID, id string, formType models.FormType) (formapimodels.FormSummary, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(formstore.NewInstance(db.DB), notification.Instance)
}

// NewInstance wires the submission handler with an explicit notification
// sink; sink failures never surface to the caller.
func NewInstance(store formstore.Provider, sink notification.Provider) Provider {
	return impl{
		store: store,
		sink:  sink,
	}
}

type impl struct {
	store formstore.Provider
	sink  notification.Provider
}

func (i impl) CreateDeviation(companyID, userID string, req formapimodels.CreateDeviationRequest) (formapimodels.FormSummary, error) {
	number, err := i.nextNumber(companyID, models.FormTypeDeviation, deviationNumberPrefix)
	if err != nil {
		return formapimodels.FormSummary{}, err
	}
	rec := dbmodels.DeviationForm{
		BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
		DeviationNumber:  number,
		Title:            req.Title,
		Content:          req.Content,
		Status:           models.FormStatusUnprocessed.StorageLabel(models.FormTypeDeviation),
		ProjectID:        req.ProjectID,
		CreatedByID:      userID,
	}
	id, err := i.store.CreateDeviation(rec)
	if err != nil {
		return formapimodels.FormSummary{}, errors.Wrap(err, "failed to create deviation form")
	}
	return i.finishCreate(companyID, id, models.FormTypeDeviation)
}

func (i impl) CreateChange(companyID, userID string, req formapimodels.CreateChangeRequest) (formapimodels.FormSummary, error) {
	number, err := i.nextNumber(companyID, models.FormTypeChange, changeNumberPrefix)
	if err != nil {
		return formapimodels.FormSummary{}, err
	}
	rec := dbmodels.ChangeForm{
		BaseCompanyModel:   dbmodels.BaseCompanyModel{CompanyID: companyID},
		ChangeNumber:       number,
		ProjectID:          req.ProjectID,
		ProjectName:        req.ProjectName,
		Description:        req.Description,
		SubmittedBy:        req.SubmittedBy,
		ImplementationDate: req.ImplementationDate,
		FollowUpPerson:     req.FollowUpPerson,
		Status:             models.FormStatusUnprocessed.StorageLabel(models.FormTypeChange),
		CreatedByID:        userID,
	}
	id, err := i.store.CreateChange(rec)
	if err != nil {
		return formapimodels.FormSummary{}, errors.Wrap(err, "failed to create change form")
	}
	return i.finishCreate(companyID, id, models.FormTypeChange)
}

func (i impl) CreateSJA(companyID, userID string, req formapimodels.CreateSJARequest) (formapimodels.FormSummary, error) {
	rec := dbmodels.SJAForm{
		BaseCompanyModel:  dbmodels.BaseCompanyModel{CompanyID: companyID},
		JobTitle:          req.JobTitle,
		JobLocation:       req.JobLocation,
		JobDate:           req.JobDate,
		Participants:      req.Participants,
		JobDescription:    req.JobDescription,
		IdentifiedRisks:   req.IdentifiedRisks,
		RiskMitigation:    req.RiskMitigation,
		ResponsiblePerson: req.ResponsiblePerson,
		Status:            models.FormStatusUnprocessed.StorageLabel(models.FormTypeSJA),
		ProjectID:         req.ProjectID,
		CreatedByID:       userID,
	}
	id, err := i.store.CreateSJA(rec)
	if err != nil {
		return formapimodels.FormSummary{}, errors.Wrap(err, "failed to create SJA form")
	}
	return i.finishCreate(companyID, id, models.FormTypeSJA)
}

func (i impl) GetByID(companyID, id string, formType models.FormType) (formapimodels.FormSummary, error) {
	summary, err := i.store.GetSummary(companyID, id, formType)
	if err != nil {
		return formapimodels.FormSummary{}, err
	}
	if summary == nil {
		return formapimodels.FormSummary{}, models.ErrNotFound
	}
	return *summary, nil
}

func (i impl) finishCreate(companyID, id string, formType models.FormType) (formapimodels.FormSummary, error) {
	summary, err := i.GetByID(companyID, id, formType)
	if err != nil {
		return formapimodels.FormSummary{}, err
	}
	if i.sink != nil {
		msg := fmt.Sprintf("Nytt %s: %s", strings.ToLower(formType.ToHuman()), summary.Title)
		i.sink.NotifyCompanyManagers(companyID, msg, "/skjemaboard")
	}
	return summary, nil
}

// nextNumber produces the next sequential form number within the tenant,
// e.g. AV00001, EN00042.
func (i impl) nextNumber(companyID string, formType models.FormType, prefix string) (string, error) {
	last, err := i.store.LastNumber(companyID, formType)
	if err != nil {
		return "", errors.Wrap(err, "failed to read last form number")
	}
	next := 1
	if digits := strings.TrimPrefix(last, prefix); digits != last {
		if n, err := strconv.Atoi(digits); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s%05d", prefix, next), nil
}
