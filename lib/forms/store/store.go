package formstore

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bygg-tools-backend/models"
	formapimodels "bygg-tools-backend/models/api/form"
	dbmodels "bygg-tools-backend/models/db"
)

// FormRow is the common subset of the three form tables the workflow engine
// operates on. UpdatedAt doubles as the optimistic-concurrency token: every
// guarded update requires the value read before validation.
type FormRow struct {
	ID        string
	CompanyID string
	Type      models.FormType
	Status    models.FormStatus
	HandlerID *string
	Solution  string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Provider interface {
	CreateDeviation(rec dbmodels.DeviationForm) (id string, err error)
	CreateChange(rec dbmodels.ChangeForm) (id string, err error)
	CreateSJA(rec dbmodels.SJAForm) (id string, err error)
	Get(companyID, id string, formType models.FormType) (row *FormRow, err error)
	GetSummary(companyID, id string, formType models.FormType) (*formapimodels.FormSummary, error)
	// UpdateGuarded applies updMap to the record only when its updated_at
	// still equals seenUpdatedAt. Returns models.ErrConflict on a stale
	// token and models.ErrNotFound when the record is gone.
	UpdateGuarded(companyID, id string, formType models.FormType, seenUpdatedAt time.Time, updMap map[string]interface{}) error
	Delete(companyID, id string, formType models.FormType) error
	List(companyID string, formType *models.FormType, status *models.FormStatus) ([]formapimodels.FormSummary, error)
	LastNumber(companyID string, formType models.FormType) (number string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateDeviation(rec dbmodels.DeviationForm) (string, error) {
	err := i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateChange(rec dbmodels.ChangeForm) (string, error) {
	err := i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateSJA(rec dbmodels.SJAForm) (string, error) {
	err := i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Get(companyID, id string, formType models.FormType) (*FormRow, error) {
	switch formType {
	case models.FormTypeDeviation:
		rec := dbmodels.DeviationForm{}
		if found, err := i.first(companyID, id, &rec); err != nil || !found {
			return nil, err
		}
		return &FormRow{
			ID:        rec.ID,
			CompanyID: rec.CompanyID,
			Type:      formType,
			Status:    rec.CurrentStatus(),
			HandlerID: rec.HandlerID,
			Solution:  rec.Solution,
			Notes:     rec.Notes,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		}, nil
	case models.FormTypeChange:
		rec := dbmodels.ChangeForm{}
		if found, err := i.first(companyID, id, &rec); err != nil || !found {
			return nil, err
		}
		return &FormRow{
			ID:        rec.ID,
			CompanyID: rec.CompanyID,
			Type:      formType,
			Status:    rec.CurrentStatus(),
			HandlerID: rec.HandlerID,
			Solution:  rec.Solution,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		}, nil
	case models.FormTypeSJA:
		rec := dbmodels.SJAForm{}
		if found, err := i.first(companyID, id, &rec); err != nil || !found {
			return nil, err
		}
		return &FormRow{
			ID:        rec.ID,
			CompanyID: rec.CompanyID,
			Type:      formType,
			Status:    rec.CurrentStatus(),
			HandlerID: rec.HandlerID,
			Solution:  rec.Comments,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		}, nil
	}
	return nil, errors.Errorf("unknown form type: %s", formType)
}

func (i impl) first(companyID, id string, out interface{}) (found bool, err error) {
	err = i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		First(out).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) GetSummary(companyID, id string, formType models.FormType) (*formapimodels.FormSummary, error) {
	tx := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("CreatedBy").
		Preload("Handler")
	var summary formapimodels.FormSummary
	switch formType {
	case models.FormTypeDeviation:
		rec := dbmodels.DeviationForm{}
		if err := tx.First(&rec).Error; err != nil {
			return nil, ignoreNotFound(err)
		}
		summary = rec.ToSummary()
	case models.FormTypeChange:
		rec := dbmodels.ChangeForm{}
		if err := tx.First(&rec).Error; err != nil {
			return nil, ignoreNotFound(err)
		}
		summary = rec.ToSummary()
	case models.FormTypeSJA:
		rec := dbmodels.SJAForm{}
		if err := tx.First(&rec).Error; err != nil {
			return nil, ignoreNotFound(err)
		}
		summary = rec.ToSummary()
	default:
		return nil, errors.Errorf("unknown form type: %s", formType)
	}
	return &summary, nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (i impl) UpdateGuarded(companyID, id string, formType models.FormType, seenUpdatedAt time.Time, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(modelFor(formType)).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Where("updated_at = ?", seenUpdatedAt).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		// Either the record disappeared or someone touched it after our read.
		row, err := i.Get(companyID, id, formType)
		if err != nil {
			return err
		}
		if row == nil {
			return models.ErrNotFound
		}
		return models.ErrConflict
	}
	return nil
}

func (i impl) Delete(companyID, id string, formType models.FormType) error {
	tx := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Delete(modelFor(formType))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) List(companyID string, formType *models.FormType, status *models.FormStatus) ([]formapimodels.FormSummary, error) {
	result := []formapimodels.FormSummary{}
	types := []models.FormType{models.FormTypeDeviation, models.FormTypeChange, models.FormTypeSJA}
	if formType != nil {
		types = []models.FormType{*formType}
	}
	for _, t := range types {
		tx := i.db.
			Where("company_id = ?", companyID).
			Order("created_at desc").
			Preload("CreatedBy").
			Preload("Handler")
		if status != nil {
			tx = tx.Where("status = ?", status.StorageLabel(t))
		}
		switch t {
		case models.FormTypeDeviation:
			list := []dbmodels.DeviationForm{}
			if err := tx.Find(&list).Error; err != nil {
				return nil, err
			}
			for _, rec := range list {
				result = append(result, rec.ToSummary())
			}
		case models.FormTypeChange:
			list := []dbmodels.ChangeForm{}
			if err := tx.Find(&list).Error; err != nil {
				return nil, err
			}
			for _, rec := range list {
				result = append(result, rec.ToSummary())
			}
		case models.FormTypeSJA:
			list := []dbmodels.SJAForm{}
			if err := tx.Find(&list).Error; err != nil {
				return nil, err
			}
			for _, rec := range list {
				result = append(result, rec.ToSummary())
			}
		}
	}
	// each type list arrives ordered, the merged board needs one order
	SortSummaries(result)
	return result, nil
}

// SortSummaries orders a merged board listing newest first.
func SortSummaries(list []formapimodels.FormSummary) {
	sort.SliceStable(list, func(a, b int) bool {
		return list[a].CreatedAt.After(list[b].CreatedAt)
	})
}

func (i impl) LastNumber(companyID string, formType models.FormType) (string, error) {
	var number string
	var err error
	switch formType {
	case models.FormTypeDeviation:
		err = i.db.Model(&dbmodels.DeviationForm{}).
			Select("coalesce(max(deviation_number), '')").
			Where("company_id = ?", companyID).
			Find(&number).
			Error
	case models.FormTypeChange:
		err = i.db.Model(&dbmodels.ChangeForm{}).
			Select("coalesce(max(change_number), '')").
			Where("company_id = ?", companyID).
			Find(&number).
			Error
	default:
		return "", errors.Errorf("form type has no number sequence: %s", formType)
	}
	return number, err
}

func modelFor(formType models.FormType) interface{} {
	switch formType {
	case models.FormTypeChange:
		return &dbmodels.ChangeForm{}
	case models.FormTypeSJA:
		return &dbmodels.SJAForm{}
	default:
		return &dbmodels.DeviationForm{}
	}
}
