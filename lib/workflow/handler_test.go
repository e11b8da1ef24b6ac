package workflow

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	formstore "bygg-tools-backend/lib/forms/store"
	"bygg-tools-backend/models"
	formapimodels "bygg-tools-backend/models/api/form"
	dbmodels "bygg-tools-backend/models/db"
)

// fakeRow keeps the status in its persisted label form so the tests exercise
// the same storage codec the real store goes through.
type fakeRow struct {
	id          string
	companyID   string
	formType    models.FormType
	statusLabel string
	handlerID   *string
	solution    string
	comments    string
	notes       string
	createdAt   time.Time
	updatedAt   time.Time
}

type fakeFormStore struct {
	rows map[string]*fakeRow
	// beforeUpdate runs between the handler's read and its guarded write,
	// simulating a concurrent writer.
	beforeUpdate func()
}

func newFakeFormStore(rows ...*fakeRow) *fakeFormStore {
	s := &fakeFormStore{rows: map[string]*fakeRow{}}
	for _, r := range rows {
		s.rows[string(r.formType)+"/"+r.id] = r
	}
	return s
}

func (s *fakeFormStore) find(companyID, id string, formType models.FormType) *fakeRow {
	row, exist := s.rows[string(formType)+"/"+id]
	if !exist || row.companyID != companyID {
		return nil
	}
	return row
}

func (s *fakeFormStore) CreateDeviation(rec dbmodels.DeviationForm) (string, error) {
	return "", errors.New("not used")
}

func (s *fakeFormStore) CreateChange(rec dbmodels.ChangeForm) (string, error) {
	return "", errors.New("not used")
}

func (s *fakeFormStore) CreateSJA(rec dbmodels.SJAForm) (string, error) {
	return "", errors.New("not used")
}

func (s *fakeFormStore) Get(companyID, id string, formType models.FormType) (*formstore.FormRow, error) {
	row := s.find(companyID, id, formType)
	if row == nil {
		return nil, nil
	}
	solution := row.solution
	if formType == models.FormTypeSJA {
		solution = row.comments
	}
	return &formstore.FormRow{
		ID:        row.id,
		CompanyID: row.companyID,
		Type:      formType,
		Status:    models.FormStatusFromStorage(row.statusLabel, formType),
		HandlerID: row.handlerID,
		Solution:  solution,
		Notes:     row.notes,
		CreatedAt: row.createdAt,
		UpdatedAt: row.updatedAt,
	}, nil
}

func (s *fakeFormStore) GetSummary(companyID, id string, formType models.FormType) (*formapimodels.FormSummary, error) {
	row := s.find(companyID, id, formType)
	if row == nil {
		return nil, nil
	}
	status := models.FormStatusFromStorage(row.statusLabel, formType)
	solution := row.solution
	if formType == models.FormTypeSJA {
		solution = row.comments
	}
	summary := formapimodels.FormSummary{
		ID:         row.id,
		FormType:   formType,
		Status:     status,
		StatusName: status.ToHuman(),
		Solution:   solution,
		Notes:      row.notes,
		CreatedAt:  row.createdAt,
	}
	if row.handlerID != nil {
		summary.Handler = &formapimodels.UserRef{ID: *row.handlerID}
	}
	return &summary, nil
}

func (s *fakeFormStore) UpdateGuarded(companyID, id string, formType models.FormType, seenUpdatedAt time.Time, updMap map[string]interface{}) error {
	if s.beforeUpdate != nil {
		s.beforeUpdate()
		s.beforeUpdate = nil
	}
	row := s.find(companyID, id, formType)
	if row == nil {
		return models.ErrNotFound
	}
	if !row.updatedAt.Equal(seenUpdatedAt) {
		return models.ErrConflict
	}
	for column, value := range updMap {
		switch column {
		case "status":
			row.statusLabel = value.(string)
		case "handler_id":
			handlerID := value.(string)
			row.handlerID = &handlerID
		case "solution":
			row.solution = value.(string)
		case "comments":
			row.comments = value.(string)
		case "notes":
			row.notes = value.(string)
		default:
			return errors.Errorf("unexpected column: %s", column)
		}
	}
	row.updatedAt = row.updatedAt.Add(time.Second)
	return nil
}

func (s *fakeFormStore) Delete(companyID, id string, formType models.FormType) error {
	row := s.find(companyID, id, formType)
	if row == nil {
		return models.ErrNotFound
	}
	delete(s.rows, string(formType)+"/"+id)
	return nil
}

func (s *fakeFormStore) List(companyID string, formType *models.FormType, status *models.FormStatus) ([]formapimodels.FormSummary, error) {
	result := []formapimodels.FormSummary{}
	for _, row := range s.rows {
		if row.companyID != companyID {
			continue
		}
		if formType != nil && row.formType != *formType {
			continue
		}
		if status != nil && row.statusLabel != status.StorageLabel(row.formType) {
			continue
		}
		summary, err := s.GetSummary(companyID, row.id, row.formType)
		if err != nil {
			return nil, err
		}
		result = append(result, *summary)
	}
	formstore.SortSummaries(result)
	return result, nil
}

func (s *fakeFormStore) LastNumber(companyID string, formType models.FormType) (string, error) {
	return "", errors.New("not used")
}

const (
	testCompanyID = "c-1"
	testHandlerID = "u-handler"
)

func deviationRow(id string, status models.FormStatus) *fakeRow {
	return &fakeRow{
		id:          id,
		companyID:   testCompanyID,
		formType:    models.FormTypeDeviation,
		statusLabel: status.StorageLabel(models.FormTypeDeviation),
		createdAt:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		updatedAt:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestChangeStatus(t *testing.T) {
	t.Run("assigns the acting user as case handler", func(t *testing.T) {
		store := newFakeFormStore(deviationRow("f-1", models.FormStatusUnprocessed))
		handler := NewInstance(store)

		summary, err := handler.ChangeStatus(testCompanyID, "f-1", models.FormTypeDeviation, models.FormStatusInProgress, testHandlerID)
		require.NoError(t, err)
		require.Equal(t, models.FormStatusInProgress, summary.Status)
		require.Equal(t, "Under behandling", summary.StatusName)
		require.NotNil(t, summary.Handler)
		require.Equal(t, testHandlerID, summary.Handler.ID)
	})

	t.Run("change form persists in-progress as open", func(t *testing.T) {
		row := &fakeRow{
			id:          "f-2",
			companyID:   testCompanyID,
			formType:    models.FormTypeChange,
			statusLabel: "UNPROCESSED",
			updatedAt:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		}
		store := newFakeFormStore(row)
		handler := NewInstance(store)

		summary, err := handler.ChangeStatus(testCompanyID, "f-2", models.FormTypeChange, models.FormStatusInProgress, testHandlerID)
		require.NoError(t, err)
		require.Equal(t, "OPEN", row.statusLabel)
		require.Equal(t, models.FormStatusInProgress, summary.Status)
	})

	t.Run("archive requires done", func(t *testing.T) {
		store := newFakeFormStore(deviationRow("f-3", models.FormStatusInProgress))
		handler := NewInstance(store)

		_, err := handler.ChangeStatus(testCompanyID, "f-3", models.FormTypeDeviation, models.FormStatusArchived, testHandlerID)
		require.ErrorIs(t, err, models.ErrInvalidTransition)

		_, err = handler.Archive(testCompanyID, "f-3", models.FormTypeDeviation, testHandlerID)
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run("done can be archived", func(t *testing.T) {
		store := newFakeFormStore(deviationRow("f-4", models.FormStatusDone))
		handler := NewInstance(store)

		summary, err := handler.Archive(testCompanyID, "f-4", models.FormTypeDeviation, testHandlerID)
		require.NoError(t, err)
		require.Equal(t, models.FormStatusArchived, summary.Status)
	})

	t.Run("archived forms are frozen", func(t *testing.T) {
		store := newFakeFormStore(deviationRow("f-5", models.FormStatusArchived))
		handler := NewInstance(store)

		for _, target := range []models.FormStatus{models.FormStatusUnprocessed, models.FormStatusInProgress, models.FormStatusDone} {
			_, err := handler.ChangeStatus(testCompanyID, "f-5", models.FormTypeDeviation, target, testHandlerID)
			require.ErrorIs(t, err, models.ErrInvalidTransition)
		}
	})

	t.Run("unknown target status", func(t *testing.T) {
		store := newFakeFormStore(deviationRow("f-6", models.FormStatusUnprocessed))
		handler := NewInstance(store)

		_, err := handler.ChangeStatus(testCompanyID, "f-6", models.FormTypeDeviation, models.FormStatus("DELETED"), testHandlerID)
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run("unknown form id", func(t *testing.T) {
		store := newFakeFormStore()
		handler := NewInstance(store)

		_, err := handler.ChangeStatus(testCompanyID, "missing", models.FormTypeDeviation, models.FormStatusInProgress, testHandlerID)
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("other company's form is invisible", func(t *testing.T) {
		store := newFakeFormStore(deviationRow("f-7", models.FormStatusUnprocessed))
		handler := NewInstance(store)

		_, err := handler.ChangeStatus("c-other", "f-7", models.FormTypeDeviation, models.FormStatusInProgress, testHandlerID)
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("concurrent update is rejected", func(t *testing.T) {
		row := deviationRow("f-8", models.FormStatusUnprocessed)
		store := newFakeFormStore(row)
		store.beforeUpdate = func() {
			row.updatedAt = row.updatedAt.Add(time.Minute)
		}
		handler := NewInstance(store)

		_, err := handler.ChangeStatus(testCompanyID, "f-8", models.FormTypeDeviation, models.FormStatusInProgress, testHandlerID)
		require.ErrorIs(t, err, models.ErrConflict)
	})
}

func TestRecordSolution(t *testing.T) {
	assignedRow := func(id string, formType models.FormType) *fakeRow {
		handlerID := testHandlerID
		return &fakeRow{
			id:          id,
			companyID:   testCompanyID,
			formType:    formType,
			statusLabel: models.FormStatusInProgress.StorageLabel(formType),
			handlerID:   &handlerID,
			updatedAt:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		}
	}

	t.Run("deviation writes solution and notes", func(t *testing.T) {
		row := assignedRow("f-1", models.FormTypeDeviation)
		store := newFakeFormStore(row)
		handler := NewInstance(store)

		summary, err := handler.RecordSolution(testCompanyID, "f-1", models.FormTypeDeviation, "strammet rekkverket", "kontrollert av BAS")
		require.NoError(t, err)
		require.Equal(t, "strammet rekkverket", summary.Solution)
		require.Equal(t, "kontrollert av BAS", summary.Notes)
		require.Equal(t, "strammet rekkverket", row.solution)
		require.Equal(t, "kontrollert av BAS", row.notes)
	})

	t.Run("sja keeps the resolution in comments", func(t *testing.T) {
		row := assignedRow("f-2", models.FormTypeSJA)
		store := newFakeFormStore(row)
		handler := NewInstance(store)

		summary, err := handler.RecordSolution(testCompanyID, "f-2", models.FormTypeSJA, "tiltak gjennomført", "")
		require.NoError(t, err)
		require.Equal(t, "tiltak gjennomført", summary.Solution)
		require.Equal(t, "tiltak gjennomført", row.comments)
		require.Empty(t, row.solution)
		require.Empty(t, row.notes)
	})

	t.Run("change form ignores notes", func(t *testing.T) {
		row := assignedRow("f-3", models.FormTypeChange)
		store := newFakeFormStore(row)
		handler := NewInstance(store)

		_, err := handler.RecordSolution(testCompanyID, "f-3", models.FormTypeChange, "endring godkjent", "skal ikke lagres")
		require.NoError(t, err)
		require.Equal(t, "endring godkjent", row.solution)
		require.Empty(t, row.notes)
	})

	t.Run("solution may be replaced", func(t *testing.T) {
		row := assignedRow("f-4", models.FormTypeDeviation)
		store := newFakeFormStore(row)
		handler := NewInstance(store)

		_, err := handler.RecordSolution(testCompanyID, "f-4", models.FormTypeDeviation, "first", "")
		require.NoError(t, err)
		summary, err := handler.RecordSolution(testCompanyID, "f-4", models.FormTypeDeviation, "second", "")
		require.NoError(t, err)
		require.Equal(t, "second", summary.Solution)
	})

	t.Run("empty solution is rejected", func(t *testing.T) {
		store := newFakeFormStore(assignedRow("f-5", models.FormTypeDeviation))
		handler := NewInstance(store)

		_, err := handler.RecordSolution(testCompanyID, "f-5", models.FormTypeDeviation, "", "")
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("requires an assigned case handler", func(t *testing.T) {
		store := newFakeFormStore(deviationRow("f-6", models.FormStatusUnprocessed))
		handler := NewInstance(store)

		_, err := handler.RecordSolution(testCompanyID, "f-6", models.FormTypeDeviation, "løsning", "")
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("unknown form id", func(t *testing.T) {
		store := newFakeFormStore()
		handler := NewInstance(store)

		_, err := handler.RecordSolution(testCompanyID, "missing", models.FormTypeDeviation, "løsning", "")
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes the form", func(t *testing.T) {
		store := newFakeFormStore(deviationRow("f-1", models.FormStatusUnprocessed))
		handler := NewInstance(store)

		require.NoError(t, handler.Delete(testCompanyID, "f-1", models.FormTypeDeviation))
		require.ErrorIs(t, handler.Delete(testCompanyID, "f-1", models.FormTypeDeviation), models.ErrNotFound)
	})

	t.Run("absent form", func(t *testing.T) {
		store := newFakeFormStore()
		handler := NewInstance(store)

		require.ErrorIs(t, handler.Delete(testCompanyID, "missing", models.FormTypeDeviation), models.ErrNotFound)
	})
}

func TestListByStatus(t *testing.T) {
	handlerID := testHandlerID
	at := func(day int) time.Time {
		return time.Date(2026, 3, day, 9, 0, 0, 0, time.UTC)
	}
	first := deviationRow("f-1", models.FormStatusUnprocessed)
	first.createdAt = at(12)
	second := deviationRow("f-2", models.FormStatusDone)
	second.createdAt = at(8)
	store := newFakeFormStore(
		first,
		second,
		&fakeRow{
			id:          "f-3",
			companyID:   testCompanyID,
			formType:    models.FormTypeChange,
			statusLabel: "OPEN",
			handlerID:   &handlerID,
			createdAt:   at(10),
			updatedAt:   at(10),
		},
		&fakeRow{
			id:          "f-4",
			companyID:   testCompanyID,
			formType:    models.FormTypeSJA,
			statusLabel: "UNPROCESSED",
			createdAt:   at(11),
			updatedAt:   at(11),
		},
	)
	handler := NewInstance(store)

	t.Run("filter by status matches the stored label", func(t *testing.T) {
		status := models.FormStatusInProgress
		list, err := handler.ListByStatus(testCompanyID, formapimodels.ListFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "f-3", list[0].ID)
		require.Equal(t, models.FormStatusInProgress, list[0].Status)
	})

	t.Run("filter by type", func(t *testing.T) {
		formType := models.FormTypeDeviation
		list, err := handler.ListByStatus(testCompanyID, formapimodels.ListFilter{FormType: &formType})
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run("merged board is newest first across types", func(t *testing.T) {
		list, err := handler.ListByStatus(testCompanyID, formapimodels.ListFilter{})
		require.NoError(t, err)
		require.Len(t, list, 4)
		ids := []string{}
		for _, item := range list {
			ids = append(ids, item.ID)
		}
		require.Equal(t, []string{"f-1", "f-4", "f-3", "f-2"}, ids)
	})
}
