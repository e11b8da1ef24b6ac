package forms

import (
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	formstore "bygg-tools-backend/lib/forms/store"
	"bygg-tools-backend/models"
	formapimodels "bygg-tools-backend/models/api/form"
	dbmodels "bygg-tools-backend/models/db"
)

type createdForm struct {
	formType models.FormType
	number   string
	title    string
	status   string
}

// fakeCreateStore captures created records and serves them back as summaries.
type fakeCreateStore struct {
	lastNumber string
	nextID     int
	created    map[string]createdForm
}

func newFakeCreateStore(lastNumber string) *fakeCreateStore {
	return &fakeCreateStore{
		lastNumber: lastNumber,
		created:    map[string]createdForm{},
	}
}

func (s *fakeCreateStore) register(rec createdForm) string {
	s.nextID++
	id := fmt.Sprintf("form-%d", s.nextID)
	s.created[id] = rec
	return id
}

func (s *fakeCreateStore) CreateDeviation(rec dbmodels.DeviationForm) (string, error) {
	return s.register(createdForm{
		formType: models.FormTypeDeviation,
		number:   rec.DeviationNumber,
		title:    rec.Title,
		status:   rec.Status,
	}), nil
}

func (s *fakeCreateStore) CreateChange(rec dbmodels.ChangeForm) (string, error) {
	return s.register(createdForm{
		formType: models.FormTypeChange,
		number:   rec.ChangeNumber,
		title:    rec.Description,
		status:   rec.Status,
	}), nil
}

func (s *fakeCreateStore) CreateSJA(rec dbmodels.SJAForm) (string, error) {
	return s.register(createdForm{
		formType: models.FormTypeSJA,
		title:    rec.JobTitle,
		status:   rec.Status,
	}), nil
}

func (s *fakeCreateStore) Get(companyID, id string, formType models.FormType) (*formstore.FormRow, error) {
	return nil, errors.New("not used")
}

func (s *fakeCreateStore) GetSummary(companyID, id string, formType models.FormType) (*formapimodels.FormSummary, error) {
	rec, exist := s.created[id]
	if !exist || rec.formType != formType {
		return nil, nil
	}
	status := models.FormStatusFromStorage(rec.status, formType)
	return &formapimodels.FormSummary{
		ID:         id,
		FormType:   formType,
		Number:     rec.number,
		Title:      rec.title,
		Status:     status,
		StatusName: status.ToHuman(),
		CreatedAt:  time.Now(),
	}, nil
}

func (s *fakeCreateStore) UpdateGuarded(companyID, id string, formType models.FormType, seenUpdatedAt time.Time, updMap map[string]interface{}) error {
	return errors.New("not used")
}

func (s *fakeCreateStore) Delete(companyID, id string, formType models.FormType) error {
	return errors.New("not used")
}

func (s *fakeCreateStore) List(companyID string, formType *models.FormType, status *models.FormStatus) ([]formapimodels.FormSummary, error) {
	return nil, errors.New("not used")
}

func (s *fakeCreateStore) LastNumber(companyID string, formType models.FormType) (string, error) {
	return s.lastNumber, nil
}

type sinkCall struct {
	companyID string
	message   string
	url       string
}

type fakeSink struct {
	calls []sinkCall
}

func (s *fakeSink) NotifyUser(userID, message, url string) {}

func (s *fakeSink) NotifyCompanyManagers(companyID, message, url string) {
	s.calls = append(s.calls, sinkCall{companyID: companyID, message: message, url: url})
}

func (s *fakeSink) ListForUser(userID string) ([]dbmodels.Notification, error) {
	return nil, nil
}

func (s *fakeSink) MarkRead(userID, id string) error {
	return nil
}

func TestCreateDeviation(t *testing.T) {
	t.Run("first form gets the initial number", func(t *testing.T) {
		store := newFakeCreateStore("")
		handler := NewInstance(store, nil)

		summary, err := handler.CreateDeviation("c-1", "u-1", formapimodels.CreateDeviationRequest{Title: "Manglende rekkverk"})
		require.NoError(t, err)
		require.Equal(t, "AV00001", summary.Number)
		require.Equal(t, models.FormStatusUnprocessed, summary.Status)
		require.Equal(t, "Ubehandlet", summary.StatusName)
	})

	t.Run("number continues the tenant sequence", func(t *testing.T) {
		store := newFakeCreateStore("AV00041")
		handler := NewInstance(store, nil)

		summary, err := handler.CreateDeviation("c-1", "u-1", formapimodels.CreateDeviationRequest{Title: "Feil stillas"})
		require.NoError(t, err)
		require.Equal(t, "AV00042", summary.Number)
	})

	t.Run("managers are notified", func(t *testing.T) {
		store := newFakeCreateStore("")
		sink := &fakeSink{}
		handler := NewInstance(store, sink)

		_, err := handler.CreateDeviation("c-1", "u-1", formapimodels.CreateDeviationRequest{Title: "Manglende rekkverk"})
		require.NoError(t, err)
		require.Len(t, sink.calls, 1)
		require.Equal(t, "c-1", sink.calls[0].companyID)
		require.Equal(t, "Nytt avviksskjema: Manglende rekkverk", sink.calls[0].message)
		require.Equal(t, "/skjemaboard", sink.calls[0].url)
	})
}

func TestCreateChange(t *testing.T) {
	t.Run("uses the change number prefix", func(t *testing.T) {
		store := newFakeCreateStore("EN00007")
		handler := NewInstance(store, nil)

		summary, err := handler.CreateChange("c-1", "u-1", formapimodels.CreateChangeRequest{
			ProjectName: "Byggetrinn 2",
			Description: "Flytte ventilasjonssjakt",
		})
		require.NoError(t, err)
		require.Equal(t, "EN00008", summary.Number)
		require.Equal(t, models.FormStatusUnprocessed, summary.Status)
	})

	t.Run("garbage in the sequence restarts it", func(t *testing.T) {
		store := newFakeCreateStore("EN-old-format")
		handler := NewInstance(store, nil)

		summary, err := handler.CreateChange("c-1", "u-1", formapimodels.CreateChangeRequest{
			ProjectName: "Byggetrinn 2",
			Description: "Flytte ventilasjonssjakt",
		})
		require.NoError(t, err)
		require.Equal(t, "EN00001", summary.Number)
	})
}

func TestCreateSJA(t *testing.T) {
	t.Run("sja forms carry no number", func(t *testing.T) {
		store := newFakeCreateStore("")
		sink := &fakeSink{}
		handler := NewInstance(store, sink)

		summary, err := handler.CreateSJA("c-1", "u-1", formapimodels.CreateSJARequest{
			JobTitle:    "Varmt arbeid tak",
			JobLocation: "Bygg A",
		})
		require.NoError(t, err)
		require.Empty(t, summary.Number)
		require.Equal(t, models.FormStatusUnprocessed, summary.Status)
		require.Len(t, sink.calls, 1)
		require.Equal(t, "Nytt sikker jobb-analyse: Varmt arbeid tak", sink.calls[0].message)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		store := newFakeCreateStore("")
		handler := NewInstance(store, nil)

		_, err := handler.GetByID("c-1", "missing", models.FormTypeDeviation)
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("type mismatch behaves as absent", func(t *testing.T) {
		store := newFakeCreateStore("")
		handler := NewInstance(store, nil)

		summary, err := handler.CreateDeviation("c-1", "u-1", formapimodels.CreateDeviationRequest{Title: "Avvik"})
		require.NoError(t, err)

		_, err = handler.GetByID("c-1", summary.ID, models.FormTypeSJA)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}
