package hse

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bygg-tools-backend/db"
	filestorage "bygg-tools-backend/lib/file-storage"
	hsestore "bygg-tools-backend/lib/hse/store"
	"bygg-tools-backend/models"
	dbmodels "bygg-tools-backend/models/db"
)

// HSE documents: the company handbook plus named documents, stored in the
// company bucket with the metadata row in the database.
type Provider interface {
	UploadHandbook(ctx context.Context, companyID, fileName string, file io.Reader, size int64) error
	GetHandbook(ctx context.Context, companyID string) ([]byte, error)
	DeleteHandbook(ctx context.Context, companyID string) error
	UploadDocument(ctx context.Context, companyID, name, fileName string, file io.Reader, size int64) (id string, err error)
	GetDocument(ctx context.Context, companyID, id string) (fileName string, data []byte, err error)
	DeleteDocument(ctx context.Context, companyID, id string) error
	ListDocuments(companyID string) ([]dbmodels.HseDocument, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   hsestore.NewInstance(db.DB),
		storage: filestorage.Instance,
	}
}

type impl struct {
	store   hsestore.Provider
	storage filestorage.Provider
}

func (i impl) UploadHandbook(ctx context.Context, companyID, fileName string, file io.Reader, size int64) error {
	if err := i.storage.MakeCompanyBucket(ctx, companyID); err != nil {
		return err
	}
	objectKey := fmt.Sprintf("hse/handbook/%s", fileName)
	if err := i.storage.UploadFile(ctx, companyID, objectKey, file, size, "application/pdf"); err != nil {
		return err
	}
	return i.store.SetHandbookKey(companyID, objectKey)
}

func (i impl) GetHandbook(ctx context.Context, companyID string) ([]byte, error) {
	key, err := i.store.GetHandbookKey(companyID)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, models.ErrNotFound
	}
	return i.storage.GetFile(ctx, companyID, key)
}

func (i impl) DeleteHandbook(ctx context.Context, companyID string) error {
	key, err := i.store.GetHandbookKey(companyID)
	if err != nil {
		return err
	}
	if key == "" {
		return models.ErrNotFound
	}
	if err := i.storage.DeleteFile(ctx, companyID, key); err != nil {
		// keep going, the metadata row decides what the user sees
		log.WithError(err).Warn("failed to delete handbook object")
	}
	return i.store.SetHandbookKey(companyID, "")
}

func (i impl) UploadDocument(ctx context.Context, companyID, name, fileName string, file io.Reader, size int64) (string, error) {
	if err := i.storage.MakeCompanyBucket(ctx, companyID); err != nil {
		return "", err
	}
	objectKey := fmt.Sprintf("hse/docs/%s-%s", uuid.NewString(), fileName)
	if err := i.storage.UploadFile(ctx, companyID, objectKey, file, size, ""); err != nil {
		return "", err
	}
	return i.store.Create(dbmodels.HseDocument{
		BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
		Name:             name,
		FileName:         fileName,
		ObjectKey:        objectKey,
		Size:             size,
	})
}

func (i impl) GetDocument(ctx context.Context, companyID, id string) (string, []byte, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, models.ErrNotFound
	}
	data, err := i.storage.GetFile(ctx, companyID, rec.ObjectKey)
	if err != nil {
		return "", nil, err
	}
	return rec.FileName, data, nil
}

func (i impl) DeleteDocument(ctx context.Context, companyID, id string) error {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	if err := i.storage.DeleteFile(ctx, companyID, rec.ObjectKey); err != nil {
		log.WithError(err).Warn("failed to delete document object")
	}
	return i.store.Delete(companyID, id)
}

func (i impl) ListDocuments(companyID string) ([]dbmodels.HseDocument, error) {
	return i.store.List(companyID)
}
