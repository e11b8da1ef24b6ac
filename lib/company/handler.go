package companyhandler

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bygg-tools-backend/db"
	companystore "bygg-tools-backend/lib/company/store"
	filestorage "bygg-tools-backend/lib/file-storage"
	"bygg-tools-backend/lib/smtp"
	usersstore "bygg-tools-backend/lib/users/store"
	authutils "bygg-tools-backend/lib/utils/auth-utils"
	"bygg-tools-backend/models"
	companyapimodels "bygg-tools-backend/models/api/company"
	dbmodels "bygg-tools-backend/models/db"
)

type Provider interface {
	Register(ctx context.Context, request companyapimodels.CreateCompany, admin companyapimodels.CreateUser) (companyID string, err error)
	GetByID(companyID string) (companyapimodels.CompanyView, error)
	Update(companyID string, request companyapimodels.CreateCompany) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		companyStore: companystore.NewInstance(db.DB),
	}
}

type impl struct {
	companyStore companystore.Provider
}

// Register creates the company together with its first administrator account.
func (i impl) Register(ctx context.Context, request companyapimodels.CreateCompany, admin companyapimodels.CreateUser) (companyID string, err error) {
	logger := log.WithField("org_number", request.OrgNumber)
	exist, err := i.companyStore.ExistByOrgNumber(request.OrgNumber)
	if err != nil {
		logger.WithError(err).Error("failed to check for existing company")
		return "", err
	}
	if exist {
		return "", errors.New("a company with this organisation number is already registered")
	}
	hashed, err := authutils.HashPassword(admin.Password)
	if err != nil {
		return "", err
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		companyStore := companystore.NewInstance(tx)
		userStore := usersstore.NewInstance(tx)

		companyRec := dbmodels.Company{
			Name:         request.Name,
			OrgNumber:    request.OrgNumber,
			Address:      request.Address,
			PostalCode:   request.PostalCode,
			City:         request.City,
			ContactEmail: request.ContactEmail,
			ContactPhone: request.ContactPhone,
			IsActive:     true,
		}
		companyID, err = companyStore.Create(companyRec)
		if err != nil {
			return err
		}
		userExist, err := userStore.ExistByEmail(admin.Email)
		if err != nil {
			return err
		}
		if userExist {
			return errors.New("a user with this email already exists")
		}
		adminRec := dbmodels.CompanyUser{
			Password:        hashed,
			FirstName:       admin.FirstName,
			LastName:        admin.LastName,
			Email:           admin.Email,
			IsActive:        true,
			PhoneNumber:     admin.PhoneNumber,
			Position:        admin.Position,
			CompanyID:       companyID,
			Role:            models.CompanyAdminRole,
			Status:          models.UserWorkingStatus,
			IsEmailVerified: !smtp.Instance.IsConfigured(),
		}
		_, err = userStore.Create(adminRec)
		return err
	})
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("failed to register company")
		return "", err
	}
	if err := filestorage.Instance.MakeCompanyBucket(ctx, companyID); err != nil {
		log.WithField("company_id", companyID).WithError(err).Error("failed to create company bucket")
	}
	return companyID, nil
}

func (i impl) GetByID(companyID string) (companyapimodels.CompanyView, error) {
	rec, err := i.companyStore.GetByID(companyID)
	if err != nil {
		log.WithField("company_id", companyID).WithError(err).Error("failed to load company")
		return companyapimodels.CompanyView{}, err
	}
	if rec == nil {
		return companyapimodels.CompanyView{}, models.ErrNotFound
	}
	return companyapimodels.CompanyView{
		ID:             rec.ID,
		Name:           rec.Name,
		OrgNumber:      rec.OrgNumber,
		Address:        rec.Address,
		PostalCode:     rec.PostalCode,
		City:           rec.City,
		ContactEmail:   rec.ContactEmail,
		ContactPhone:   rec.ContactPhone,
		HasHseHandbook: rec.HseHandbookKey != "",
	}, nil
}

func (i impl) Update(companyID string, request companyapimodels.CreateCompany) error {
	rec, err := i.companyStore.GetByID(companyID)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	updMap := map[string]interface{}{
		"name":          request.Name,
		"address":       request.Address,
		"postal_code":   request.PostalCode,
		"city":          request.City,
		"contact_email": request.ContactEmail,
		"contact_phone": request.ContactPhone,
	}
	err = i.companyStore.Update(companyID, updMap)
	if err != nil {
		log.WithField("company_id", companyID).WithError(err).Error("failed to update company")
		return err
	}
	return nil
}
