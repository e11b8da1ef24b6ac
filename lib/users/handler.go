package usershandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"bygg-tools-backend/db"
	emailverify "bygg-tools-backend/lib/email-verify"
	"bygg-tools-backend/lib/smtp"
	usersstore "bygg-tools-backend/lib/users/store"
	authutils "bygg-tools-backend/lib/utils/auth-utils"
	"bygg-tools-backend/models"
	companyapimodels "bygg-tools-backend/models/api/company"
	dbmodels "bygg-tools-backend/models/db"
)

type Provider interface {
	CreateUser(companyID string, request companyapimodels.CreateUser) (string, error)
	UpdateUser(companyID, userID string, request companyapimodels.UpdateUser) error
	DeleteUser(companyID, userID string) error
	GetListUsers(companyID string, page, limit int) (usersList []companyapimodels.CompanyUser, err error)
	GetByID(companyID, userID string) (user companyapimodels.CompanyUser, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		userStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	userStore usersstore.Provider
}

func (i impl) GetByID(companyID, userID string) (user companyapimodels.CompanyUser, err error) {
	userDB, err := i.userStore.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("failed to load user")
		return companyapimodels.CompanyUser{}, err
	}
	if userDB == nil || userDB.CompanyID != companyID {
		return companyapimodels.CompanyUser{}, models.ErrNotFound
	}
	return userDB.ToModel(), nil
}

func (i impl) CreateUser(companyID string, request companyapimodels.CreateUser) (string, error) {
	userExist, err := i.userStore.ExistByEmail(request.Email)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("failed to check for existing user")
		return "", err
	}
	if userExist {
		return "", errors.New("a user with this email already exists")
	}
	hashed, err := authutils.HashPassword(request.Password)
	if err != nil {
		return "", err
	}
	rec := dbmodels.CompanyUser{
		Password:        hashed,
		FirstName:       request.FirstName,
		LastName:        request.LastName,
		Email:           request.Email,
		IsActive:        true,
		PhoneNumber:     request.PhoneNumber,
		Position:        request.Position,
		CompanyID:       companyID,
		Status:          models.UserWorkingStatus,
		IsEmailVerified: !smtp.Instance.IsConfigured(),
	}
	switch {
	case request.IsAdmin:
		rec.Role = models.CompanyAdminRole
	case request.IsManager:
		rec.Role = models.CompanyManagerRole
	default:
		rec.Role = models.CompanyUserRole
	}
	id, err := i.userStore.Create(rec)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("failed to create user")
		return "", err
	}
	if smtp.Instance.IsConfigured() {
		if err := emailverify.Instance.SendVerifyCode(request.Email); err != nil {
			log.WithField("email", request.Email).WithError(err).Error("failed to send verification email")
		}
	}
	return id, nil
}

func (i impl) UpdateUser(companyID, userID string, request companyapimodels.UpdateUser) error {
	_, err := i.GetByID(companyID, userID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{}
	if request.FirstName != nil {
		updMap["first_name"] = *request.FirstName
	}
	if request.LastName != nil {
		updMap["last_name"] = *request.LastName
	}
	if request.PhoneNumber != nil {
		updMap["phone_number"] = *request.PhoneNumber
	}
	if request.Position != nil {
		updMap["position"] = *request.Position
	}
	if request.Password != nil {
		if len(*request.Password) < 8 {
			return errors.New("password must be at least 8 characters")
		}
		hashed, err := authutils.HashPassword(*request.Password)
		if err != nil {
			return err
		}
		updMap["password"] = hashed
	}
	err = i.userStore.Update(userID, updMap)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("failed to update user")
		return err
	}
	return nil
}

func (i impl) DeleteUser(companyID, userID string) error {
	_, err := i.GetByID(companyID, userID)
	if err != nil {
		return err
	}
	err = i.userStore.Delete(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("failed to delete user")
		return err
	}
	return nil
}

func (i impl) GetListUsers(companyID string, page, limit int) (usersList []companyapimodels.CompanyUser, err error) {
	list, err := i.userStore.GetList(companyID, page, limit)
	if err != nil {
		log.WithField("company_id", companyID).WithError(err).Error("failed to list company users")
		return nil, err
	}
	for _, user := range list {
		usersList = append(usersList, user.ToModel())
	}
	return usersList, nil
}
