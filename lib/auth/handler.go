package authhandler

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"bygg-tools-backend/config"
	"bygg-tools-backend/db"
	emailverify "bygg-tools-backend/lib/email-verify"
	usersstore "bygg-tools-backend/lib/users/store"
	authutils "bygg-tools-backend/lib/utils/auth-utils"
	authapimodels "bygg-tools-backend/models/api/auth"
	dbmodels "bygg-tools-backend/models/db"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	Refresh(refreshToken string) (response authapimodels.JWTResponse, err error)
	VerifyEmail(code string) error
	RequestPasswordReset(email string) error
	SetPassword(code, password string) error
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

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.userStore.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to find user by email")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("no user with this email")
		return authapimodels.JWTResponse{}, errors.New("wrong email or password")
	}
	if !user.IsActive {
		logger.Debug("user account is deactivated")
		return authapimodels.JWTResponse{}, errors.New("account is deactivated")
	}
	if !authutils.CheckPassword(user.Password, password) {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, errors.New("wrong email or password")
	}
	response, err = i.issueTokens(*user)
	if err != nil {
		logger.WithError(err).Error("failed to generate JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.userStore.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to update last login")
	}
	return response, nil
}

func (i impl) Refresh(refreshToken string) (response authapimodels.JWTResponse, err error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return authapimodels.JWTResponse{}, errors.New("invalid refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authapimodels.JWTResponse{}, errors.New("invalid refresh token")
	}
	userID, _ := claims["sub"].(string)
	if userID == "" {
		return authapimodels.JWTResponse{}, errors.New("invalid refresh token")
	}
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.JWTResponse{}, errors.New("account is deactivated")
	}
	return i.issueTokens(*user)
}

func (i impl) VerifyEmail(code string) error {
	return emailverify.Instance.VerifyCode(code)
}

// RequestPasswordReset mails a verification code to the account's email. An
// unknown email is not reported to the caller.
func (i impl) RequestPasswordReset(email string) error {
	user, err := i.userStore.FindByEmail(email)
	if err != nil {
		log.WithField("email", email).WithError(err).Error("failed to find user for password reset")
		return err
	}
	if user == nil {
		log.WithField("email", email).Debug("password reset requested for unknown email")
		return nil
	}
	return emailverify.Instance.SendVerifyCode(email)
}

func (i impl) SetPassword(code, password string) error {
	hash, err := authutils.HashPassword(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	return emailverify.Instance.SetPasswordByCode(code, hash)
}

func (i impl) issueTokens(user dbmodels.CompanyUser) (authapimodels.JWTResponse, error) {
	accessToken, err := authutils.GetToken(user.ID, user.GetFullName(), user.CompanyID, user.Role.IsCompanyAdmin(), user.Role)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
