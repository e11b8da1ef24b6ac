package emailverify

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bygg-tools-backend/config"
	"bygg-tools-backend/db"
	emailverifystore "bygg-tools-backend/lib/email-verify/store"
	"bygg-tools-backend/lib/smtp"
	usersstore "bygg-tools-backend/lib/users/store"
	dbmodels "bygg-tools-backend/models/db"
)

const daysToExpires = 14
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

type Provider interface {
	SendVerifyCode(email string) error
	VerifyCode(code string) error
	SetPasswordByCode(code, passwordHash string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		verifyStore: emailverifystore.NewInstance(db.DB),
	}
}

type impl struct {
	verifyStore emailverifystore.Provider
}

func (i impl) SendVerifyCode(email string) error {
	exist, err := i.verifyStore.Exist(email)
	if err != nil {
		return err
	}
	if exist {
		return errors.New("a verification code has already been sent to this email")
	}
	verifyData := dbmodels.EmailVerify{
		Email:     email,
		Code:      i.generateCode(),
		ExpiresAt: time.Now().Add(time.Hour * 24 * daysToExpires),
	}
	err = i.verifyStore.Create(verifyData)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Bekreft e-postadressen din: %s/api/v1/auth/verify-email?code=%s", config.Conf.Smtp.DomainForVerifyLink, verifyData.Code)
	return smtp.Instance.SendEMail(email, "Bekreft e-post", message)
}

func (i impl) VerifyCode(code string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		verifyStore := emailverifystore.NewInstance(tx)
		userStore := usersstore.NewInstance(tx)

		email, err := applyCode(code, verifyStore)
		if err != nil {
			return err
		}
		return markUserVerified(email, userStore)
	})
}

// SetPasswordByCode redeems a verification code and stores the new password
// hash. Redeeming the code also confirms the email address.
func (i impl) SetPasswordByCode(code, passwordHash string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		verifyStore := emailverifystore.NewInstance(tx)
		userStore := usersstore.NewInstance(tx)

		email, err := applyCode(code, verifyStore)
		if err != nil {
			return err
		}
		return applyPassword(email, passwordHash, userStore)
	})
}

func applyCode(code string, verifyStore emailverifystore.Provider) (email string, err error) {
	verifyData, err := verifyStore.GetByCode(code)
	if err != nil {
		return "", err
	}
	if verifyData == nil {
		return "", errors.New("verification code not found")
	}
	if verifyData.UsedAt != nil {
		return "", errors.New("verification code already used")
	}
	if verifyData.ExpiresAt.Before(time.Now()) {
		return "", errors.New("verification code expired")
	}
	updMap := map[string]interface{}{
		"used_at": time.Now(),
	}
	err = verifyStore.UpdateByCode(code, updMap)
	if err != nil {
		log.WithField("email", verifyData.Email).WithError(err).Error("failed to mark verification code as used")
		return "", errors.New("failed to apply verification code")
	}
	return verifyData.Email, nil
}

func markUserVerified(email string, userStore usersstore.Provider) error {
	logger := log.WithField("email", email)
	user, err := userStore.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("email not verified, failed to load user")
		return errors.New("failed to load user")
	}
	if user == nil {
		logger.Error("email not verified, user not found")
		return errors.New("user not found")
	}
	updMap := map[string]interface{}{
		"is_email_verified": true,
	}
	err = userStore.Update(user.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("failed to update user email verification flag")
		return err
	}
	return nil
}

func applyPassword(email, passwordHash string, userStore usersstore.Provider) error {
	logger := log.WithField("email", email)
	user, err := userStore.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("password not set, failed to load user")
		return errors.New("failed to load user")
	}
	if user == nil {
		logger.Error("password not set, user not found")
		return errors.New("user not found")
	}
	updMap := map[string]interface{}{
		"password":          passwordHash,
		"is_email_verified": true,
	}
	err = userStore.Update(user.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("failed to store new password")
		return err
	}
	return nil
}

func (i impl) generateCode() string {
	sb := strings.Builder{}
	sb.Grow(24)
	for i := 0; i < 24; i++ {
		idx := rand.Int63() % int64(len(letterBytes))
		sb.WriteByte(letterBytes[idx])
	}
	return sb.String()
}
