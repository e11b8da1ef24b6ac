package emailverify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	dbmodels "bygg-tools-backend/models/db"
)

type fakeVerifyStore struct {
	rec     *dbmodels.EmailVerify
	updates map[string]interface{}
}

func (s *fakeVerifyStore) Create(verifyData dbmodels.EmailVerify) error {
	s.rec = &verifyData
	return nil
}

func (s *fakeVerifyStore) GetByCode(code string) (*dbmodels.EmailVerify, error) {
	if s.rec == nil || s.rec.Code != code {
		return nil, nil
	}
	return s.rec, nil
}

func (s *fakeVerifyStore) Exist(email string) (bool, error) {
	return s.rec != nil && s.rec.Email == email && s.rec.UsedAt == nil, nil
}

func (s *fakeVerifyStore) UpdateByCode(code string, updMap map[string]interface{}) error {
	s.updates = updMap
	if usedAt, ok := updMap["used_at"].(time.Time); ok {
		s.rec.UsedAt = &usedAt
	}
	return nil
}

type fakeUserStore struct {
	user    *dbmodels.CompanyUser
	updates map[string]interface{}
}

func (s *fakeUserStore) Create(rec dbmodels.CompanyUser) (string, error) { return rec.ID, nil }

func (s *fakeUserStore) Update(userID string, updMap map[string]interface{}) error {
	s.updates = updMap
	return nil
}

func (s *fakeUserStore) Delete(userID string) error { return nil }

func (s *fakeUserStore) GetList(companyID string, page, limit int) ([]dbmodels.CompanyUser, error) {
	return nil, nil
}

func (s *fakeUserStore) ExistByEmail(email string) (bool, error) { return false, nil }

func (s *fakeUserStore) FindByEmail(email string) (*dbmodels.CompanyUser, error) {
	if s.user == nil || s.user.Email != email {
		return nil, nil
	}
	return s.user, nil
}

func (s *fakeUserStore) GetByID(userID string) (*dbmodels.CompanyUser, error) { return s.user, nil }

func (s *fakeUserStore) ListManagers(companyID string) ([]dbmodels.CompanyUser, error) {
	return nil, nil
}

func (s *fakeUserStore) ListProjectMembers(companyID, projectID string) ([]dbmodels.CompanyUser, error) {
	return nil, nil
}

func validCode() *dbmodels.EmailVerify {
	return &dbmodels.EmailVerify{
		Email:     "kari@example.no",
		Code:      "ABC123",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func TestApplyCode(t *testing.T) {
	t.Run("valid code is marked used", func(t *testing.T) {
		store := &fakeVerifyStore{rec: validCode()}

		email, err := applyCode("ABC123", store)
		require.NoError(t, err)
		require.Equal(t, "kari@example.no", email)
		require.NotNil(t, store.rec.UsedAt)
	})

	t.Run("unknown code", func(t *testing.T) {
		store := &fakeVerifyStore{}

		_, err := applyCode("NOPE", store)
		require.EqualError(t, err, "verification code not found")
	})

	t.Run("code cannot be redeemed twice", func(t *testing.T) {
		store := &fakeVerifyStore{rec: validCode()}

		_, err := applyCode("ABC123", store)
		require.NoError(t, err)
		_, err = applyCode("ABC123", store)
		require.EqualError(t, err, "verification code already used")
	})

	t.Run("expired code", func(t *testing.T) {
		rec := validCode()
		rec.ExpiresAt = time.Now().Add(-time.Hour)
		store := &fakeVerifyStore{rec: rec}

		_, err := applyCode("ABC123", store)
		require.EqualError(t, err, "verification code expired")
	})
}

func TestApplyPassword(t *testing.T) {
	t.Run("stores the hash and confirms the email", func(t *testing.T) {
		store := &fakeUserStore{user: &dbmodels.CompanyUser{
			BaseModel: dbmodels.BaseModel{ID: "u-1"},
			Email:     "kari@example.no",
		}}

		err := applyPassword("kari@example.no", "$2a$10$hash", store)
		require.NoError(t, err)
		require.Equal(t, "$2a$10$hash", store.updates["password"])
		require.Equal(t, true, store.updates["is_email_verified"])
	})

	t.Run("unknown user", func(t *testing.T) {
		store := &fakeUserStore{}

		err := applyPassword("ukjent@example.no", "$2a$10$hash", store)
		require.EqualError(t, err, "user not found")
	})
}
