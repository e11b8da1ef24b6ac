package notificationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "bygg-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) error
	List(userID string) ([]dbmodels.Notification, error)
	Delete(ids []string) error
	DeleteForUser(userID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) error {
	return i.db.Save(&rec).Error
}

func (i impl) List(userID string) ([]dbmodels.Notification, error) {
	list := []dbmodels.Notification{}
	err := i.db.
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteForUser(userID, id string) error {
	return i.db.
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Delete(&dbmodels.Notification{}).
		Error
}

func (i impl) Delete(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return i.db.
		Where("id in (?)", ids).
		Delete(&dbmodels.Notification{}).
		Error
}
