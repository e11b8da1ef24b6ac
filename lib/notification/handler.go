package notification

import (
	"time"

	log "github.com/sirupsen/logrus"

	"bygg-tools-backend/db"
	notificationstore "bygg-tools-backend/lib/notification/store"
	usersstore "bygg-tools-backend/lib/users/store"
	connectionhub "bygg-tools-backend/lib/ws/hub/connection-hub"
	dbmodels "bygg-tools-backend/models/db"
	wsmodels "bygg-tools-backend/models/ws"
)

// Provider is the notification sink. Delivery is fire-and-forget: a failed
// notification is logged and never propagated to the operation that
// triggered it.
type Provider interface {
	NotifyUser(userID, message, url string)
	NotifyCompanyManagers(companyID, message, url string)
	ListForUser(userID string) ([]dbmodels.Notification, error)
	MarkRead(userID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      notificationstore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store      notificationstore.Provider
	usersStore usersstore.Provider
}

func (i impl) NotifyUser(userID, message, url string) {
	rec := dbmodels.Notification{
		UserID:  userID,
		Message: message,
		Url:     url,
	}
	if err := i.store.Create(rec); err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("failed to store notification")
		return
	}
	if connectionhub.Instance != nil && connectionhub.Instance.IsConnected(userID) {
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     time.Now().Format("02.01.2006 15:04:05"),
			Msg:      message,
			Url:      url,
		})
	}
}

func (i impl) ListForUser(userID string) ([]dbmodels.Notification, error) {
	return i.store.List(userID)
}

// MarkRead drops the notification once the user has seen it.
func (i impl) MarkRead(userID, id string) error {
	return i.store.DeleteForUser(userID, id)
}

// NotifyCompanyManagers fans the event out to every admin and manager of the
// tenant.
func (i impl) NotifyCompanyManagers(companyID, message, url string) {
	list, err := i.usersStore.ListManagers(companyID)
	if err != nil {
		log.
			WithField("company_id", companyID).
			WithError(err).
			Error("failed to list company managers for notification")
		return
	}
	for _, user := range list {
		i.NotifyUser(user.ID, message, url)
	}
}
