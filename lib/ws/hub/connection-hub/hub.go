package connectionhub

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"

	"bygg-tools-backend/db"
	notificationstore "bygg-tools-backend/lib/notification/store"
	wsmodels "bygg-tools-backend/models/ws"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
		store:   notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	mu      sync.Mutex
	clients map[string]clientSession //map[userID]
	store   notificationstore.Provider
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	delete(i.clients, userID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
	i.mu.Unlock()
	go i.sendDelayedMessages(userID)
}

// SendMessage hands the message to the user's writer. The send stays under
// the lock so DeleteClient cannot close the channel mid-send, and it never
// blocks: a stalled writer drops the message instead of backing up callers.
func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[msg.ToUserID]
	if !ok {
		return
	}
	select {
	case sess.sendCh <- msg:
	default:
		log.WithField("user_id", msg.ToUserID).Warn("websocket send buffer full, message dropped")
	}
}

func (i *impl) SendClose(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

func (i *impl) sendDelayedMessages(userID string) {
	replayPending(userID, i.store, i.IsConnected, i.SendMessage)
}

// replayPending pushes notifications stored while the user was offline. The
// rows stay in the store: the profile feed lists them until the user marks
// them read, no matter how often they were pushed over the socket.
func replayPending(userID string, store notificationstore.Provider, connected func(string) bool, send func(wsmodels.ServerMessage)) {
	list, err := store.List(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to load pending notifications")
		return
	}
	for _, item := range list {
		if !connected(userID) {
			return
		}
		send(wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     item.CreatedAt.Format("02.01.2006 15:04:05"),
			Msg:      item.Message,
			Url:      item.Url,
		})
	}
}
