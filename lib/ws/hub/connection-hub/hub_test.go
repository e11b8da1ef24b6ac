package connectionhub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	dbmodels "bygg-tools-backend/models/db"
	wsmodels "bygg-tools-backend/models/ws"
)

type fakeNotificationStore struct {
	list        []dbmodels.Notification
	deleteCalls int
}

func (s *fakeNotificationStore) Create(rec dbmodels.Notification) error {
	s.list = append(s.list, rec)
	return nil
}

func (s *fakeNotificationStore) List(userID string) ([]dbmodels.Notification, error) {
	return s.list, nil
}

func (s *fakeNotificationStore) Delete(ids []string) error {
	s.deleteCalls++
	return nil
}

func (s *fakeNotificationStore) DeleteForUser(userID, id string) error {
	s.deleteCalls++
	return nil
}

func TestReplayPending(t *testing.T) {
	pending := []dbmodels.Notification{
		{BaseModel: dbmodels.BaseModel{ID: "n-1", CreatedAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}, UserID: "u-1", Message: "Nytt avviksskjema: Rekkverk", Url: "/skjemaboard"},
		{BaseModel: dbmodels.BaseModel{ID: "n-2", CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}, UserID: "u-1", Message: "Nytt sikker jobb-analyse: Varmt arbeid", Url: "/skjemaboard"},
	}

	t.Run("replay keeps notifications in the store", func(t *testing.T) {
		store := &fakeNotificationStore{list: pending}
		sent := []wsmodels.ServerMessage{}

		replayPending("u-1", store,
			func(string) bool { return true },
			func(msg wsmodels.ServerMessage) { sent = append(sent, msg) })

		require.Len(t, sent, 2)
		require.Equal(t, "Nytt avviksskjema: Rekkverk", sent[0].Msg)
		require.Equal(t, "/skjemaboard", sent[0].Url)
		require.Zero(t, store.deleteCalls)
		require.Len(t, store.list, 2)
	})

	t.Run("replay stops when the user disconnects", func(t *testing.T) {
		store := &fakeNotificationStore{list: pending}
		sent := 0

		replayPending("u-1", store,
			func(string) bool { return sent == 0 },
			func(msg wsmodels.ServerMessage) { sent++ })

		require.Equal(t, 1, sent)
		require.Zero(t, store.deleteCalls)
	})
}

func TestSendMessage(t *testing.T) {
	newHub := func(userID string, buffer int) (*impl, clientSession) {
		sess := clientSession{
			sendCh: make(chan any, buffer),
			stop:   func() {},
		}
		hub := &impl{clients: map[string]clientSession{userID: sess}}
		return hub, sess
	}

	t.Run("full buffer drops instead of blocking", func(t *testing.T) {
		hub, sess := newHub("u-1", 1)

		hub.SendMessage(wsmodels.ServerMessage{ToUserID: "u-1", Msg: "first"})
		done := make(chan struct{})
		go func() {
			hub.SendMessage(wsmodels.ServerMessage{ToUserID: "u-1", Msg: "second"})
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("send blocked on a full buffer")
		}
		require.Len(t, sess.sendCh, 1)
	})

	t.Run("send after disconnect is a no-op", func(t *testing.T) {
		hub, _ := newHub("u-1", 1)

		hub.DeleteClient("u-1")
		require.NotPanics(t, func() {
			hub.SendMessage(wsmodels.ServerMessage{ToUserID: "u-1", Msg: "late"})
		})
	})

	t.Run("unknown user is a no-op", func(t *testing.T) {
		hub, _ := newHub("u-1", 1)
		require.NotPanics(t, func() {
			hub.SendMessage(wsmodels.ServerMessage{ToUserID: "u-2", Msg: "nobody"})
		})
	})
}
