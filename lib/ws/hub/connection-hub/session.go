package connectionhub

import (
	"context"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type clientSession struct {
	conn *websocket.Conn

	// Outbound messages, buffered.
	sendCh chan any
	stop   func()
}

func newSession(conn *websocket.Conn) clientSession {
	ctx, cancel := context.WithCancel(context.Background())
	sess := clientSession{
		conn:   conn,
		sendCh: make(chan any, 16),
		stop:   cancel,
	}
	go sess.writeLoop(ctx)
	return sess
}

func (s clientSession) writeLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-s.sendCh:
			if !ok {
				return
			}
			s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := s.conn.WriteJSON(msg); err != nil {
				log.WithError(err).Warn("websocket write failed")
				return
			}
		}
	}
}
