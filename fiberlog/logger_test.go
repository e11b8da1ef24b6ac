package fiberlog

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestRequestLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	app := fiber.New()
	app.Use(New(Config{Logger: logger, Tags: []string{TagMethod, TagPath, TagStatus, TagLatency}}))
	release := make(chan struct{})
	app.Get("/blocked", func(c *fiber.Ctx) error {
		<-release
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/quick", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// a long request overlapped by a short one must keep its own timing
	done := make(chan error, 1)
	go func() {
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/blocked", nil), -1)
		done <- err
	}()
	time.Sleep(50 * time.Millisecond)
	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/quick", nil), -1)
	require.NoError(t, err)
	close(release)
	require.NoError(t, <-done)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	var blockedLatency time.Duration
	for _, entry := range entries {
		require.Equal(t, "api request", entry.Message)
		require.Equal(t, fiber.MethodGet, entry.Data[TagMethod])
		require.Equal(t, fiber.StatusOK, entry.Data[TagStatus])
		latency, err := time.ParseDuration(entry.Data[TagLatency].(string))
		require.NoError(t, err)
		if entry.Data[TagPath] == "/blocked" {
			blockedLatency = latency
		}
	}
	require.GreaterOrEqual(t, blockedLatency, 50*time.Millisecond)
}
