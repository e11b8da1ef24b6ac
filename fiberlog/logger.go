package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	fields := make(log.Fields)
	for tag, ft := range ftm {
		value := ft(c, d)
		if strValue, ok := value.(string); ok {
			if strValue != "" {
				fields[tag] = strValue
			}
			continue
		}
		fields[tag] = value
	}
	return fields
}

// New returns a request logging middleware. Responses with status >= 300 are
// logged at warn level; CORS preflight requests are skipped.
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) != 0 {
		cfg = config[0]
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		// per-request state: the handler runs concurrently
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		if cfg.Logger == nil {
			log.WithFields(getLogrusFields(ftm, c, d)).Info("api request")
			return err
		}
		entry := cfg.Logger.WithFields(getLogrusFields(ftm, c, d))
		if c.Response() != nil && c.Response().StatusCode() >= 300 {
			entry.Warn("api request")
		} else {
			entry.Info("api request")
		}
		return err
	}
}
