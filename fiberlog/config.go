package fiberlog

import "github.com/sirupsen/logrus"

// Config controls which request attributes the middleware logs and where.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault logs to the standard logger with a minimal tag set.
var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
