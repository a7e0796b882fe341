// Package logger builds the service-wide zap logger.
package logger

import "go.uber.org/zap"

// NewNamed creates a logger configured for the given environment and tagged
// with the service name. Development gets a human-readable console encoder,
// everything else structured JSON at info level.
func NewNamed(env, service string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Named(service), nil
}
