package services

import (
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hxuan190/split-engine/internal/splitter"
)

type ServiceIdentifier interface {
	ID() string
}

type ServiceLogger struct {
	logger zerolog.Logger
}

func NewServiceLogger(svc ServiceIdentifier) *ServiceLogger {
	return &ServiceLogger{
		logger: log.With().Str("service", svc.ID()).Logger(),
	}
}

// Method returns a child logger tagged with the calling method.
func (l *ServiceLogger) Method(method string) *ServiceLogger {
	return &ServiceLogger{
		logger: l.logger.With().Str("method", method).Logger(),
	}
}

// Split returns a child logger tagged with the operation and the decimal
// amount being split.
func (l *ServiceLogger) Split(op string, amount *uint256.Int) *ServiceLogger {
	return &ServiceLogger{
		logger: l.logger.With().
			Str("operation", op).
			Str("amount", splitter.FormatAmount(amount)).
			Logger(),
	}
}

func (l *ServiceLogger) Info() *zerolog.Event {
	return l.logger.Info()
}

func (l *ServiceLogger) Error() *zerolog.Event {
	return l.logger.Error()
}

func (l *ServiceLogger) Warn() *zerolog.Event {
	return l.logger.Warn()
}

func (l *ServiceLogger) Debug() *zerolog.Event {
	return l.logger.Debug()
}
