package adapters

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLoggerAdapter implements LoggerAdapter on top of go.uber.org/zap
// for callers who want structured, leveled output instead of the
// default print logger.
type ZapLoggerAdapter struct {
	sugar *zap.SugaredLogger
}

var _ LoggerAdapter = (*ZapLoggerAdapter)(nil)

// NewZapLoggerAdapter wraps an existing zap logger.
func NewZapLoggerAdapter(logger *zap.Logger) *ZapLoggerAdapter {
	return &ZapLoggerAdapter{sugar: logger.Sugar()}
}

// NewZapLoggerAdapterForEnv builds a zap logger for the given environment
// ("production" uses the JSON production config, anything else the
// colored development config) and wraps it.
func NewZapLoggerAdapterForEnv(environment string) (*ZapLoggerAdapter, error) {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return NewZapLoggerAdapter(logger), nil
}

func (z *ZapLoggerAdapter) Debug(message string, args ...interface{}) {
	z.sugar.Debugf(message, args...)
}

func (z *ZapLoggerAdapter) Info(message string, args ...interface{}) {
	z.sugar.Infof(message, args...)
}

func (z *ZapLoggerAdapter) Warn(message string, args ...interface{}) {
	z.sugar.Warnf(message, args...)
}

func (z *ZapLoggerAdapter) Error(message string, args ...interface{}) {
	z.sugar.Errorf(message, args...)
}
