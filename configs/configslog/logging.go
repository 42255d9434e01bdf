package configslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger, SLog the sugared variant of the same core.
// InitLogger must run before either is used; main calls it first thing.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger configures zap according to the application environment.
// "production" gets JSON output at Info, anything else gets the
// development console encoder at Debug.
func InitLogger(appEnv string) {
	var cfg zap.Config
	if appEnv == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("failed to initialize zap logger: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// Sync flushes buffered log entries. Deferred from main.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
