package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log globalny strukturalny logger (zap).
// SLog to jego wersja sugared do prostych komunikatów.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger konfiguruje globalne loggery zależnie od APP_ENV.
// W trybie production logujemy JSON-em, w development czytelną konsolą.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Bez loggera nie ma sensu startować.
		panic("nie można zainicjalizować loggera: " + err.Error())
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger opróżnia bufory loggera (wywoływane przy zamykaniu aplikacji).
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}

func init() {
	// Domyślny logger, zanim main zdąży wywołać InitLogger (np. w testach).
	if Log == nil {
		Log = zap.NewNop()
		SLog = Log.Sugar()
	}
}
