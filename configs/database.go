package configs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ledkino.pl/configs/configslog"
)

var db *gorm.DB

// ConnectDB otwiera połączenie z bazą Postgres na podstawie zmiennych
// środowiskowych i konfiguruje pulę połączeń.
func ConnectDB() error {
	dsn := GetEnv("DATABASE_URL", "")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
			GetEnv("DB_HOST", "localhost"),
			GetEnv("DB_PORT", "5432"),
			GetEnv("DB_USER", "ledkino"),
			GetEnv("DB_PASSWORD", ""),
			GetEnv("DB_NAME", "ledkino"),
			GetEnv("DB_SSLMODE", "disable"),
			GetEnv("DB_TIMEZONE", "Europe/Warsaw"),
		)
	}

	logLevel := gormlogger.Warn
	if GetEnv("APP_ENV", "development") != "production" {
		logLevel = gormlogger.Info
	}

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		configslog.Log.Error("Połączenie z bazą danych nie powiodło się", zap.Error(err))
		return err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(GetEnvInt("DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetMaxIdleConns(GetEnvInt("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(time.Duration(GetEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30)) * time.Minute)

	db = database
	configslog.SLog.Info("Połączono z bazą danych")
	return nil
}

// GetDB zwraca aktywne połączenie GORM.
// ConnectDB musi zostać wywołane wcześniej (w main lub w database/cmd).
func GetDB() *gorm.DB {
	if db == nil {
		configslog.SLog.Fatal("GetDB wywołane przed ConnectDB")
	}
	return db
}

// CloseDB zamyka pulę połączeń.
func CloseDB() {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
