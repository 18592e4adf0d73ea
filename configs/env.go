package configs

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"ledkino.pl/configs/configslog"
)

// LoadEnv wczytuje plik .env (jeśli istnieje). Brak pliku nie jest błędem,
// na produkcji zmienne przychodzą ze środowiska.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info("Plik .env nie został wczytany, używam zmiennych środowiskowych")
	}
}

// GetEnv zwraca zmienną środowiskową lub wartość domyślną.
func GetEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt zwraca zmienną środowiskową jako int lub wartość domyślną.
func GetEnvInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// GetEnvBool zwraca zmienną środowiskową jako bool ("true"/"1"/"on").
func GetEnvBool(key string, fallback bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return fallback
	}
	return v == "true" || v == "1" || v == "on"
}
