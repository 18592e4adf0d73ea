// Narzędzie migracji: go run ./database/cmd -migrate -seed
package main

import (
	"flag"

	"ledkino.pl/configs"
	"ledkino.pl/configs/configslog"
	"ledkino.pl/database"
)

func main() {
	migrate := flag.Bool("migrate", false, "uruchom migracje schematu")
	seed := flag.Bool("seed", false, "uruchom seedery danych startowych")
	flag.Parse()

	configslog.InitLogger()
	defer configslog.SyncLogger()
	configs.LoadEnv()

	if err := configs.ConnectDB(); err != nil {
		configslog.SLog.Fatalf("Błąd połączenia z bazą: %v", err)
	}
	defer configs.CloseDB()

	database.Initialize(configs.GetDB(), *migrate, *seed)
}
