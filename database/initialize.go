package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ledkino.pl/configs/configslog"
	"ledkino.pl/database/migrations"
	"ledkino.pl/database/seeders"
)

// Initialize uruchamia migracje i seedery w jednej transakcji.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Brak flag migrate/seed, nic do zrobienia.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Nie udało się rozpocząć transakcji", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Inicjalizacja bazy przerwana (panic)", zap.Any("panic_info", r))
		}
	}()

	configslog.SLog.Info("Start inicjalizacji bazy danych...")

	if migrate {
		configslog.SLog.Info("Uruchamiam migracje...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migracje nie powiodły się", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Migracje zakończone.")
	}

	if seed {
		configslog.SLog.Info("Uruchamiam seedery...")
		if err := RunSeeders(tx); err != nil {
			configslog.Log.Error("Seedowanie nie powiodło się", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Seedery zakończone.")
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit nie powiódł się", zap.Error(err))
		return
	}
	configslog.SLog.Info("Inicjalizacja bazy danych zakończona pomyślnie")
}

// RunMigrationsInOrder wykonuje migracje w ustalonej kolejności.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info(" -> users...")
	if err := migrations.MigrateUsersTable(db); err != nil {
		return err
	}
	configslog.SLog.Info(" -> settings...")
	if err := migrations.MigrateSettingsTable(db); err != nil {
		return err
	}
	configslog.SLog.Info(" -> content_sections...")
	if err := migrations.MigrateContentSectionsTable(db); err != nil {
		return err
	}
	configslog.SLog.Info(" -> media_assets...")
	if err := migrations.MigrateMediaAssetsTable(db); err != nil {
		return err
	}
	configslog.SLog.Info(" -> submissions + submission_replies...")
	if err := migrations.MigrateSubmissionsTables(db); err != nil {
		return err
	}
	return nil
}

// RunSeeders uzupełnia dane startowe (konto administratora, domyślne
// sekcje i ustawienia). Wszystkie seedery są idempotentne.
func RunSeeders(db *gorm.DB) error {
	if err := seeders.SeedAdminUser(db); err != nil {
		return err
	}
	if err := seeders.SeedContentSections(db); err != nil {
		return err
	}
	return seeders.SeedSettings(db)
}
