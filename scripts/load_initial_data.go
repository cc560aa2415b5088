package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"leave-tracker-backend/internal/calendar"
	"leave-tracker-backend/internal/config"
	"leave-tracker-backend/internal/database"
	"leave-tracker-backend/internal/database/models"
	"leave-tracker-backend/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const seedActor = "seed"

// HolidayData is one company holiday entry in a seed file
type HolidayData struct {
	Date string `yaml:"date"`
	Name string `yaml:"name,omitempty"`
}

// HolidaysFile is the layout of scripts/data/*holidays*.yaml
type HolidaysFile struct {
	Holidays []HolidayData `yaml:"holidays"`
}

func main() {
	log.Println("🚀 Loading company holidays from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	created, err := loadHolidaysFromYAMLFiles(context.Background(), db, "scripts/data")
	if err != nil {
		log.Fatalf("Failed to load company holidays: %v", err)
	}

	log.Printf("✅ Company holidays loaded (%d dates processed)", created)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadHolidaysFromYAMLFiles inserts every holiday found under dataDir,
// leaving dates that already exist untouched.
func loadHolidaysFromYAMLFiles(ctx context.Context, db *gorm.DB, dataDir string) (int, error) {
	entries, err := readHolidays(dataDir)
	if err != nil {
		return 0, err
	}

	holidays, err := toHolidays(entries)
	if err != nil {
		return 0, err
	}
	if len(holidays) == 0 {
		log.Println("No company holidays found")
		return 0, nil
	}

	repo := repository.NewCompanyHolidayRepository(db)
	if err := repo.CreateMany(ctx, holidays); err != nil {
		return 0, err
	}
	return len(holidays), nil
}

func readHolidays(dataDir string) ([]HolidayData, error) {
	var all []HolidayData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), "holidays") {
			var file HolidaysFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, file.Holidays...)
		}
		return nil
	})

	return all, err
}

// toHolidays validates the seed entries, keeping the first entry per day
func toHolidays(entries []HolidayData) ([]models.CompanyHoliday, error) {
	seen := make(map[string]bool, len(entries))
	holidays := make([]models.CompanyHoliday, 0, len(entries))

	for _, entry := range entries {
		day, err := calendar.ParseDay(entry.Date)
		if err != nil {
			return nil, fmt.Errorf("holiday %q: %w", entry.Name, err)
		}
		key := calendar.Key(day)
		if seen[key] {
			continue
		}
		seen[key] = true

		holiday := models.CompanyHoliday{Date: day}
		if name := strings.TrimSpace(entry.Name); name != "" {
			holiday.Name = &name
		}
		holiday.CreatedBy = seedActor
		holiday.UpdatedBy = seedActor
		holidays = append(holidays, holiday)
	}
	return holidays, nil
}
