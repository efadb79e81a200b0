package config

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotels-api/models"
)

// ConnectDatabase opens the MySQL connection and migrates the schema in
// parent-to-child order.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	dsn, err := cfg.MySQLDSN()
	if err != nil {
		return nil, err
	}

	level := logger.Warn
	if !cfg.IsProduction() {
		level = logger.Info
	}
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      level,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Hotel{},
		&models.Room{},
		&models.Reservation{},
		&models.Guest{},
		&models.EmergencyContact{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
