package database

import (
	"fmt"
	"time"

	"anaesthesia-staffing-service/internal/config"
	"anaesthesia-staffing-service/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds the MySQL data source name. clientFoundRows makes an update that
// leaves every value unchanged still report the matched row.
func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
	)
}

// Connect opens the GORM connection and checks it with a ping
func Connect(cfg *config.Config, log logrus.FieldLogger) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.GinMode == "release" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(mysql.Open(DSN(cfg.Database)), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.WithFields(logrus.Fields{"host": cfg.Database.Host, "database": cfg.Database.Database}).
		Info("Successfully connected to database")
	return db, nil
}

// Migrate creates or updates the staffing tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Hospital{}, &models.Person{}, &models.AuditLog{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
