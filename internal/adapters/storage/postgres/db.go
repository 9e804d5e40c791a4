// Package postgres implements the repository ports on PostgreSQL via GORM.
package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/qnaboard/qna-service/internal/platform/config"
)

// DB wraps the GORM handle shared by the repositories.
// Each repository method scopes its session to the caller's context;
// the underlying pool acquires and releases connections per operation.
type DB struct {
	gorm *gorm.DB
}

// Open connects to PostgreSQL and configures the connection pool.
// With cfg.AutoMigrate set it also creates/upgrades the schema, including
// the answers-to-questions foreign key with ON DELETE CASCADE.
func Open(cfg *config.DatabaseConfig) (*DB, error) {
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN,
		PreferSimpleProtocol: cfg.PreferSimpleProtocol,
	}), &gorm.Config{
		// Map driver constraint errors onto gorm.Err* sentinels so the
		// repositories can translate them to domain errors.
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrapping sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db := &DB{gorm: gormDB}

	if cfg.AutoMigrate {
		if err := db.Migrate(); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or upgrades the schema.
func (d *DB) Migrate() error {
	if err := d.gorm.AutoMigrate(&questionRow{}, &answerRow{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	return nil
}

// Close releases the underlying connection pool.
func (d *DB) Close() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Name implements ports.HealthChecker.
func (d *DB) Name() string {
	return "postgres"
}

// Check implements ports.HealthChecker by pinging the database.
func (d *DB) Check(ctx context.Context) error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}
