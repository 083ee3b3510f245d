// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"context"
	"fmt"

	"github.com/logicbyfred/gallery-store/internal/domain/catalog"
	"github.com/logicbyfred/gallery-store/internal/domain/contact"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, logger *logrus.Logger) *Migration {
	return &Migration{
		db:     db,
		logger: logger,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	m.logger.Info("Running database auto-migrations")

	models := []interface{}{
		&catalog.Product{},
		&contact.Message{},
	}

	for _, model := range models {
		m.logger.Debugf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	m.logger.Info("Database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_sort_order ON products(sort_order, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_products_artist ON products(artist)",
		"CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_contact_messages_unnotified ON contact_messages(id) WHERE notified_at IS NULL",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			m.logger.WithError(err).Warn("Failed to create index")
			failCount++
		} else {
			successCount++
		}
	}

	m.logger.WithFields(logrus.Fields{
		"created": successCount,
		"failed":  failCount,
	}).Info("Database indexes ensured")
	return nil
}

// SeedCatalog inserts the launch collection into a catalog that has never
// held products. Soft-deleted rows count, so retired products stay retired.
func (m *Migration) SeedCatalog(ctx context.Context) error {
	repo := catalog.NewRepository(m.db)

	count, err := repo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		m.logger.WithField("products", count).Debug("Catalog already seeded")
		return nil
	}

	products := catalog.DefaultProducts()
	for i := range products {
		if err := repo.UpsertProduct(ctx, &products[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].ID, err)
		}
	}

	m.logger.WithField("products", len(products)).Info("Catalog seeded")
	return nil
}

// GetTableInfo logs row counts for every public table
func (m *Migration) GetTableInfo() error {
	var tables []string

	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		totalRecords += count

		m.logger.WithFields(logrus.Fields{
			"table":   table,
			"records": count,
		}).Info("Table info")
	}

	m.logger.WithFields(logrus.Fields{
		"tables":  len(tables),
		"records": totalRecords,
	}).Info("Database summary")

	return nil
}
