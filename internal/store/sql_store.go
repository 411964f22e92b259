// Package store implements the append-only document store that receives
// model submissions.
package store

import (
	"context"
	"fmt"
	"time"

	"cropai-modelhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SQLStore keeps documents in a single gorm-managed table.
type SQLStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db, now: time.Now}
}

// Append inserts one document and stamps it with the server time.
func (s *SQLStore) Append(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	doc := models.Document{
		ID:          uuid.New().String(),
		Collection:  collection,
		Fields:      datatypes.JSONMap(fields),
		SubmittedAt: s.now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return "", fmt.Errorf("failed to append to %s: %w", collection, err)
	}
	return doc.ID, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLStore) Close(_ context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
