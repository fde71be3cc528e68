package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/adityahq/exammaster-lambda/internal/config"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStore struct {
	db *gorm.DB
}

// NewStore returns a Store backed by a Postgres JSONB table. The documents
// table is migrated on construction.
func NewStore(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, fmt.Errorf("migrate documents table: %w", err)
	}
	return &gormStore{db: db}, nil
}

func (s *gormStore) Create(ctx context.Context, path, id string, data map[string]any) bool {
	log := config.WithContext(ctx)

	body, err := json.Marshal(data)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("failed to encode document")
		return false
	}

	doc := Document{Path: path, DocID: id, Data: body}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&doc).Error; err != nil {
		log.WithError(err).WithField("path", path).Error("failed to create document")
		return false
	}
	return true
}

func (s *gormStore) Read(ctx context.Context, path, id string) (map[string]any, bool) {
	log := config.WithContext(ctx)

	var doc Document
	err := s.db.WithContext(ctx).
		First(&doc, "path = ? AND doc_id = ?", path, id).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithError(err).WithField("path", path).Error("failed to read document")
		}
		return nil, false
	}

	var data map[string]any
	if err := json.Unmarshal(doc.Data, &data); err != nil {
		log.WithError(err).WithField("path", path).Error("failed to decode document")
		return nil, false
	}
	return data, true
}

func (s *gormStore) Update(ctx context.Context, path, id string, data map[string]any) bool {
	log := config.WithContext(ctx)

	body, err := json.Marshal(data)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("failed to encode document")
		return false
	}

	result := s.db.WithContext(ctx).
		Model(&Document{}).
		Where("path = ? AND doc_id = ?", path, id).
		Update("data", body)
	if result.Error != nil {
		log.WithError(result.Error).WithField("path", path).Error("failed to update document")
		return false
	}
	return result.RowsAffected > 0
}

func (s *gormStore) Delete(ctx context.Context, path, id string) bool {
	log := config.WithContext(ctx)

	if err := s.db.WithContext(ctx).
		Delete(&Document{}, "path = ? AND doc_id = ?", path, id).Error; err != nil {
		log.WithError(err).WithField("path", path).Error("failed to delete document")
		return false
	}
	return true
}

func (s *gormStore) Query(ctx context.Context, path, field, operator string, value any) []map[string]any {
	log := config.WithContext(ctx)

	tx := s.db.WithContext(ctx).Model(&Document{}).Where("path = ?", path)

	switch operator {
	case "==":
		tx = tx.Where("data ->> ? = ?", field, fmt.Sprint(value))
	case ">", "<", ">=", "<=":
		tx = tx.Where(fmt.Sprintf("(data ->> ?)::numeric %s ?", operator), field, value)
	case "array_contains":
		member, err := json.Marshal(value)
		if err != nil {
			log.WithError(err).Error("failed to encode query value")
			return nil
		}
		tx = tx.Where("data -> ? @> ?", field, string(member))
	default:
		log.WithField("operator", operator).Warn("unsupported query operator")
		return nil
	}

	var docs []Document
	if err := tx.Order("created_at ASC").Find(&docs).Error; err != nil {
		log.WithError(err).WithField("path", path).Error("failed to query collection")
		return nil
	}
	return decodeAll(ctx, docs)
}

func (s *gormStore) List(ctx context.Context, path string) []map[string]any {
	log := config.WithContext(ctx)

	var docs []Document
	if err := s.db.WithContext(ctx).
		Where("path = ?", path).
		Order("created_at ASC").
		Find(&docs).Error; err != nil {
		log.WithError(err).WithField("path", path).Error("failed to list collection")
		return nil
	}
	return decodeAll(ctx, docs)
}

func decodeAll(ctx context.Context, docs []Document) []map[string]any {
	log := config.WithContext(ctx)

	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		var data map[string]any
		if err := json.Unmarshal(doc.Data, &data); err != nil {
			log.WithError(err).WithField("doc_id", doc.DocID).Warn("skipping undecodable document")
			continue
		}
		out = append(out, data)
	}
	return out
}
