package kv

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kidsplatform/internal/domain"
)

// Document is one stored key-value row.
type Document struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

// Postgres keeps documents in a single table via gorm.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

// Migrate creates the documents table.
func (p *Postgres) Migrate() error {
	return p.db.AutoMigrate(&Document{})
}

func (p *Postgres) Get(ctx context.Context, key string) (string, error) {
	var doc Document
	err := p.db.WithContext(ctx).Where("key = ?", key).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return doc.Value, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	doc := Document{Key: key, Value: value, UpdatedAt: time.Now()}
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&doc).Error
}

func (p *Postgres) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := p.db.WithContext(ctx).Model(&Document{}).
		Where("key LIKE ?", escapeLike(prefix)+"%").
		Pluck("key", &keys).Error
	return keys, err
}

// escapeLike neutralizes LIKE wildcards so a prefix matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`%`, `\%`, `_`, `\_`).Replace(s)
}
