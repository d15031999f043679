package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is one persisted JSON blob, keyed by owner and logical key.
// Every feature stores its whole state as a single document and rewrites
// it on each mutation; there are no partial updates.
type Document struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserID    uint   `json:"user_id" gorm:"uniqueIndex:idx_user_key;not null"`
	Key       string `json:"key" gorm:"uniqueIndex:idx_user_key;size:128;not null"`
	Value     string `json:"value" gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
	CreatedAt time.Time
}

// DocumentRepository defines the whole-document storage operations.
type DocumentRepository interface {
	// Get returns the raw document value, or found=false if the key has
	// never been written for this user.
	Get(userID uint, key string) (raw []byte, found bool, err error)
	Put(userID uint, key string, raw []byte) error
	Delete(userID uint, key string) error
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Get(userID uint, key string) ([]byte, bool, error) {
	var doc Document
	err := r.db.Where("user_id = ? AND key = ?", userID, key).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(doc.Value), true, nil
}

func (r *documentRepository) Put(userID uint, key string, raw []byte) error {
	doc := Document{
		UserID: userID,
		Key:    key,
		Value:  string(raw),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
}

func (r *documentRepository) Delete(userID uint, key string) error {
	return r.db.Where("user_id = ? AND key = ?", userID, key).Delete(&Document{}).Error
}
