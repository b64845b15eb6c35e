package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fairwaydreams/fairway-backend/internal/logger"
	"github.com/fairwaydreams/fairway-backend/internal/types"
)

type ContactRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contacts []*types.Contact) ([]*types.Contact, error)
	GetByID(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) (*types.Contact, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Contact, error)
	Save(ctx context.Context, tx *gorm.DB, contact *types.Contact) (*types.Contact, error)
	UpdateAIContent(ctx context.Context, tx *gorm.DB, contactID uuid.UUID, fields map[string]interface{}) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) error
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	repoLog := baseLog.With("repo", "ContactRepo")
	return &contactRepo{db: db, log: repoLog}
}

func (cr *contactRepo) Create(ctx context.Context, tx *gorm.DB, contacts []*types.Contact) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(contacts) == 0 {
		return []*types.Contact{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (cr *contactRepo) GetByID(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) (*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.Contact
	if err := transaction.WithContext(ctx).
		Where("id = ?", contactID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns every contact ordered by score descending, the ordering the
// contact list view expects.
func (cr *contactRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Contact
	if err := transaction.WithContext(ctx).
		Order("score DESC").
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contactRepo) Save(ctx context.Context, tx *gorm.DB, contact *types.Contact) (*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if err := transaction.WithContext(ctx).Save(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

// UpdateAIContent patches only the annotation columns; derived fields are
// never touched here.
func (cr *contactRepo) UpdateAIContent(ctx context.Context, tx *gorm.DB, contactID uuid.UUID, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(fields) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.Contact{}).
		Where("id = ?", contactID).
		Updates(fields).Error
}

func (cr *contactRepo) SoftDeleteByID(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", contactID).
		Delete(&types.Contact{}).Error
}
