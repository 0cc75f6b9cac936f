package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "tripplanner/internal/models/db_models"
)

type DraftRepository interface {
	Save(ctx context.Context, draft *dbm.PlanDraft) error
	// GetByID returns nil, nil when the draft does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.PlanDraft, error)
	ListByUser(ctx context.Context, userID int64) ([]dbm.PlanDraft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type draftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) DraftRepository {
	return &draftRepository{db: db}
}

func (r *draftRepository) Save(ctx context.Context, draft *dbm.PlanDraft) error {
	return r.db.WithContext(ctx).Save(draft).Error
}

func (r *draftRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.PlanDraft, error) {
	var draft dbm.PlanDraft
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&draft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &draft, nil
}

func (r *draftRepository) ListByUser(ctx context.Context, userID int64) ([]dbm.PlanDraft, error) {
	var drafts []dbm.PlanDraft
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&drafts).Error
	if err != nil {
		return nil, err
	}
	return drafts, nil
}

func (r *draftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&dbm.PlanDraft{}).Error
}
