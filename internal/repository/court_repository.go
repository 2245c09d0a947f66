package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/courtbook/courtbook/internal/model"
)

var ErrCourtNotFound = errors.New("court not found")

type CourtRepository interface {
	List(ctx context.Context) ([]model.Court, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Court, error)
	// Provisioning insert; existing courts are kept.
	CreateBatch(ctx context.Context, courts []model.Court) error
}

type GormCourtRepository struct {
	db *gorm.DB
}

func NewGormCourtRepository(db *gorm.DB) *GormCourtRepository {
	return &GormCourtRepository{db: db}
}

func (r *GormCourtRepository) List(ctx context.Context) ([]model.Court, error) {
	var courts []model.Court
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&courts).Error; err != nil {
		return nil, err
	}
	return courts, nil
}

func (r *GormCourtRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Court, error) {
	var c model.Court
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormCourtRepository) CreateBatch(ctx context.Context, courts []model.Court) error {
	if len(courts) == 0 {
		return nil
	}
	for i := range courts {
		if courts[i].ID == uuid.Nil {
			courts[i].ID = uuid.New()
		}
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(courts, 100).Error
}
