// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vows/internal/domain/entity"
	domainerrors "vows/internal/domain/errors"
	"vows/internal/domain/repository"
	"vows/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// weddingRepository implements the repository.WeddingRepository interface using GORM.
type weddingRepository struct {
	db *gorm.DB
}

// NewWeddingRepository is the constructor for weddingRepository.
func NewWeddingRepository(db *gorm.DB) repository.WeddingRepository {
	return &weddingRepository{
		db: db,
	}
}

// Create persists a new wedding.
func (repo *weddingRepository) Create(ctx context.Context, wedding *entity.Wedding) error {
	weddingM := fromWeddingDomain(wedding)

	if err := repo.db.WithContext(ctx).Create(weddingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid partner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required wedding information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wedding")
	}

	wedding.ID = weddingM.ID
	wedding.CreatedAt = weddingM.CreatedAt

	return nil
}

// FindByID retrieves a single wedding by its unique ID.
func (repo *weddingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Wedding, error) {
	var weddingM model.WeddingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&weddingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWeddingNotFound
		}

		return nil, errors.Wrap(err, "failed to find wedding by id")
	}

	return toWeddingDomain(&weddingM), nil
}

// FindByIDForUpdate retrieves a wedding by ID while holding a row lock.
// The lock serializes concurrent partner attachments on the same wedding and
// is released when the surrounding transaction ends.
func (repo *weddingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Wedding, error) {
	var weddingM model.WeddingModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&weddingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWeddingNotFound
		}

		return nil, errors.Wrap(err, "failed to find wedding by id for update")
	}

	return toWeddingDomain(&weddingM), nil
}

// ListByPartner retrieves all weddings where the user occupies a slot.
func (repo *weddingRepository) ListByPartner(ctx context.Context, userID uuid.UUID) ([]*entity.Wedding, error) {
	var weddingModels []*model.WeddingModel

	if err := repo.db.WithContext(ctx).
		Where("partner_one_id = ? OR partner_two_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&weddingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list weddings by partner")
	}

	weddings := make([]*entity.Wedding, 0, len(weddingModels))
	for _, weddingM := range weddingModels {
		weddings = append(weddings, toWeddingDomain(weddingM))
	}

	return weddings, nil
}

// Update modifies an existing wedding.
func (repo *weddingRepository) Update(ctx context.Context, wedding *entity.Wedding) error {
	weddingM := fromWeddingDomain(wedding)

	result := repo.db.WithContext(ctx).
		Model(&model.WeddingModel{}).
		Where("id = ?", wedding.ID).
		Updates(map[string]any{
			"title":          weddingM.Title,
			"date":           weddingM.Date,
			"location":       weddingM.Location,
			"partner_one_id": weddingM.PartnerOneID,
			"partner_two_id": weddingM.PartnerTwoID,
			"guest_count":    weddingM.GuestCount,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid partner reference")
		}

		return errors.Wrap(result.Error, "failed to update wedding")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWeddingNotFound
	}

	return nil
}

// Delete removes a wedding. Dependent invites, guests, expenses and payments
// go with it through the database's ON DELETE CASCADE rules.
func (repo *weddingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.WeddingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete wedding")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWeddingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toWeddingDomain converts a GORM WeddingModel to a domain Wedding entity.
func toWeddingDomain(data *model.WeddingModel) *entity.Wedding {
	if data == nil {
		return nil
	}

	return &entity.Wedding{
		ID:           data.ID,
		Title:        data.Title,
		Date:         data.Date,
		Location:     data.Location,
		PartnerOneID: data.PartnerOneID,
		PartnerTwoID: data.PartnerTwoID,
		GuestCount:   data.GuestCount,
		CreatedAt:    data.CreatedAt,
	}
}

// fromWeddingDomain converts a domain Wedding entity to a GORM WeddingModel.
func fromWeddingDomain(data *entity.Wedding) *model.WeddingModel {
	if data == nil {
		return nil
	}

	return &model.WeddingModel{
		ID:           data.ID,
		Title:        data.Title,
		Date:         data.Date,
		Location:     data.Location,
		PartnerOneID: data.PartnerOneID,
		PartnerTwoID: data.PartnerTwoID,
		GuestCount:   data.GuestCount,
	}
}
