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
)

// guestRepository implements the repository.GuestRepository interface using GORM.
type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository is the constructor for guestRepository.
func NewGuestRepository(db *gorm.DB) repository.GuestRepository {
	return &guestRepository{
		db: db,
	}
}

// Create persists a new guest.
func (repo *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	guestM := fromGuestDomain(guest)

	if err := repo.db.WithContext(ctx).Create(guestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrWeddingNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required guest information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create guest")
	}

	guest.ID = guestM.ID

	return nil
}

// FindByID retrieves a single guest by its unique ID.
func (repo *guestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	var guestM model.GuestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&guestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGuestNotFound
		}

		return nil, errors.Wrap(err, "failed to find guest by id")
	}

	return toGuestDomain(&guestM), nil
}

// ListByWedding retrieves all guests of a wedding.
func (repo *guestRepository) ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*entity.Guest, error) {
	var guestModels []*model.GuestModel

	if err := repo.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("name ASC").
		Find(&guestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list guests by wedding")
	}

	guests := make([]*entity.Guest, 0, len(guestModels))
	for _, guestM := range guestModels {
		guests = append(guests, toGuestDomain(guestM))
	}

	return guests, nil
}

// Update modifies an existing guest.
func (repo *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GuestModel{}).
		Where("id = ?", guest.ID).
		Updates(map[string]any{
			"name":        guest.Name,
			"guest_group": guest.Group.String(),
			"confirmed":   guest.Confirmed,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update guest")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGuestNotFound
	}

	return nil
}

// Delete removes a guest from the list.
func (repo *guestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GuestModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete guest")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGuestNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toGuestDomain converts a GORM GuestModel to a domain Guest entity.
func toGuestDomain(data *model.GuestModel) *entity.Guest {
	if data == nil {
		return nil
	}

	return &entity.Guest{
		ID:        data.ID,
		WeddingID: data.WeddingID,
		Name:      data.Name,
		Group:     entity.GuestGroup(data.Group),
		Confirmed: data.Confirmed,
	}
}

// fromGuestDomain converts a domain Guest entity to a GORM GuestModel.
func fromGuestDomain(data *entity.Guest) *model.GuestModel {
	if data == nil {
		return nil
	}

	return &model.GuestModel{
		ID:        data.ID,
		WeddingID: data.WeddingID,
		Name:      data.Name,
		Group:     data.Group.String(),
		Confirmed: data.Confirmed,
	}
}
