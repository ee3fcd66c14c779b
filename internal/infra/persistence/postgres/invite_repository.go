// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"vows/internal/domain/entity"
	domainerrors "vows/internal/domain/errors"
	"vows/internal/domain/repository"
	"vows/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// inviteRepository implements the repository.InviteRepository interface using GORM.
type inviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository is the constructor for inviteRepository.
func NewInviteRepository(db *gorm.DB) repository.InviteRepository {
	return &inviteRepository{
		db: db,
	}
}

// Create persists a new invite. The unique index on the token column rejects
// a token collision, which the caller may retry with a fresh token.
func (repo *inviteRepository) Create(ctx context.Context, invite *entity.Invite) error {
	inviteM := fromInviteDomain(invite)

	if err := repo.db.WithContext(ctx).Create(inviteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateInviteToken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrWeddingNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invite")
	}

	invite.ID = inviteM.ID

	return nil
}

// FindByToken retrieves an invite by its unique token.
func (repo *inviteRepository) FindByToken(ctx context.Context, token string) (*entity.Invite, error) {
	var inviteM model.InviteModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&inviteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInviteNotFound
		}

		return nil, errors.Wrap(err, "failed to find invite by token")
	}

	return toInviteDomain(&inviteM), nil
}

// FindByTokenForUpdate retrieves an invite by token while holding a row lock.
// Concurrent acceptance attempts on the same token queue on this lock, so
// only the first transaction to commit sees a pending invite.
func (repo *inviteRepository) FindByTokenForUpdate(ctx context.Context, token string) (*entity.Invite, error) {
	var inviteM model.InviteModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("token = ?", token).
		First(&inviteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInviteNotFound
		}

		return nil, errors.Wrap(err, "failed to find invite by token for update")
	}

	return toInviteDomain(&inviteM), nil
}

// ListByWedding retrieves all invites issued for a wedding.
func (repo *inviteRepository) ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*entity.Invite, error) {
	var inviteModels []*model.InviteModel

	if err := repo.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("invited_at DESC").
		Find(&inviteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list invites by wedding")
	}

	invites := make([]*entity.Invite, 0, len(inviteModels))
	for _, inviteM := range inviteModels {
		invites = append(invites, toInviteDomain(inviteM))
	}

	return invites, nil
}

// MarkAccepted stamps the invite's acceptance time.
func (repo *inviteRepository) MarkAccepted(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InviteModel{}).
		Where("id = ?", id).
		Update("accepted_at", time.Now())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark invite accepted")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInviteNotFound
	}

	return nil
}

// DeletePendingBySlot removes any unaccepted invite for the given
// (wedding, slot) pair, invalidating its token.
func (repo *inviteRepository) DeletePendingBySlot(ctx context.Context, weddingID uuid.UUID, slot entity.PartnerSlot) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("wedding_id = ? AND slot = ? AND accepted_at IS NULL", weddingID, slot.String()).
		Delete(&model.InviteModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete pending invites")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toInviteDomain converts a GORM InviteModel to a domain Invite entity.
func toInviteDomain(data *model.InviteModel) *entity.Invite {
	if data == nil {
		return nil
	}

	return &entity.Invite{
		ID:         data.ID,
		WeddingID:  data.WeddingID,
		Name:       data.Name,
		Email:      data.Email,
		Slot:       entity.PartnerSlot(data.Slot),
		Token:      data.Token,
		InvitedAt:  data.InvitedAt,
		AcceptedAt: data.AcceptedAt,
		ExpiresAt:  data.ExpiresAt,
	}
}

// fromInviteDomain converts a domain Invite entity to a GORM InviteModel.
func fromInviteDomain(data *entity.Invite) *model.InviteModel {
	if data == nil {
		return nil
	}

	return &model.InviteModel{
		ID:         data.ID,
		WeddingID:  data.WeddingID,
		Name:       data.Name,
		Email:      data.Email,
		Slot:       data.Slot.String(),
		Token:      data.Token,
		InvitedAt:  data.InvitedAt,
		AcceptedAt: data.AcceptedAt,
		ExpiresAt:  data.ExpiresAt,
	}
}
