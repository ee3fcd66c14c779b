// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"vows/internal/domain/entity"
	domainerrors "vows/internal/domain/errors"
	"vows/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// loadOwnedWedding fetches a wedding and verifies the requesting user
// occupies one of its partner slots. Every wedding-scoped operation goes
// through this check before touching child records.
func loadOwnedWedding(ctx context.Context, weddingRepo repository.WeddingRepository, userID, weddingID uuid.UUID) (*entity.Wedding, error) {
	wedding, err := weddingRepo.FindByID(ctx, weddingID)
	if err != nil {
		if errors.Is(err, repository.ErrWeddingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrWeddingNotFound, "wedding not found")
		}

		return nil, errors.Wrap(err, "failed to find wedding")
	}

	if !wedding.HasPartner(userID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "user is not a partner in this wedding")
	}

	return wedding, nil
}
