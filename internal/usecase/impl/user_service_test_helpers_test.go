package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vows/config"
	"vows/internal/domain/repository"
	"vows/internal/domain/service"
	mockRepo "vows/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Invite: &config.InviteConfig{
			TTL:           72 * time.Hour,
			AcceptBaseURL: "http://localhost:8080/invites/accept",
		},
	}
}

func serviceClaims(userID uuid.UUID, tokenType string) *service.Claims {
	return &service.Claims{UserID: userID, Type: tokenType}
}

// txExpecter wires transaction expectations onto a mocked TransactionManager.
// Embedded in the per-service fixture structs.
type txExpecter struct {
	t         *testing.T
	txManager *mockRepo.MockTransactionManager
}

// onExecute arranges for the next Execute call to run the transactional
// closure against a factory prepared by setup, and to report result as the
// transaction outcome.
func (e txExpecter) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	e.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(e.t)
			setup(factory)

			_ = fn(factory)
		}).
		Return(result)
}
