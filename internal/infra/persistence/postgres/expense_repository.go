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

// expenseRepository implements the repository.ExpenseRepository interface using GORM.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository is the constructor for expenseRepository.
func NewExpenseRepository(db *gorm.DB) repository.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create persists a new expense.
func (repo *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseM := fromExpenseDomain(expense)

	if err := repo.db.WithContext(ctx).Create(expenseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrWeddingNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required expense information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create expense")
	}

	expense.ID = expenseM.ID
	expense.CreatedAt = expenseM.CreatedAt

	return nil
}

// FindByID retrieves a single expense by its unique ID.
func (repo *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseM model.ExpenseModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&expenseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExpenseNotFound
		}

		return nil, errors.Wrap(err, "failed to find expense by id")
	}

	return toExpenseDomain(&expenseM), nil
}

// ListByWedding retrieves all expenses of a wedding.
func (repo *expenseRepository) ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*entity.Expense, error) {
	var expenseModels []*model.ExpenseModel

	if err := repo.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("created_at DESC").
		Find(&expenseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list expenses by wedding")
	}

	expenses := make([]*entity.Expense, 0, len(expenseModels))
	for _, expenseM := range expenseModels {
		expenses = append(expenses, toExpenseDomain(expenseM))
	}

	return expenses, nil
}

// Delete removes an expense. Its payments go with it through the database's
// ON DELETE CASCADE rules.
func (repo *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ExpenseModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete expense")
	}

	if result.RowsAffected == 0 {
		return repository.ErrExpenseNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toExpenseDomain converts a GORM ExpenseModel to a domain Expense entity.
func toExpenseDomain(data *model.ExpenseModel) *entity.Expense {
	if data == nil {
		return nil
	}

	return &entity.Expense{
		ID:          data.ID,
		WeddingID:   data.WeddingID,
		Name:        data.Name,
		TotalAmount: data.TotalAmount,
		CreatedAt:   data.CreatedAt,
	}
}

// fromExpenseDomain converts a domain Expense entity to a GORM ExpenseModel.
func fromExpenseDomain(data *entity.Expense) *model.ExpenseModel {
	if data == nil {
		return nil
	}

	return &model.ExpenseModel{
		ID:          data.ID,
		WeddingID:   data.WeddingID,
		Name:        data.Name,
		TotalAmount: data.TotalAmount,
	}
}
