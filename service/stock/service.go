package stock

import (
	"context"

	"github.com/mohitahujaa/pizzeria-management/errs"
	"github.com/mohitahujaa/pizzeria-management/model"
	"go.uber.org/zap"
)

// IService is the stock ledger: it owns ingredient quantities and their safe
// mutation. All operations run against the caller's transaction when one is
// attached to ctx.
type IService interface {
	CurrentQuantity(ctx context.Context, ingredientID string) (float64, error)
	Decrement(ctx context.Context, ingredientID string, amount float64) (float64, error)
	ListLevels(ctx context.Context) ([]model.StockLevel, error)
}

type service struct {
	repo   IRepo
	logger *zap.Logger
}

func NewService(repo IRepo, logger *zap.Logger) IService {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

func (s service) CurrentQuantity(ctx context.Context, ingredientID string) (float64, error) {
	qty, ok, err := s.repo.GetQuantity(ctx, ingredientID)
	if err != nil {
		return 0, errs.Transaction("read stock level", err)
	}
	if !ok {
		return 0, errs.NotFound("stock level", ingredientID)
	}
	return qty, nil
}

// Decrement subtracts amount from the ingredient's stock and returns the new
// quantity. It writes nothing when the ingredient is unknown or the remaining
// stock would go negative.
func (s service) Decrement(ctx context.Context, ingredientID string, amount float64) (float64, error) {
	ok, err := s.repo.DecrementIfAvailable(ctx, ingredientID, amount)
	if err != nil {
		return 0, errs.Transaction("decrement stock", err)
	}
	if !ok {
		qty, exists, err := s.repo.GetQuantity(ctx, ingredientID)
		if err != nil {
			return 0, errs.Transaction("read stock level", err)
		}
		if !exists {
			return 0, errs.NotFound("stock level", ingredientID)
		}
		return 0, &errs.InsufficientStockError{
			IngredientID: ingredientID,
			Required:     amount,
			Available:    qty,
		}
	}

	qty, _, err := s.repo.GetQuantity(ctx, ingredientID)
	if err != nil {
		return 0, errs.Transaction("read stock level", err)
	}
	s.logger.Debug("stock decremented",
		zap.String("ingredient_id", ingredientID),
		zap.Float64("amount", amount),
		zap.Float64("remaining", qty),
	)
	return qty, nil
}

func (s service) ListLevels(ctx context.Context) ([]model.StockLevel, error) {
	levels, err := s.repo.ListLevels(ctx)
	if err != nil {
		return nil, errs.Transaction("list stock levels", err)
	}
	return levels, nil
}
