package catalog

import (
	"context"

	"github.com/mohitahujaa/pizzeria-management/errs"
	"github.com/mohitahujaa/pizzeria-management/model"
	"go.uber.org/zap"
)

// directStockCategories maps item classification to resolution strategy: items
// in these categories consume the ingredient identified by their SKU
// unit-for-unit, with no recipe expansion. All other categories resolve
// through recipe_lines.
var directStockCategories = map[model.ItemCategory]bool{
	model.CategoryBeverage: true,
	model.CategoryDessert:  true,
}

// IService is the recipe resolver. Resolve is a pure lookup: it performs no
// writes and no stock checks.
type IService interface {
	Resolve(ctx context.Context, menuItemID int64, orderedQty int) ([]model.IngredientRequirement, error)
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

// Resolve maps a menu item to the ingredients an order of orderedQty units
// consumes.
func (s service) Resolve(ctx context.Context, menuItemID int64, orderedQty int) ([]model.IngredientRequirement, error) {
	item, ok, err := s.repo.GetMenuItem(ctx, menuItemID)
	if err != nil {
		return nil, errs.Transaction("read menu item", err)
	}
	if !ok {
		return nil, errs.NotFound("menu item", menuItemID)
	}

	if directStockCategories[item.Category] {
		return []model.IngredientRequirement{
			{IngredientID: item.SKU, Quantity: float64(orderedQty)},
		}, nil
	}

	lines, err := s.repo.GetRecipeLines(ctx, item.SKU)
	if err != nil {
		return nil, errs.Transaction("read recipe lines", err)
	}
	if len(lines) == 0 {
		return nil, errs.NotFound("recipe", item.SKU)
	}

	res := make([]model.IngredientRequirement, 0, len(lines))
	for _, line := range lines {
		res = append(res, model.IngredientRequirement{
			IngredientID: line.IngredientID,
			Quantity:     line.QuantityPerUnit * float64(orderedQty),
		})
	}
	s.logger.Debug("recipe resolved",
		zap.Int64("menu_item_id", menuItemID),
		zap.String("recipe_key", item.SKU),
		zap.Int("ingredients", len(res)),
	)
	return res, nil
}
