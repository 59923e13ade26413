package catalog

import (
	"context"
	"testing"

	"github.com/mohitahujaa/pizzeria-management/errs"
	"github.com/mohitahujaa/pizzeria-management/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRepo struct {
	items   map[int64]model.MenuItem
	recipes map[string][]model.RecipeLine
}

func (r fakeRepo) GetMenuItem(_ context.Context, id int64) (model.MenuItem, bool, error) {
	item, ok := r.items[id]
	return item, ok, nil
}

func (r fakeRepo) GetRecipeLines(_ context.Context, recipeKey string) ([]model.RecipeLine, error) {
	return r.recipes[recipeKey], nil
}

func newTestResolver() IService {
	repo := fakeRepo{
		items: map[int64]model.MenuItem{
			1: {ID: 1, Name: "Margherita", Category: model.CategoryPizza, Size: model.SizeRegular, SKU: "PIZ-MARG-R"},
			2: {ID: 2, Name: "Cola", Category: model.CategoryBeverage, Size: model.SizeRegular, SKU: "ING-COLA"},
			3: {ID: 3, Name: "Garlic Bread", Category: model.CategorySide, Size: model.SizeRegular, SKU: "SID-GARL"},
		},
		recipes: map[string][]model.RecipeLine{
			"PIZ-MARG-R": {
				{RecipeKey: "PIZ-MARG-R", IngredientID: "ING-CHEESE", QuantityPerUnit: 1.5},
				{RecipeKey: "PIZ-MARG-R", IngredientID: "ING-FLOUR", QuantityPerUnit: 3},
			},
		},
	}
	return NewService(repo, zap.NewNop())
}

func Test_Resolve_ComposedItem(t *testing.T) {
	svc := newTestResolver()

	res, err := svc.Resolve(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, []model.IngredientRequirement{
		{IngredientID: "ING-CHEESE", Quantity: 3},
		{IngredientID: "ING-FLOUR", Quantity: 6},
	}, res)
}

func Test_Resolve_DirectStockItem(t *testing.T) {
	svc := newTestResolver()

	res, err := svc.Resolve(context.Background(), 2, 3)
	assert.NoError(t, err)
	assert.Equal(t, []model.IngredientRequirement{
		{IngredientID: "ING-COLA", Quantity: 3},
	}, res)
}

func Test_Resolve_ItemNotFound(t *testing.T) {
	svc := newTestResolver()

	_, err := svc.Resolve(context.Background(), 99, 1)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func Test_Resolve_RecipeNotFound(t *testing.T) {
	svc := newTestResolver()

	// sides are composed, and this one has no recipe lines
	_, err := svc.Resolve(context.Background(), 3, 1)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func Test_Resolve_IsDeterministic(t *testing.T) {
	svc := newTestResolver()
	ctx := context.Background()

	first, err := svc.Resolve(ctx, 1, 4)
	assert.NoError(t, err)
	second, err := svc.Resolve(ctx, 1, 4)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func Test_DirectStockCategoryTable(t *testing.T) {
	assert.True(t, directStockCategories[model.CategoryBeverage])
	assert.True(t, directStockCategories[model.CategoryDessert])
	assert.False(t, directStockCategories[model.CategoryPizza])
	assert.False(t, directStockCategories[model.CategorySide])
}
