package stock

import (
	"context"
	"errors"
	"testing"

	"github.com/mohitahujaa/pizzeria-management/errs"
	"github.com/mohitahujaa/pizzeria-management/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRepo struct {
	quantities map[string]float64
}

func (r *fakeRepo) GetQuantity(_ context.Context, ingredientID string) (float64, bool, error) {
	qty, ok := r.quantities[ingredientID]
	return qty, ok, nil
}

func (r *fakeRepo) DecrementIfAvailable(_ context.Context, ingredientID string, amount float64) (bool, error) {
	qty, ok := r.quantities[ingredientID]
	if !ok || qty < amount {
		return false, nil
	}
	r.quantities[ingredientID] = qty - amount
	return true, nil
}

func (r *fakeRepo) ListLevels(_ context.Context) ([]model.StockLevel, error) {
	var res []model.StockLevel
	for id, qty := range r.quantities {
		res = append(res, model.StockLevel{IngredientID: id, Quantity: qty})
	}
	return res, nil
}

func newTestLedger(quantities map[string]float64) (IService, *fakeRepo) {
	repo := &fakeRepo{quantities: quantities}
	return NewService(repo, zap.NewNop()), repo
}

func Test_CurrentQuantity(t *testing.T) {
	svc, _ := newTestLedger(map[string]float64{"ING-FLOUR": 10})

	qty, err := svc.CurrentQuantity(context.Background(), "ING-FLOUR")
	assert.NoError(t, err)
	assert.Equal(t, float64(10), qty)
}

func Test_CurrentQuantity_NotFound(t *testing.T) {
	svc, _ := newTestLedger(map[string]float64{})

	_, err := svc.CurrentQuantity(context.Background(), "ING-TRUFFLE")
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func Test_Decrement(t *testing.T) {
	svc, repo := newTestLedger(map[string]float64{"ING-FLOUR": 10})

	qty, err := svc.Decrement(context.Background(), "ING-FLOUR", 9)
	assert.NoError(t, err)
	assert.Equal(t, float64(1), qty)
	assert.Equal(t, float64(1), repo.quantities["ING-FLOUR"])
}

func Test_Decrement_ToExactlyZero(t *testing.T) {
	svc, repo := newTestLedger(map[string]float64{"ING-CHEESE": 4})

	qty, err := svc.Decrement(context.Background(), "ING-CHEESE", 4)
	assert.NoError(t, err)
	assert.Equal(t, float64(0), qty)
	assert.Equal(t, float64(0), repo.quantities["ING-CHEESE"])
}

func Test_Decrement_Insufficient(t *testing.T) {
	svc, repo := newTestLedger(map[string]float64{"ING-FLOUR": 1})

	_, err := svc.Decrement(context.Background(), "ING-FLOUR", 3)

	var stockErr *errs.InsufficientStockError
	assert.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "ING-FLOUR", stockErr.IngredientID)
	assert.Equal(t, float64(3), stockErr.Required)
	assert.Equal(t, float64(1), stockErr.Available)
	// stock must stay as it was, not be clamped to zero
	assert.Equal(t, float64(1), repo.quantities["ING-FLOUR"])
}

func Test_Decrement_UnknownIngredient(t *testing.T) {
	svc, _ := newTestLedger(map[string]float64{})

	_, err := svc.Decrement(context.Background(), "ING-TRUFFLE", 1)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func Test_ListLevels(t *testing.T) {
	svc, _ := newTestLedger(map[string]float64{"ING-FLOUR": 10, "ING-CHEESE": 4})

	levels, err := svc.ListLevels(context.Background())
	assert.NoError(t, err)
	assert.Len(t, levels, 2)
}
