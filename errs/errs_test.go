package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_HTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidRequest("order has no items")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("customer", 42)))
	assert.Equal(t, http.StatusConflict, HTTPStatus(&InsufficientStockError{
		IngredientID: "ING-FLOUR",
		Required:     3,
		Available:    1,
	}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Transaction("commit", errors.New("gone"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("driver: bad connection")))
}

func Test_KindOf_WrappedErrors(t *testing.T) {
	err := fmt.Errorf("place order: %w", NotFound("address", 7))
	assert.Equal(t, KindNotFound, KindOf(err))

	err = fmt.Errorf("line 2: %w", &InsufficientStockError{IngredientID: "ING-CHEESE", Required: 4, Available: 2})
	assert.Equal(t, KindInsufficientStock, KindOf(err))
}

func Test_InsufficientStockError_Fields(t *testing.T) {
	var stockErr *InsufficientStockError
	err := fmt.Errorf("second line: %w", &InsufficientStockError{
		IngredientID: "ING-FLOUR",
		Required:     3,
		Available:    1,
	})

	assert.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "ING-FLOUR", stockErr.IngredientID)
	assert.Equal(t, float64(3), stockErr.Required)
	assert.Equal(t, float64(1), stockErr.Available)
}

func Test_NotFound_Entity(t *testing.T) {
	var e *Error
	assert.True(t, errors.As(NotFound("menu item", 99), &e))
	assert.Equal(t, "menu item", e.Entity)
	assert.Equal(t, "menu item 99 not found", e.Error())
}

func Test_Transaction_Unwrap(t *testing.T) {
	cause := errors.New("deadlock")
	err := Transaction("decrement stock", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindTransaction, KindOf(err))
}
