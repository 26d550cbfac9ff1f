package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ryhoangf/iValuate/internal/engine"
)

// engineError maps engine error kinds onto HTTP problem responses.
func engineError(op string, err error) error {
	switch {
	case errors.Is(err, engine.ErrInvalidRequest):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, engine.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, engine.ErrNoPriceData):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError(op + " failed: " + err.Error())
	}
}
