package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "refill-system/pkg/errors"
)

// bindAndValidate decodes the JSON body into payload and runs the
// validator, normalizing both failure modes to errors the central
// ErrorResponse helper understands.
func bindAndValidate(ctx echo.Context, payload interface{}) error {
	if err := ctx.Bind(payload); err != nil {
		return apperrors.ErrBadRequest
	}
	if err := ctx.Validate(payload); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
	}
	return nil
}

func parseIDParam(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.ErrBadRequest
	}
	return id, nil
}
