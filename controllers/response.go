package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bonded-wms/logger"
	"bonded-wms/models"
	"bonded-wms/repositories"
	"bonded-wms/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondError maps repository and service errors onto HTTP statuses.
func respondError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, repositories.ErrDuplicate),
		errors.Is(err, repositories.ErrProtected),
		errors.Is(err, repositories.ErrMovementAlreadyApplied):
		status = fiber.StatusConflict
	case errors.Is(err, repositories.ErrInvalidReference),
		errors.Is(err, repositories.ErrImmutable),
		errors.Is(err, services.ErrInvalidMovement):
		status = fiber.StatusBadRequest
	}

	if status == fiber.StatusInternalServerError {
		logger.L().Error("request failed",
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
			zap.Error(err))
		return ctx.Status(status).JSON(fiber.Map{"success": false, "error": "Internal server error"})
	}
	return ctx.Status(status).JSON(fiber.Map{"success": false, "error": err.Error()})
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": message})
}

// parseBody decodes the JSON body into input and runs the struct tags.
func parseBody(ctx *fiber.Ctx, input interface{}) error {
	if err := ctx.BodyParser(input); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return validateStruct(input)
}

func parseID(ctx *fiber.Ctx) (uint, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("Invalid ID")
	}
	return uint(id), nil
}

// queryFilter turns one query-string parameter into an exact-match column
// filter.
type queryFilter struct {
	Param  string
	Column string
	Parse  func(string) (interface{}, error)
}

func idFilter(name string) queryFilter {
	return queryFilter{Param: name, Column: name, Parse: func(raw string) (interface{}, error) {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("%s must be a positive integer", name)
		}
		return uint(id), nil
	}}
}

func boolFilter(name string) queryFilter {
	return queryFilter{Param: name, Column: name, Parse: func(raw string) (interface{}, error) {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s must be true or false", name)
		}
		return b, nil
	}}
}

var movementTypeFilter = queryFilter{Param: "movement_type", Column: "movement_type", Parse: func(raw string) (interface{}, error) {
	t := models.ParseMovementType(raw)
	if !t.IsValid() {
		return nil, fmt.Errorf("unknown movement_type %q", raw)
	}
	return t, nil
}}

var reasonFilter = queryFilter{Param: "reason", Column: "reason", Parse: func(raw string) (interface{}, error) {
	r := models.MovementReason(strings.ToUpper(raw))
	if !r.IsValid() {
		return nil, fmt.Errorf("unknown reason %q", raw)
	}
	return r, nil
}}

// listParams reads search, limit, offset and the given filters from the
// query string. maxLimit caps limit when it is positive.
func listParams(ctx *fiber.Ctx, maxLimit int, filters ...queryFilter) (repositories.ListParams, error) {
	params := repositories.ListParams{
		Search:  ctx.Query("search"),
		Filters: map[string]interface{}{},
		Limit:   ctx.QueryInt("limit", 0),
		Offset:  ctx.QueryInt("offset", 0),
	}
	if params.Limit < 0 || params.Offset < 0 {
		return params, errors.New("limit and offset must not be negative")
	}
	if maxLimit > 0 && (params.Limit == 0 || params.Limit > maxLimit) {
		params.Limit = maxLimit
	}

	for _, f := range filters {
		raw := strings.TrimSpace(ctx.Query(f.Param))
		if raw == "" {
			continue
		}
		value, err := f.Parse(raw)
		if err != nil {
			return params, err
		}
		params.Filters[f.Column] = value
	}
	return params, nil
}
