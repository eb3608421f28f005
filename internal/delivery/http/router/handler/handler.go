// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXActorID identifies the staff member behind catalog mutations and
// admin jobs, stamped into the audit trail.
const HeaderXActorID = "X-Actor-Id"

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// paginationFromQuery normalizes the page/limit query pair.
func paginationFromQuery(c echo.Context) usecase.Pagination {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return usecase.Pagination{Page: page, Limit: limit}
}

// idParam parses the :id path parameter.
func idParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	return id, nil
}

// actorID parses the X-Actor-Id header identifying who performed a mutation.
func actorID(c echo.Context) (uuid.UUID, error) {
	raw := c.Request().Header.Get(HeaderXActorID)
	if raw == "" {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("X-Actor-Id header is required")
	}

	actor, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("X-Actor-Id must be a valid UUID")
	}

	return actor, nil
}
