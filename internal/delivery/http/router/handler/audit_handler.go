package handler

import (
	"log/slog"

	"bookstore/internal/delivery/http/response"
	"bookstore/internal/domain/entity"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuditHandler holds dependencies for the audit trail handlers.
type AuditHandler struct {
	uc     usecase.AuditUsecase
	logger *slog.Logger
}

// NewAuditHandler is the constructor for AuditHandler, injected by Fx.
func NewAuditHandler(uc usecase.AuditUsecase, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles paginated audit trail queries.
func (h *AuditHandler) List(c echo.Context) error {
	input := &usecase.AuditQueryInput{
		TargetCollection: c.QueryParam("target_collection"),
		Action:           entity.AuditAction(c.QueryParam("action")),
		Pagination:       paginationFromQuery(c),
	}

	entries, page, err := h.uc.Query(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, entries, page, "")
}
