package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"ecobin/internal/delivery/http/response"
	domainerrors "ecobin/internal/domain/errors"
	"ecobin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QueryHandler holds dependencies for the read endpoints and bin administration.
type QueryHandler struct {
	uc     usecase.QueryUsecase
	logger *slog.Logger
}

// NewQueryHandler is the constructor for QueryHandler, injected by Fx.
func NewQueryHandler(uc usecase.QueryUsecase, logger *slog.Logger) *QueryHandler {
	return &QueryHandler{
		uc:     uc,
		logger: logger,
	}
}

// resetBinInput is the administrative bin reset request body.
type resetBinInput struct {
	BinID uint `json:"bin_id" validate:"required"`
}

// UserStats returns one user's profile with cumulative totals.
func (h *QueryHandler) UserStats(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.uc.UserStats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// UserHistory returns one user's disposal history, newest first.
func (h *QueryHandler) UserHistory(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	entries, err := h.uc.UserHistory(c.Request().Context(), userID, parseLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// Leaderboard returns the top users by points.
func (h *QueryHandler) Leaderboard(c echo.Context) error {
	profiles, err := h.uc.Leaderboard(c.Request().Context(), parseLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "")
}

// Bins returns all bins with computed fill percentages.
func (h *QueryHandler) Bins(c echo.Context) error {
	bins, err := h.uc.Bins(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bins, "")
}

// ResetBin zeroes a bin's fill level and reactivates it.
func (h *QueryHandler) ResetBin(c echo.Context) error {
	var input resetBinInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bin reset input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResetBin(c.Request().Context(), input.BinID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]uint{"bin_id": input.BinID}, "Bin reset successfully")
}

// parseIDParam parses a positive integer path parameter.
func parseIDParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrInvalidRequest.WrapMessage(name + " must be a positive integer")
	}

	return uint(id), nil
}

// parseLimit reads the optional limit query parameter; zero means default.
func parseLimit(c echo.Context) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}

	return limit
}
