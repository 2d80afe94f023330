// Package handler contains the HTTP handlers for the application.
package handler

import (
	"io"
	"log/slog"
	"net/http"

	"ecobin/internal/delivery/http/response"
	domainerrors "ecobin/internal/domain/errors"
	"ecobin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxSnapshotSize bounds how much of an uploaded snapshot is read.
const maxSnapshotSize = 10 << 20 // 10 MiB

// DisposalHandler holds dependencies for the disposal endpoint.
type DisposalHandler struct {
	uc     usecase.DisposalUsecase
	logger *slog.Logger
}

// NewDisposalHandler is the constructor for DisposalHandler, injected by Fx.
func NewDisposalHandler(uc usecase.DisposalUsecase, logger *slog.Logger) *DisposalHandler {
	return &DisposalHandler{
		uc:     uc,
		logger: logger,
	}
}

// DetectDisposal handles one disposal attempt from a bin kiosk. The request
// is multipart: an image file plus the rfid_uid and bin_id form fields.
func (h *DisposalHandler) DetectDisposal(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domainerrors.ErrInvalidRequest.WrapMessage("image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrInvalidRequest.WrapMessage("image file could not be opened")
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxSnapshotSize))
	if err != nil {
		return errors.Wrap(err, "failed to read snapshot")
	}

	input := &usecase.ProcessDisposalInput{
		Image:   image,
		RFIDTag: c.FormValue("rfid_uid"),
		BinID:   c.FormValue("bin_id"),
	}

	output, err := h.uc.ProcessDisposal(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.WithStatus(c, http.StatusOK, output.Status, output, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
