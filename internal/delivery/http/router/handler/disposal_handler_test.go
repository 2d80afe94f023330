package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ecobin/internal/delivery/http/response"
	domainerrors "ecobin/internal/domain/errors"
	mockUsecase "ecobin/internal/mocks/usecase"
	"ecobin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newDisposalRequest builds the multipart form a kiosk would send.
func newDisposalRequest(t *testing.T, image []byte, rfidTag, binID string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if image != nil {
		part, err := writer.CreateFormFile("image", "capture.jpg")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.WriteField("rfid_uid", rfidTag))
	require.NoError(t, writer.WriteField("bin_id", binID))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/detect-disposal", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestDisposalHandler_DetectDisposal_Success(t *testing.T) {
	uc := mockUsecase.NewMockDisposalUsecase(t)
	handler := NewDisposalHandler(uc, newDiscardLogger())

	image := []byte("fake image bytes")
	output := &usecase.ProcessDisposalOutput{
		Status:       usecase.StatusSuccess,
		Count:        2,
		WasteType:    "plastic_bottle",
		PointsEarned: 20,
		CarbonGrams:  100,
		VoiceCommand: "Thank you Alice, you earned 20 points. Your total is now 120 points.",
		Timestamp:    time.Now().UTC(),
	}

	uc.EXPECT().
		ProcessDisposal(mock.Anything, mock.AnythingOfType("*usecase.ProcessDisposalInput")).
		RunAndReturn(func(_ context.Context, input *usecase.ProcessDisposalInput) (*usecase.ProcessDisposalOutput, error) {
			assert.Equal(t, image, input.Image)
			assert.Equal(t, "TAG-001", input.RFIDTag)
			assert.Equal(t, "3", input.BinID)

			return output, nil
		})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newDisposalRequest(t, image, "TAG-001", "3"), rec)

	err := handler.DetectDisposal(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"status":"success"`)
	assert.Contains(t, responseBody, `"points_earned":20`)
	assert.Contains(t, responseBody, "plastic_bottle")
}

func TestDisposalHandler_DetectDisposal_NoDetection(t *testing.T) {
	uc := mockUsecase.NewMockDisposalUsecase(t)
	handler := NewDisposalHandler(uc, newDiscardLogger())

	output := &usecase.ProcessDisposalOutput{
		Status:       usecase.StatusNoDetection,
		Count:        0,
		VoiceCommand: "No items detected. Please try again.",
		Timestamp:    time.Now().UTC(),
	}

	uc.EXPECT().
		ProcessDisposal(mock.Anything, mock.AnythingOfType("*usecase.ProcessDisposalInput")).
		Return(output, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newDisposalRequest(t, []byte("fake"), "TAG-001", "3"), rec)

	err := handler.DetectDisposal(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"no_detection"`)
}

func TestDisposalHandler_DetectDisposal_MissingImageFile(t *testing.T) {
	uc := mockUsecase.NewMockDisposalUsecase(t)
	handler := NewDisposalHandler(uc, newDiscardLogger())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newDisposalRequest(t, nil, "TAG-001", "3"), rec)

	err := handler.DetectDisposal(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
}

func TestDisposalHandler_DetectDisposal_UsecaseError(t *testing.T) {
	uc := mockUsecase.NewMockDisposalUsecase(t)
	handler := NewDisposalHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ProcessDisposal(mock.Anything, mock.AnythingOfType("*usecase.ProcessDisposalInput")).
		Return(nil, domainerrors.ErrUnknownUser.WrapMessage("no user for presented tag"))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newDisposalRequest(t, []byte("fake"), "TAG-UNKNOWN", "3"), rec)

	err := handler.DetectDisposal(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownUser)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), response.StatusSuccess)
}
