package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bhwconnect/internal/delivery/http/response"
	domainerrors "bhwconnect/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	m.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_RendersAppError(t *testing.T) {
	rec, body := renderError(t, domainerrors.ErrAreaNotFound.WrapMessage("lookup failed"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.Equal(t, "area not found", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "AREA_NOT_FOUND", body.Error.Code)
}

func TestErrorMiddleware_MalformedIDStays400(t *testing.T) {
	rec, body := renderError(t, domainerrors.ErrInvalidID.WrapMessage("invalid resident id"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_ID", body.Error.Code)
}

func TestErrorMiddleware_RendersEchoHTTPError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestErrorMiddleware_UnknownErrorBecomes500(t *testing.T) {
	rec, body := renderError(t, errors.New("broken pipe"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	// Internal details never leak to clients.
	assert.NotContains(t, rec.Body.String(), "broken pipe")
}
