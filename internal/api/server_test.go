package api_test

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanranjan113114/qr-generator/internal/api"
	"github.com/amanranjan113114/qr-generator/internal/metrics"
)

type errorBody struct {
	Error struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Details map[string][]string `json:"details"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return api.New(nil, metrics.New()).Router()
}

func postQR(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/qr", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGenerateQR(t *testing.T) {
	t.Parallel()

	t.Run("text payload returns a PNG inline", func(t *testing.T) {
		t.Parallel()
		rec := postQR(t, newTestRouter(t), `{"type":"text","data":{"text":"hello"},"format":"png"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "inline; filename=qr.png", rec.Header().Get("Content-Disposition"))

		img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err, "body must be a valid PNG")
		// Defaults: scale 8, border 4; the smallest symbol is 21 modules.
		assert.GreaterOrEqual(t, img.Bounds().Dx(), (21+8)*8)
	})

	t.Run("format defaults to png", func(t *testing.T) {
		t.Parallel()
		rec := postQR(t, newTestRouter(t), `{"type":"text","data":{"text":"hello"}}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	})

	t.Run("svg output", func(t *testing.T) {
		t.Parallel()
		rec := postQR(t, newTestRouter(t), `{"type":"url","data":{"url":"example.com"},"format":"svg","border":0}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
		assert.Equal(t, "inline; filename=qr.svg", rec.Header().Get("Content-Disposition"))
		assert.True(t, strings.HasPrefix(rec.Body.String(), "<svg "))
		assert.NotContains(t, rec.Body.String(), "<?xml")
	})

	t.Run("missing fields are enumerated", func(t *testing.T) {
		t.Parallel()
		rec := postQR(t, newTestRouter(t), `{"type":"sms","data":{"message":"hi"}}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "missing_fields", body.Error.Code)
		assert.Equal(t, map[string][]string{"number": {"is required"}}, body.Error.Details)
	})

	t.Run("unsupported type is a distinct bad request", func(t *testing.T) {
		t.Parallel()
		rec := postQR(t, newTestRouter(t), `{"type":"vcard","data":{"name":"x"}}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "unsupported_type", decodeError(t, rec).Error.Code)
	})

	t.Run("unsupported format", func(t *testing.T) {
		t.Parallel()
		rec := postQR(t, newTestRouter(t), `{"type":"text","data":{"text":"x"},"format":"bmp"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "unsupported_format", decodeError(t, rec).Error.Code)
	})

	t.Run("out of range scale and border", func(t *testing.T) {
		t.Parallel()
		rec := postQR(t, newTestRouter(t), `{"type":"text","data":{"text":"x"},"scale":51,"border":21}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Contains(t, body.Error.Details, "scale")
		assert.Contains(t, body.Error.Details, "border")
	})

	t.Run("invalid error correction level", func(t *testing.T) {
		t.Parallel()
		rec := postQR(t, newTestRouter(t), `{"type":"text","data":{"text":"x"},"error":"Z"}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, decodeError(t, rec).Error.Details, "error")
	})

	t.Run("invalid colors", func(t *testing.T) {
		t.Parallel()
		rec := postQR(t, newTestRouter(t), `{"type":"text","data":{"text":"x"},"dark":"nope"}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, decodeError(t, rec).Error.Details, "dark")
	})

	t.Run("mecard without identity", func(t *testing.T) {
		t.Parallel()
		rec := postQR(t, newTestRouter(t), `{"type":"mecard","data":{"phone":"+1555"}}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "invalid_mecard_identity", decodeError(t, rec).Error.Code)
	})

	t.Run("missing data object", func(t *testing.T) {
		t.Parallel()
		rec := postQR(t, newTestRouter(t), `{"type":"text"}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, decodeError(t, rec).Error.Details, "data")
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/api/qr", strings.NewReader("type=text"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		newTestRouter(t).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_request_body", decodeError(t, rec).Error.Code)
	})

	t.Run("unknown body fields are rejected", func(t *testing.T) {
		t.Parallel()
		rec := postQR(t, newTestRouter(t), `{"type":"text","data":{"text":"x"},"size":4}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_request_body", decodeError(t, rec).Error.Code)
	})

	t.Run("wifi end to end", func(t *testing.T) {
		t.Parallel()
		rec := postQR(t, newTestRouter(t), `{"type":"wifi","data":{"ssid":"HomeNet","password":"hunter2","hidden":true}}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"status": "ok"}, body)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	// Generate one code so the counter vec has a sample.
	rec := postQR(t, router, `{"type":"text","data":{"text":"hello"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	mrec := httptest.NewRecorder()
	router.ServeHTTP(mrec, req)

	require.Equal(t, http.StatusOK, mrec.Code)
	assert.Contains(t, mrec.Body.String(), "qrgen_qr_codes_generated_total")
}

func TestRequestIDEcho(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "test-request-42")
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, "test-request-42", rec.Header().Get("X-Request-ID"))
}
