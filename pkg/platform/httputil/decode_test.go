package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dErrors "hiebus/pkg/domain-errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRequest is a simple test struct for JSON decoding
type testRequest struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// validatingRequest implements Validatable
type validatingRequest struct {
	Name string `json:"name"`
}

func (r *validatingRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

// domainErrorRequest returns a domain error from Validate()
type domainErrorRequest struct {
	ID string `json:"id"`
}

func (r *domainErrorRequest) Validate() error {
	if r.ID == "" {
		return dErrors.New(dErrors.CodeNotFound, "id is required")
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var errResp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	return errResp
}

func TestDecodeJSON(t *testing.T) {
	logger := discardLogger()
	ctx := context.Background()

	t.Run("successful decode", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"test","value":42}`))
		w := httptest.NewRecorder()

		result, ok := DecodeJSON[testRequest](w, req, logger, ctx, "test-request-id")

		assert.True(t, ok)
		require.NotNil(t, result)
		assert.Equal(t, "test", result.Name)
		assert.Equal(t, 42, result.Value)
	})

	t.Run("invalid JSON returns error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{invalid json}`))
		w := httptest.NewRecorder()

		result, ok := DecodeJSON[testRequest](w, req, logger, ctx, "test-request-id")

		assert.False(t, ok)
		assert.Nil(t, result)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", decodeError(t, w)["error"])
	})

	t.Run("unknown field returns error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"nmae":"test"}`))
		w := httptest.NewRecorder()

		_, ok := DecodeJSON[testRequest](w, req, logger, ctx, "test-request-id")

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty body returns error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(""))
		w := httptest.NewRecorder()

		result, ok := DecodeJSON[testRequest](w, req, logger, ctx, "test-request-id")

		assert.False(t, ok)
		assert.Nil(t, result)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDecodeAndValidate(t *testing.T) {
	logger := discardLogger()
	ctx := context.Background()

	t.Run("successful decode and validate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"test"}`))
		w := httptest.NewRecorder()

		result, ok := DecodeAndValidate[validatingRequest](w, req, logger, ctx, "test-request-id")

		assert.True(t, ok)
		require.NotNil(t, result)
		assert.Equal(t, "test", result.Name)
	})

	t.Run("validation failure returns error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":""}`))
		w := httptest.NewRecorder()

		result, ok := DecodeAndValidate[validatingRequest](w, req, logger, ctx, "test-request-id")

		assert.False(t, ok)
		assert.Nil(t, result)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w)["error_description"], "name is required")
	})

	t.Run("preserves domain error code from Validate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()

		_, ok := DecodeAndValidate[domainErrorRequest](w, req, logger, ctx, "test-request-id")

		assert.False(t, ok)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "not_found", decodeError(t, w)["error"])
	})

	t.Run("non-validatable types pass through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"x"}`))
		w := httptest.NewRecorder()

		result, ok := DecodeAndValidate[testRequest](w, req, logger, ctx, "test-request-id")

		assert.True(t, ok)
		assert.Equal(t, "x", result.Name)
	})
}

func TestReadBody(t *testing.T) {
	logger := discardLogger()
	ctx := context.Background()

	t.Run("returns the body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("<GetWork/>"))
		w := httptest.NewRecorder()

		text, ok := ReadBody(w, req, logger, ctx, "rid")

		assert.True(t, ok)
		assert.Equal(t, "<GetWork/>", text)
	})

	t.Run("empty body is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		w := httptest.NewRecorder()

		_, ok := ReadBody(w, req, logger, ctx, "rid")

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("oversized body is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", MaxBodyBytes+1)))
		w := httptest.NewRecorder()

		_, ok := ReadBody(w, req, logger, ctx, "rid")

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{dErrors.New(dErrors.CodeNotFound, "no skeleton"), http.StatusNotFound, "not_found"},
		{dErrors.New(dErrors.CodeInvalidInput, "bad xml"), http.StatusBadRequest, "bad_request"},
		{dErrors.New(dErrors.CodeUnsupportedMediaType, "json only"), http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tc.err)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, decodeError(t, w)["error"])
		})
	}
}

func TestWriteXML(t *testing.T) {
	w := httptest.NewRecorder()
	WriteXML(w, http.StatusOK, "<GetWork/>")
	assert.Equal(t, "<GetWork/>", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), ContentTypeXML)
}
