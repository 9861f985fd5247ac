package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "hiebus/pkg/domain-errors"
)

// MaxBodyBytes bounds every request body read through this package.
const MaxBodyBytes = 4 << 20

// DecodeJSON decodes a JSON request body into the target type.
// On failure it writes an error response and returns nil, false.
//
// Usage:
//
//	req, ok := httputil.DecodeJSON[PackRequest](w, r, h.logger, ctx, requestID)
//	if !ok {
//	    return
//	}
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		logger.WarnContext(ctx, "failed to decode request body",
			"error", err,
			"request_id", requestID,
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return nil, false
	}
	return &req, true
}

// Validatable is implemented by request types that support validation.
type Validatable interface {
	Validate() error
}

// DecodeAndValidate decodes the JSON body, then calls Validate() if the
// target type implements it.
func DecodeAndValidate[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	req, ok := DecodeJSON[T](w, r, logger, ctx, requestID)
	if !ok {
		return nil, false
	}

	v, isValidatable := any(req).(Validatable)
	if !isValidatable {
		return req, true
	}
	if err := v.Validate(); err != nil {
		logger.WarnContext(ctx, "invalid request",
			"error", err,
			"request_id", requestID,
		)
		// Preserve original error code if it's already a domain error
		var domainErr *dErrors.Error
		if errors.As(err, &domainErr) {
			WriteError(w, err)
		} else {
			WriteError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
		}
		return nil, false
	}
	return req, true
}

// ReadBody reads a raw request body. An empty body is a bad request.
func ReadBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (string, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		logger.WarnContext(ctx, "failed to read request body",
			"error", err,
			"request_id", requestID,
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "unreadable request body"))
		return "", false
	}
	if len(data) == 0 {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "empty request body"))
		return "", false
	}
	return string(data), true
}
