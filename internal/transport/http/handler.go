// Package httptransport exposes the codec over HTTP.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hiebus/internal/codec"
	"hiebus/internal/message"
	"hiebus/internal/platform/middleware"
	dErrors "hiebus/pkg/domain-errors"
	"hiebus/pkg/platform/httputil"
)

// Codec packs and unpacks bus messages.
type Codec interface {
	Pack(ctx context.Context, msg *message.Message) (string, error)
	Unpack(ctx context.Context, text string) (*message.Message, error)
}

// Handler is the thin HTTP layer over the codec.
type Handler struct {
	codec  Codec
	logger *slog.Logger
}

func NewHandler(c Codec, logger *slog.Logger) *Handler {
	return &Handler{codec: c, logger: logger}
}

// Register mounts the message routes.
func (h *Handler) Register(r chi.Router) {
	r.Route("/v1/messages", func(r chi.Router) {
		r.With(middleware.RequireContentType(httputil.ContentTypeJSON)).
			Post("/pack", h.HandlePack)
		r.With(middleware.RequireContentType(httputil.ContentTypeXML, "text/xml")).
			Post("/unpack", h.HandleUnpack)
	})
}

// HandlePack takes a JSON envelope and answers with its wire text.
func (h *Handler) HandlePack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	env, ok := httputil.DecodeAndValidate[Envelope](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	out, err := h.codec.Pack(ctx, env.ToMessage())
	if err != nil {
		h.writeCodecError(ctx, w, err, requestID)
		return
	}
	httputil.WriteXML(w, http.StatusOK, out)
}

// HandleUnpack takes wire text and answers with its JSON envelope.
func (h *Handler) HandleUnpack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	text, ok := httputil.ReadBody(w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	m, err := h.codec.Unpack(ctx, text)
	if err != nil {
		h.writeCodecError(ctx, w, err, requestID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromMessage(m))
}

func (h *Handler) writeCodecError(ctx context.Context, w http.ResponseWriter, err error, requestID string) {
	h.logger.WarnContext(ctx, "codec call rejected",
		"error", err,
		"request_id", requestID,
	)
	httputil.WriteError(w, toDomainError(err))
}

// toDomainError maps codec failure categories onto domain error codes.
func toDomainError(err error) error {
	category, ok := codec.CategoryOf(err)
	if !ok {
		return dErrors.Wrap(err, dErrors.CodeInternal, "")
	}
	switch category {
	case codec.CategoryTemplateNotFound:
		return dErrors.Wrap(err, dErrors.CodeNotFound, err.Error())
	case codec.CategoryMalformedInput:
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, err.Error())
	case codec.CategoryUnknownKind:
		return dErrors.Wrap(err, dErrors.CodeBadRequest, err.Error())
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "")
	}
}
