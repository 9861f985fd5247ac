package httptransport

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

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"hiebus/internal/codec"
	"hiebus/internal/message"
	"hiebus/internal/platform/health"
	"hiebus/internal/platform/metrics"
	"hiebus/internal/transport/http/mocks"
	"hiebus/pkg/domain"
)

//go:generate mockgen -source=handler.go -destination=mocks/codec-mocks.go -package=mocks Codec

type HandlerSuite struct {
	suite.Suite
	codec  *mocks.MockCodec
	router chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.codec = mocks.NewMockCodec(ctrl)
	s.router = chi.NewRouter()
	NewHandler(s.codec, discardLogger()).Register(s.router)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *HandlerSuite) post(path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerSuite) assertStatusAndError(w *httptest.ResponseRecorder, status int, code string) {
	s.Equal(status, w.Code)
	var errResp map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &errResp))
	s.Equal(code, errResp["error"])
}

func (s *HandlerSuite) TestPack() {
	s.Run("packs the envelope", func() {
		s.codec.EXPECT().Pack(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m *message.Message) (string, error) {
				s.Equal(message.KindGetWork, m.Kind())
				s.Equal("msg-1", m.ID)
				s.Equal(domain.Work{NotificationID: "42"}, m.Body.(message.WorkBody).WorkItem())
				return "<GetWork/>", nil
			})

		w := s.post("/v1/messages/pack", "application/json",
			`{"kind":"getWork","id":"msg-1","work":{"notification_id":"42"}}`)

		s.Equal(http.StatusOK, w.Code)
		s.Equal("<GetWork/>", w.Body.String())
	})

	s.Run("missing id gets a fresh one", func() {
		s.codec.EXPECT().Pack(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m *message.Message) (string, error) {
				_, err := domain.ParseMessageID(m.ID)
				s.NoError(err)
				return "<x/>", nil
			})

		w := s.post("/v1/messages/pack", "application/json", `{"kind":"findPerson"}`)

		s.Equal(http.StatusOK, w.Code)
	})
}

func (s *HandlerSuite) TestPackRejectsBadRequests() {
	cases := []struct {
		name        string
		contentType string
		body        string
		status      int
		code        string
	}{
		{"unknown kind", "application/json", `{"kind":"sendFax"}`, http.StatusBadRequest, "bad_request"},
		{"missing kind", "application/json", `{"id":"x"}`, http.StatusBadRequest, "bad_request"},
		{"payload of another kind", "application/json", `{"kind":"getWork","request":{}}`, http.StatusBadRequest, "bad_request"},
		{"xml on a flat kind", "application/json", `{"kind":"logEntry","xml":"<LogEntry/>"}`, http.StatusBadRequest, "bad_request"},
		{"not json", "application/json", `<GetWork/>`, http.StatusBadRequest, "bad_request"},
		{"wrong content type", "application/xml", `{"kind":"getWork"}`, http.StatusUnsupportedMediaType, "unsupported_media_type"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			w := s.post("/v1/messages/pack", tc.contentType, tc.body)
			s.assertStatusAndError(w, tc.status, tc.code)
		})
	}
}

func (s *HandlerSuite) TestCodecErrorMapping() {
	cases := []struct {
		category codec.Category
		status   int
		code     string
	}{
		{codec.CategoryTemplateNotFound, http.StatusNotFound, "not_found"},
		{codec.CategoryMalformedInput, http.StatusBadRequest, "bad_request"},
		{codec.CategoryUnknownKind, http.StatusBadRequest, "bad_request"},
	}
	for _, tc := range cases {
		s.Run(string(tc.category), func() {
			s.codec.EXPECT().Unpack(gomock.Any(), "<x/>").
				Return(nil, &codec.Error{Category: tc.category, Message: "failed"})

			w := s.post("/v1/messages/unpack", "application/xml", "<x/>")

			s.assertStatusAndError(w, tc.status, tc.code)
		})
	}

	s.Run("other errors are internal", func() {
		s.codec.EXPECT().Pack(gomock.Any(), gomock.Any()).Return("", errors.New("disk on fire"))

		w := s.post("/v1/messages/pack", "application/json", `{"kind":"getWork"}`)

		s.assertStatusAndError(w, http.StatusInternalServerError, "internal_error")
		s.NotContains(w.Body.String(), "disk on fire")
	})
}

func (s *HandlerSuite) TestUnpack() {
	s.Run("renders the envelope", func() {
		s.codec.EXPECT().Unpack(gomock.Any(), "<WorkDone/>").Return(&message.Message{
			ID:   "msg-7",
			Body: message.WorkDone{Work: domain.Work{NotificationID: "9"}},
			XML:  "<WorkDone/>",
		}, nil)

		w := s.post("/v1/messages/unpack", "text/xml; charset=utf-8", "<WorkDone/>")

		s.Require().Equal(http.StatusOK, w.Code)
		var env Envelope
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
		s.Equal(message.KindWorkDone, env.Kind)
		s.Equal("msg-7", env.ID)
		s.Empty(env.XML)
		s.Require().NotNil(env.Work)
		s.Equal("9", env.Work.NotificationID)
		s.Nil(env.Request)
	})

	s.Run("empty body", func() {
		w := s.post("/v1/messages/unpack", "application/xml", "")
		s.assertStatusAndError(w, http.StatusBadRequest, "bad_request")
	})
}

func TestRouterRoundTrip(t *testing.T) {
	reg := prometheus.NewRegistry()
	logger := discardLogger()
	c := codec.New(codec.WithLogger(logger))
	router := NewRouter(NewHandler(c, logger), health.New("test", "node"), metrics.New(reg), reg, logger)

	person := domain.Person{
		FirstName:   "Achieng",
		LastName:    "Otieno",
		PersonGUID:  "guid-1",
		Identifiers: []domain.PersonIdentifier{{Type: domain.NationalID, Value: "11111111"}},
	}
	in := Envelope{
		Kind:    message.KindCreatePerson,
		ID:      "msg-1",
		Request: &message.PersonRequest{Person: person, ResponseRequested: true},
	}
	body, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	packed := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/messages/pack", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(packed, req)
	if packed.Code != http.StatusOK {
		t.Fatalf("pack: status %d: %s", packed.Code, packed.Body.String())
	}

	unpacked := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/messages/unpack", bytes.NewReader(packed.Body.Bytes()))
	req.Header.Set("Content-Type", "application/xml")
	router.ServeHTTP(unpacked, req)
	if unpacked.Code != http.StatusOK {
		t.Fatalf("unpack: status %d: %s", unpacked.Code, unpacked.Body.String())
	}

	var out Envelope
	if err := json.Unmarshal(unpacked.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Kind != in.Kind || out.ID != in.ID || out.Request == nil {
		t.Fatalf("unexpected envelope %+v", out)
	}
	if !out.Request.ResponseRequested || out.Request.Person.PersonGUID != "guid-1" {
		t.Fatalf("unexpected request %+v", out.Request)
	}

	metricsRec := httptest.NewRecorder()
	router.ServeHTTP(metricsRec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(metricsRec.Body.String(), "hiebus_http_requests_total") {
		t.Fatal("http metrics not exposed")
	}
}
