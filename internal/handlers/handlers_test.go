package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"skc.dev/internal/animation"
	"skc.dev/internal/contact"
	"skc.dev/internal/content"
	"skc.dev/internal/mailer"
	"skc.dev/internal/middleware"
	"skc.dev/internal/ratelimit"
	"skc.dev/internal/services"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testServer struct {
	handler http.Handler
	store   *contact.Store
	sent    *atomic.Int32
}

type serverOption func(*Dependencies, *contact.Options)

func withSender(s mailer.Sender) serverOption {
	return func(_ *Dependencies, o *contact.Options) { o.Sender = s }
}

func withoutMail() serverOption {
	return func(d *Dependencies, _ *contact.Options) { d.MailEnabled = false }
}

func withLimiter(l middleware.Allower) serverOption {
	return func(d *Dependencies, _ *contact.Options) { d.Limiter = l }
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	portfolio, err := content.Default()
	require.NoError(t, err)
	ps, err := services.NewPortfolioService(portfolio, animation.Page())
	require.NoError(t, err)

	sent := &atomic.Int32{}
	logger := zaptest.NewLogger(t)
	copts := contact.Options{
		Sender: mailer.SenderFunc(func(ctx context.Context, msg mailer.Message) error {
			sent.Add(1)
			return nil
		}),
		Logger: logger,
	}
	deps := Dependencies{
		Logger:      logger,
		Portfolio:   ps,
		MailEnabled: true,
		Static: fstest.MapFS{
			"js/portfolio.js": &fstest.MapFile{Data: []byte("// script")},
		},
	}
	for _, opt := range opts {
		opt(&deps, &copts)
	}

	store := contact.NewStore(copts, time.Hour)
	t.Cleanup(store.Close)
	deps.Sessions = store

	return &testServer{handler: SetupRoutes(deps), store: store, sent: sent}
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

type snapshotJSON struct {
	ID           string         `json:"id"`
	State        string         `json:"state"`
	Fields       contact.Fields `json:"fields"`
	Error        string         `json:"error"`
	Locked       bool           `json:"locked"`
	ResetAfterMs int64          `json:"reset_after_ms"`
}

type errorJSON struct {
	Error   string        `json:"error"`
	Session *snapshotJSON `json:"session"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

const validFields = `{"name":"Ada","email":"ada@example.com","subject":"","message":"Hello"}`

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestProjects(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var projects []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.NotEmpty(t, projects)

	rec = srv.do(t, http.MethodGet, "/api/projects/"+projects[0].ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), projects[0].Title)

	rec = srv.do(t, http.MethodGet, "/api/projects?tech=GSAP", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), projects[0].ID)

	rec = srv.do(t, http.MethodGet, "/api/projects?tech=COBOL", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/api/projects/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, rec.Body.String())
}

func TestPortfolioAndAnimations(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/portfolio", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"skill_categories"`)

	rec = srv.do(t, http.MethodGet, "/api/animations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var groups []animation.Group
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))
	assert.Len(t, groups, len(animation.Page()))
}

func TestIndex(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, `id="contact-form"`)
	assert.Contains(t, body, `id="animation-config"`)
}

func TestStatic(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/static/js/portfolio.js", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "// script", rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/static/missing.js", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmit(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(t, http.MethodPost, "/api/contact", validFields)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		snap := decode[snapshotJSON](t, rec)
		assert.Equal(t, "submitted", snap.State)
		assert.Equal(t, int64(5000), snap.ResetAfterMs)
		assert.Equal(t, contact.Fields{}, snap.Fields)
		assert.Equal(t, int32(1), srv.sent.Load())
		assert.Zero(t, srv.store.Len())
	})

	t.Run("missing field skips delivery", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(t, http.MethodPost, "/api/contact", `{"name":"  ","email":"ada@example.com","message":"Hi"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, contact.MsgMissingRequired, decode[errorJSON](t, rec).Error)
		assert.Zero(t, srv.sent.Load())
	})

	t.Run("invalid email", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(t, http.MethodPost, "/api/contact", `{"name":"Ada","email":"ada@example","message":"Hi"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, contact.MsgInvalidEmail, decode[errorJSON](t, rec).Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(t, http.MethodPost, "/api/contact", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, msgInvalidBody, decode[errorJSON](t, rec).Error)
	})

	t.Run("provider failure", func(t *testing.T) {
		srv := newTestServer(t, withSender(mailer.SenderFunc(func(context.Context, mailer.Message) error {
			return &mailer.DeliveryError{Provider: "emailjs", Status: 400, Text: "The template ID is invalid"}
		})))

		rec := srv.do(t, http.MethodPost, "/api/contact", validFields)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "The template ID is invalid", decode[errorJSON](t, rec).Error)
	})
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/contact/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[snapshotJSON](t, rec)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "idle", created.State)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), sessionCookie+"="+created.ID)

	base := "/api/contact/sessions/" + created.ID

	// submitting an empty form fails validation without delivery
	rec = srv.do(t, http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	failed := decode[errorJSON](t, rec)
	require.NotNil(t, failed.Session)
	assert.Equal(t, "failed", failed.Session.State)
	assert.Equal(t, contact.MsgMissingRequired, failed.Session.Error)

	// an edit clears the displayed error
	rec = srv.do(t, http.MethodPatch, base, `{"field":"name","value":"Ada"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	edited := decode[snapshotJSON](t, rec)
	assert.Equal(t, "idle", edited.State)
	assert.Empty(t, edited.Error)
	assert.Equal(t, "Ada", edited.Fields.Name)

	for _, body := range []string{
		`{"field":"email","value":"ada@example.com"}`,
		`{"field":"message","value":"Hello"}`,
	} {
		rec = srv.do(t, http.MethodPatch, base, body)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = srv.do(t, http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "submitted", decode[snapshotJSON](t, rec).State)
	assert.Equal(t, int32(1), srv.sent.Load())

	rec = srv.do(t, http.MethodPatch, base, `{"field":"name","value":"Again"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodGet, base, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditSession_UnknownField(t *testing.T) {
	srv := newTestServer(t)
	sess := srv.store.Create()

	rec := srv.do(t, http.MethodPatch, "/api/contact/sessions/"+sess.ID(), `{"field":"phone","value":"1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[errorJSON](t, rec).Error, "unknown contact field")
}

func TestMailDisabled(t *testing.T) {
	srv := newTestServer(t, withoutMail())

	rec := srv.do(t, http.MethodPost, "/api/contact", validFields)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"Contact form is not configured"}`, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/api/contact/sessions", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi"}}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "currently unavailable")
	assert.Zero(t, srv.sent.Load())
}

func TestSubmit_RateLimited(t *testing.T) {
	limiter := ratelimit.New(ratelimit.Config{Limit: 1, Window: time.Minute}, nil, zaptest.NewLogger(t))
	t.Cleanup(limiter.Close)
	srv := newTestServer(t, withLimiter(limiter))

	rec := srv.do(t, http.MethodPost, "/api/contact", validFields)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/contact", validFields)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, int32(1), srv.sent.Load())

	// reads are not throttled
	rec = srv.do(t, http.MethodGet, "/api/projects", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func postForm(t *testing.T, srv *testServer, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, req)
	return rec
}

func TestSubmitForm(t *testing.T) {
	t.Run("invalid email keeps input", func(t *testing.T) {
		srv := newTestServer(t)

		rec := postForm(t, srv, url.Values{
			"name":    {"Ada"},
			"email":   {"not-an-email"},
			"message": {"Hello"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, contact.MsgInvalidEmail)
		assert.Contains(t, body, `value="Ada"`)
		assert.Zero(t, srv.sent.Load())
		assert.Equal(t, 1, srv.store.Len())
	})

	t.Run("delivered then page shows notice", func(t *testing.T) {
		srv := newTestServer(t)

		rec := postForm(t, srv, url.Values{
			"name":    {"Ada"},
			"email":   {"ada@example.com"},
			"message": {"Hello"},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Message Sent Successfully!")
		assert.Equal(t, int32(1), srv.sent.Load())

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sessionCookie, cookies[0].Name)

		// reloading the page keeps the notice while the reset timer runs
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookies[0])
		rec = httptest.NewRecorder()
		srv.handler.ServeHTTP(rec, req)
		assert.Contains(t, rec.Body.String(), `id="contact-status"`)

		// a second post while submitted is a conflict and sends nothing
		rec = postForm(t, srv, url.Values{"name": {"Ada"}}, cookies[0])
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, int32(1), srv.sent.Load())
	})
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&contact.ValidationError{Kind: contact.MissingRequired}, http.StatusBadRequest},
		{contact.ErrUnknownField, http.StatusBadRequest},
		{contact.ErrSessionNotFound, http.StatusNotFound},
		{services.ErrProjectNotFound, http.StatusNotFound},
		{contact.ErrSubmitting, http.StatusConflict},
		{contact.ErrSubmitted, http.StatusConflict},
		{&mailer.DeliveryError{Provider: "smtp"}, http.StatusBadGateway},
		{context.Canceled, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}
