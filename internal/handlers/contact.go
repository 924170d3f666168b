package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"skc.dev/internal/contact"
	"skc.dev/internal/mailer"
)

const (
	sessionCookie = "contact_session"
	maxBodyBytes  = 64 << 10

	msgMailUnavailable = "Contact form is not configured"
	msgInvalidBody     = "Invalid request body"
)

var formFields = []contact.Field{
	contact.FieldName,
	contact.FieldEmail,
	contact.FieldSubject,
	contact.FieldMessage,
}

// ContactHandler drives contact form sessions over HTTP
type ContactHandler struct {
	sessions    *contact.Store
	mailEnabled bool
	pages       *PageHandler
	logger      *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(sessions *contact.Store, mailEnabled bool, pages *PageHandler, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		sessions:    sessions,
		mailEnabled: mailEnabled,
		pages:       pages,
		logger:      logger,
	}
}

type editRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// sessionResponse carries the session alongside an error so the browser can
// re-render without a second request
type sessionResponse struct {
	Error   string            `json:"error"`
	Session *contact.Snapshot `json:"session,omitempty"`
}

// RequireMail rejects contact API calls when no mail provider is configured
func (h *ContactHandler) RequireMail(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.mailEnabled {
			respondError(w, http.StatusServiceUnavailable, msgMailUnavailable)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Submit handles POST /api/contact. The fields are validated and delivered in
// one call without a stored session.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var fields contact.Fields
	if err := decodeJSON(w, r, &fields); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	sess := contact.NewSession(uuid.NewString(), h.sessions.Options())
	defer sess.Close()

	for _, f := range formFields {
		if _, err := sess.Edit(f, fields.Get(f)); err != nil {
			h.respondSessionError(w, r, err, nil)
			return
		}
	}

	snap, err := sess.Submit(r.Context())
	if err != nil {
		h.respondSessionError(w, r, err, nil)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// CreateSession handles POST /api/contact/sessions
func (h *ContactHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Create()
	h.setSessionCookie(w, sess.ID())
	respondJSON(w, http.StatusCreated, sess.Snapshot())
}

// GetSession handles GET /api/contact/sessions/{id}
func (h *ContactHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Session not found")
		return
	}
	respondJSON(w, http.StatusOK, sess.Snapshot())
}

// EditSession handles PATCH /api/contact/sessions/{id}
func (h *ContactHandler) EditSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Session not found")
		return
	}

	var req editRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	field, err := contact.ParseField(req.Field)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := sess.Edit(field, req.Value)
	if err != nil {
		h.respondSessionError(w, r, err, &snap)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// SubmitSession handles POST /api/contact/sessions/{id}/submit
func (h *ContactHandler) SubmitSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Session not found")
		return
	}

	snap, err := sess.Submit(r.Context())
	if err != nil {
		h.respondSessionError(w, r, err, &snap)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// DeleteSession handles DELETE /api/contact/sessions/{id}
func (h *ContactHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusNotFound, "Session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SubmitForm handles POST /contact, the form post used without JavaScript.
// The page is rendered with the resulting session state.
func (h *ContactHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if !h.mailEnabled {
		h.pages.render(w, r, http.StatusServiceUnavailable, contact.Snapshot{})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.pages.render(w, r, http.StatusBadRequest, contact.Snapshot{Error: msgInvalidBody})
		return
	}

	sess := h.formSession(w, r)

	for _, f := range formFields {
		if _, err := sess.Edit(f, r.PostFormValue(string(f))); err != nil {
			// Submitting or already sent: show the current state as is
			h.pages.render(w, r, statusFor(err), sess.Snapshot())
			return
		}
	}

	snap, err := sess.Submit(r.Context())
	if err != nil {
		h.logSubmitError(r, err)
		h.pages.render(w, r, statusFor(err), snap)
		return
	}
	h.pages.render(w, r, http.StatusOK, snap)
}

// formSession resolves the session named by the form or cookie, creating one
// when neither refers to a live session
func (h *ContactHandler) formSession(w http.ResponseWriter, r *http.Request) *contact.Session {
	ids := []string{r.PostFormValue("session_id")}
	if c, err := r.Cookie(sessionCookie); err == nil {
		ids = append(ids, c.Value)
	}
	for _, id := range ids {
		if id == "" {
			continue
		}
		if sess, err := h.sessions.Get(id); err == nil {
			return sess
		}
	}

	sess := h.sessions.Create()
	h.setSessionCookie(w, sess.ID())
	return sess
}

func (h *ContactHandler) setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *ContactHandler) respondSessionError(w http.ResponseWriter, r *http.Request, err error, snap *contact.Snapshot) {
	h.logSubmitError(r, err)
	respondJSON(w, statusFor(err), sessionResponse{
		Error:   errorMessage(err),
		Session: snap,
	})
}

func (h *ContactHandler) logSubmitError(r *http.Request, err error) {
	var derr *mailer.DeliveryError
	if errors.As(err, &derr) {
		h.logger.Error("contact delivery failed",
			zap.String("path", r.URL.Path),
			zap.String("provider", derr.Provider),
			zap.Int("status", derr.Status),
			zap.Error(err))
		return
	}
	h.logger.Debug("contact submission rejected",
		zap.String("path", r.URL.Path),
		zap.Error(err))
}

// errorMessage returns the text shown to the visitor for err
func errorMessage(err error) string {
	var verr *contact.ValidationError
	var derr *mailer.DeliveryError
	switch {
	case errors.As(err, &verr), errors.As(err, &derr):
		return contact.UserMessage(err)
	case errors.Is(err, contact.ErrSubmitting):
		return "Your message is already being sent"
	case errors.Is(err, contact.ErrSubmitted):
		return "Your message has already been sent"
	default:
		return mailer.FallbackMessage
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
