package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"skc.dev/internal/components"
	"skc.dev/internal/contact"
	"skc.dev/internal/services"
)

// PageHandler renders the portfolio page
type PageHandler struct {
	portfolio   *services.PortfolioService
	sessions    *contact.Store
	mailEnabled bool
	logger      *zap.Logger
	now         func() time.Time
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.PortfolioService, sessions *contact.Store, mailEnabled bool, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		portfolio:   ps,
		sessions:    sessions,
		mailEnabled: mailEnabled,
		logger:      logger,
		now:         time.Now,
	}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, h.sessionSnapshot(r))
}

// GetPortfolio handles GET /api/portfolio
func (h *PageHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolio.Portfolio())
}

// sessionSnapshot returns the contact state bound to the request's cookie,
// or an idle form when there is none
func (h *PageHandler) sessionSnapshot(r *http.Request) contact.Snapshot {
	if h.sessions == nil {
		return contact.Snapshot{}
	}
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return contact.Snapshot{}
	}
	sess, err := h.sessions.Get(c.Value)
	if err != nil {
		return contact.Snapshot{}
	}
	return sess.Snapshot()
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, snap contact.Snapshot) {
	page := components.Page(components.PageData{
		Portfolio:   h.portfolio.Portfolio(),
		Contact:     snap,
		MailEnabled: h.mailEnabled,
		Animations:  h.portfolio.Animations(),
		Now:         h.now(),
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		h.logger.Error("failed to render page",
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
}
