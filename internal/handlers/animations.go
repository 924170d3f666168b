package handlers

import (
	"net/http"

	"skc.dev/internal/services"
)

// AnimationHandler serves the entrance animation registry
type AnimationHandler struct {
	portfolio *services.PortfolioService
}

func NewAnimationHandler(ps *services.PortfolioService) *AnimationHandler {
	return &AnimationHandler{portfolio: ps}
}

// ListAnimations handles GET /api/animations
func (h *AnimationHandler) ListAnimations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolio.Animations())
}
