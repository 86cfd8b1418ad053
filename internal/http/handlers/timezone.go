package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"horatime-api/internal/middleware"
	"horatime-api/internal/timezone"
	"horatime-api/pkg/response"
)

// TimezoneGet serves GET /api/timezone?location=<name>.
func (h *Handler) TimezoneGet(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")

	if strings.TrimSpace(location) == "" {
		h.Logger.Warn("location parameter missing or blank")
		response.JSON(w, http.StatusBadRequest, timezone.ErrorResponse(timezone.MessageMissingParam))
		return
	}

	resp := h.Timezone.CurrentTime(location)
	h.Events.Publish(resp, middleware.GetRequestID(r.Context()))

	if resp.Success() {
		response.JSON(w, http.StatusOK, resp)
		return
	}
	response.JSON(w, http.StatusNotFound, resp)
}

func (h *Handler) TimezoneHealth(w http.ResponseWriter, r *http.Request) {
	h.Logger.Debug("health check")
	response.Text(w, http.StatusOK, fmt.Sprintf("%s API is running", h.Config.AppName))
}

func (h *Handler) TimezoneInfo(w http.ResponseWriter, r *http.Request) {
	h.Logger.Debug("info requested")
	response.Text(w, http.StatusOK, fmt.Sprintf("%s API v%s - Timezone lookup service", h.Config.AppName, h.Config.AppVersion))
}

// TimezoneLocations lists every alias the resolver knows, in match order.
func (h *Handler) TimezoneLocations(w http.ResponseWriter, r *http.Request) {
	locations := h.Timezone.Resolver().AvailableLocations()
	response.JSON(w, http.StatusOK, map[string]any{
		"locations": locations,
		"count":     len(locations),
	})
}
