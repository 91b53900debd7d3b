package activity

import (
	"net/http"
	"strconv"

	"github.com/frahmantamala/employee-management/internal/transport"
)

type ServiceAPI interface {
	RecentActivity(limit int) ([]*Entry, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     service,
	}
}

func (h *Handler) GetRecentActivity(w http.ResponseWriter, r *http.Request) {
	limit := DefaultFeedLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	entries, err := h.Service.RecentActivity(limit)
	if err != nil {
		h.Logger.Error("GetRecentActivity: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get recent activity")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"activities": entries,
		"limit":      limit,
	})
}
