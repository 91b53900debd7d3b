package dashboard

import (
	"net/http"

	"github.com/frahmantamala/employee-management/internal/transport"
)

type ServiceAPI interface {
	Summary() (*Summary, error)
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

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary()
	if err != nil {
		h.Logger.Error("GetSummary: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to compute dashboard summary")
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}
