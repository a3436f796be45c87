package http

import (
	"net/http"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/dashboard"
	"github.com/andeanwork/asistencia-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetToday(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetToday implements DashboardHandler.
func (h *dashboardHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
