package http

import (
	"net/http"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/worktime"
	"github.com/andeanwork/asistencia-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorktimeHandler interface {
	GetDay(w http.ResponseWriter, r *http.Request)
	GetPeriodSummary(w http.ResponseWriter, r *http.Request)
}

type worktimeHandlerImpl struct {
	queryService worktime.QueryService
}

func NewWorktimeHandler(queryService worktime.QueryService) WorktimeHandler {
	return &worktimeHandlerImpl{
		queryService: queryService,
	}
}

// GetDay implements WorktimeHandler.
func (h *worktimeHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := chi.URLParam(r, "date")

	resp, err := h.queryService.GetDay(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetPeriodSummary implements WorktimeHandler.
func (h *worktimeHandlerImpl) GetPeriodSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	req := worktime.PeriodSummaryRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	resp, err := h.queryService.GetPeriodSummary(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
