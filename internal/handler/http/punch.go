package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/punch"
	"github.com/andeanwork/asistencia-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.Service
}

func NewPunchHandler(punchService punch.Service) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
	}
}

// Record implements PunchHandler.
func (h *punchHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req punch.RecordPunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.punchService.RecordPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", resp)
}

// ListMy implements PunchHandler.
func (h *punchHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		response.BadRequest(w, "Query parameter 'from' must be in YYYY-MM-DD format", nil)
		return
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		response.BadRequest(w, "Query parameter 'to' must be in YYYY-MM-DD format", nil)
		return
	}
	if from.After(to) {
		response.BadRequest(w, "Query parameter 'from' must not be after 'to'", nil)
		return
	}

	resp, err := h.punchService.ListMyPunches(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
