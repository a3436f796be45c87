package http

import (
	"net/http"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/report"
	"github.com/andeanwork/asistencia-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetMonthlyWorktime(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetMonthlyWorktime implements ReportHandler.
func (h *reportHandlerImpl) GetMonthlyWorktime(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyWorktimeRequest{
		Month: r.URL.Query().Get("month"),
		Year:  r.URL.Query().Get("year"),
	}

	resp, err := h.reportService.GetMonthlyWorktime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
