package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/handler/http/response"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/report"
	reportService "github.com/cmlabs-hris/bank-backoffice-go/internal/service/report"
)

const (
	DisciplinaryActionIDParam = "disciplinary_action_id"
	xlsxContentType           = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ReportHandler interface {
	// GET /information-sheets/{id}/reports/work-certificate
	WorkCertificate(w http.ResponseWriter, r *http.Request)
	// GET /information-sheets/{id}/reports/investigation-letter?disciplinary_action_id=
	InvestigationLetter(w http.ResponseWriter, r *http.Request)
	// GET /information-sheets/export
	ExportRegister(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService reportService.ReportService
}

func NewReportHandler(reportService reportService.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func (h *reportHandlerImpl) WorkCertificate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	doc, err := h.reportService.WorkCertificate(r.Context(), id)
	if err != nil {
		slog.Error("Work certificate service error", "error", err, "information_sheet_id", id)
		response.HandleError(w, err)
		return
	}
	h.writeDocument(w, r, doc)
}

func (h *reportHandlerImpl) InvestigationLetter(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	actionID, err := strconv.ParseInt(r.URL.Query().Get(DisciplinaryActionIDParam), 10, 64)
	if err != nil || actionID <= 0 {
		response.BadRequest(w, "Invalid "+DisciplinaryActionIDParam, nil)
		return
	}

	doc, err := h.reportService.InvestigationLetter(r.Context(), id, actionID)
	if err != nil {
		slog.Error("Investigation letter service error", "error", err, "information_sheet_id", id, "disciplinary_action_id", actionID)
		response.HandleError(w, err)
		return
	}
	h.writeDocument(w, r, doc)
}

func (h *reportHandlerImpl) ExportRegister(w http.ResponseWriter, r *http.Request) {
	data, err := h.reportService.ExportRegister(r.Context())
	if err != nil {
		slog.Error("Export register service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.File(w, xlsxContentType, "registre-fiches.xlsx", false, data)
}

// writeDocument sends HTML unless ?format=markdown is asked for.
func (h *reportHandlerImpl) writeDocument(w http.ResponseWriter, r *http.Request, doc report.Document) {
	if r.URL.Query().Get("format") == "markdown" {
		response.File(w, "text/markdown; charset=utf-8", doc.Filename+".md", true, []byte(doc.Markdown))
		return
	}

	page, err := report.HTML(doc)
	if err != nil {
		slog.Error("Report render error", "error", err, "kind", doc.Kind)
		response.InternalServerError(w, "Failed to render report")
		return
	}
	response.File(w, "text/html; charset=utf-8", doc.Filename+".html", true, page)
}
