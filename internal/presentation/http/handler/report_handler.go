package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/electrostore-api/internal/application/service"
	"github.com/sangkips/electrostore-api/internal/domain/report"
	"github.com/sangkips/electrostore-api/internal/presentation/http/dto/request"
	"github.com/sangkips/electrostore-api/internal/presentation/http/dto/response"
)

// ReportHandler serves the admin analytics endpoints
type ReportHandler struct {
	reportService      *service.ReportService
	salesReportService *service.SalesReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, salesReportService *service.SalesReportService) *ReportHandler {
	return &ReportHandler{
		reportService:      reportService,
		salesReportService: salesReportService,
	}
}

// Sales returns the sales dashboard report. Unlike the other endpoints the
// payload sits at the top level of the body.
// @Summary Sales report
// @Tags analytics
// @Produce json
// @Param month query string false "all or 1-12"
// @Param year query string false "all or a four-digit year"
// @Param category query string false "all, phone, tablet, laptop, watch or accessories"
// @Success 200 {object} report.Result
// @Router /admin/analytics/sales [get]
func (h *ReportHandler) Sales(c *gin.Context) {
	var filter report.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ReportFailure(c, err)
		return
	}

	out, err := h.reportService.GenerateReport(c.Request.Context(), filter)
	if err != nil {
		response.ReportFailure(c, err)
		return
	}

	response.SalesReport(c, out.Result)
}

// Daily returns revenue per day between start and end
func (h *ReportHandler) Daily(c *gin.Context) {
	var filter report.DailyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	points, err := h.reportService.DailySales(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily sales retrieved successfully", points)
}

// Generate runs the sales report and saves it
func (h *ReportHandler) Generate(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}

	var req request.GenerateReportRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.salesReportService.GenerateReport(c.Request.Context(), sess, &service.GenerateSalesReportInput{
		Title: req.Title,
		Filter: report.Filter{
			Month:    req.Month,
			Year:     req.Year,
			Category: req.Category,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Report generated successfully", gin.H{
		"record": out.Record,
		"report": out.Report,
	})
}

// List lists the admin's saved reports
func (h *ReportHandler) List(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}

	result, err := h.salesReportService.ListReports(c.Request.Context(), sess, pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Reports retrieved successfully", result)
}

// Get returns a saved report
func (h *ReportHandler) Get(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "report")
	if !ok {
		return
	}

	record, err := h.salesReportService.GetReport(c.Request.Context(), sess, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report retrieved successfully", record)
}

// Update edits a saved report's metadata
func (h *ReportHandler) Update(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "report")
	if !ok {
		return
	}

	var req request.UpdateReportRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.salesReportService.UpdateReport(c.Request.Context(), sess, id, &service.UpdateSalesReportInput{
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report updated successfully", record)
}
