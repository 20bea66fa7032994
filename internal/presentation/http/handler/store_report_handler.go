package handler

import (
	"strconv"

	"github.com/clubdesk/clubdesk-api/internal/application/service"
	"github.com/clubdesk/clubdesk-api/internal/presentation/http/dto/request"
	"github.com/clubdesk/clubdesk-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// StoreReportHandler handles the store daily/monthly report HTTP requests
type StoreReportHandler struct {
	reportService *service.StoreReportService
}

// NewStoreReportHandler creates a new store report handler
func NewStoreReportHandler(reportService *service.StoreReportService) *StoreReportHandler {
	return &StoreReportHandler{reportService: reportService}
}

// GetDaily returns the store's daily report with derived KPIs
func (h *StoreReportHandler) GetDaily(c *gin.Context) {
	date, ok := parseDateQuery(c)
	if !ok {
		return
	}

	report, err := h.reportService.GetDaily(c.Request.Context(), GetStoreID(c), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store report retrieved successfully", gin.H{"report": report})
}

// SaveDaily upserts the store's daily report
func (h *StoreReportHandler) SaveDaily(c *gin.Context) {
	date, ok := parseDateQuery(c)
	if !ok {
		return
	}

	var req request.StoreReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	report, err := h.reportService.SaveDaily(c.Request.Context(), GetStoreID(c), date, &service.StoreReportInput{
		CashSales:             req.CashSales,
		CardSales:             req.CardSales,
		Receivables:           req.Receivables,
		ReceivablesCollection: req.ReceivablesCollection,
		MiscExpenses:          req.MiscExpenses,
		OtherExpenses:         req.OtherExpenses,
		SetCount:              req.SetCount,
		CustomerCount:         req.CustomerCount,
		ActualCash:            req.ActualCash,
		CoinCarryover:         req.CoinCarryover,
		TransferredCash:       req.TransferredCash,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store report saved successfully", gin.H{"report": report})
}

// GetMonthly returns the month's KPI roll-up
func (h *StoreReportHandler) GetMonthly(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		response.BadRequest(c, "year query parameter is required")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(c, "month must be between 1 and 12")
		return
	}

	report, err := h.reportService.GetMonthly(c.Request.Context(), GetStoreID(c), year, month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly report retrieved successfully", gin.H{"report": report})
}
