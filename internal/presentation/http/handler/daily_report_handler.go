package handler

import (
	"github.com/clubdesk/clubdesk-api/internal/application/service"
	"github.com/clubdesk/clubdesk-api/internal/presentation/http/dto/request"
	"github.com/clubdesk/clubdesk-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DailyReportHandler handles the per-cast daily report HTTP requests
type DailyReportHandler struct {
	reportService *service.DailyReportService
}

// NewDailyReportHandler creates a new daily report handler
func NewDailyReportHandler(reportService *service.DailyReportService) *DailyReportHandler {
	return &DailyReportHandler{reportService: reportService}
}

// Get returns the report rows for one store day
func (h *DailyReportHandler) Get(c *gin.Context) {
	date, ok := parseDateQuery(c)
	if !ok {
		return
	}

	rows, err := h.reportService.GetDailyReport(c.Request.Context(), GetStoreID(c), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily report retrieved successfully", gin.H{"rows": rows})
}

// Save bulk-upserts the report rows for one store day
func (h *DailyReportHandler) Save(c *gin.Context) {
	date, ok := parseDateQuery(c)
	if !ok {
		return
	}

	var req request.SaveDailyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	inputs := make([]service.DailyReportRowInput, 0, len(req.Rows))
	for _, row := range req.Rows {
		inputs = append(inputs, service.DailyReportRowInput{
			ID:                 row.ID,
			CastID:             row.CastID,
			StartTime:          row.StartTime,
			EndTime:            row.EndTime,
			Overtime:           row.Overtime,
			DrinkSubtotal:      row.DrinkSubtotal,
			DrinkSubtotalBack:  row.DrinkSubtotalBack,
			BottleSubtotal:     row.BottleSubtotal,
			BottleSubtotalBack: row.BottleSubtotalBack,
			FoodSubtotal:       row.FoodSubtotal,
			FoodSubtotalBack:   row.FoodSubtotalBack,
			Bonus:              row.Bonus,
			WelfareCost:        row.WelfareCost,
			DailyPayment:       row.DailyPayment,
			AbsenceDeduction:   row.AbsenceDeduction,
			SoriDeduction:      row.SoriDeduction,
			TardinessDeduction: row.TardinessDeduction,
			OtherDeductions:    row.OtherDeductions,
		})
	}

	rows, err := h.reportService.SaveDailyReport(c.Request.Context(), GetStoreID(c), date, inputs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily report saved successfully", gin.H{"rows": rows})
}

// RemoveCast soft-deletes one cast's rows for the day
func (h *DailyReportHandler) RemoveCast(c *gin.Context) {
	date, ok := parseDateQuery(c)
	if !ok {
		return
	}

	castID, err := uuid.Parse(c.Query("cast_id"))
	if err != nil {
		response.BadRequest(c, "Invalid cast ID")
		return
	}

	if err := h.reportService.RemoveCast(c.Request.Context(), GetStoreID(c), castID, date); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
