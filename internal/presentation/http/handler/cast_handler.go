package handler

import (
	"github.com/clubdesk/clubdesk-api/internal/application/service"
	"github.com/clubdesk/clubdesk-api/internal/domain/enum"
	"github.com/clubdesk/clubdesk-api/internal/presentation/http/dto/request"
	"github.com/clubdesk/clubdesk-api/internal/presentation/http/dto/response"
	"github.com/clubdesk/clubdesk-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CastHandler handles cast registry HTTP requests
type CastHandler struct {
	castService *service.CastService
}

// NewCastHandler creates a new cast handler
func NewCastHandler(castService *service.CastService) *CastHandler {
	return &CastHandler{castService: castService}
}

// Create handles cast creation
func (h *CastHandler) Create(c *gin.Context) {
	var req request.CastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cast, err := h.castService.Create(c.Request.Context(), GetStoreID(c), castInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cast created successfully", gin.H{"cast": cast})
}

// Get returns one cast
func (h *CastHandler) Get(c *gin.Context) {
	castID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cast ID")
		return
	}

	cast, err := h.castService.Get(c.Request.Context(), GetStoreID(c), castID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cast retrieved successfully", gin.H{"cast": cast})
}

// List returns the store's casts with pagination
func (h *CastHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	result, err := h.castService.List(c.Request.Context(), GetStoreID(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Casts retrieved successfully", result)
}

// Update handles cast updates
func (h *CastHandler) Update(c *gin.Context) {
	castID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cast ID")
		return
	}

	var req request.CastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cast, err := h.castService.Update(c.Request.Context(), GetStoreID(c), castID, castInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cast updated successfully", gin.H{"cast": cast})
}

// Delete soft-deletes a cast
func (h *CastHandler) Delete(c *gin.Context) {
	castID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cast ID")
		return
	}

	if err := h.castService.Delete(c.Request.Context(), GetStoreID(c), castID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func castInput(req *request.CastRequest) *service.CastInput {
	return &service.CastInput{
		Name:          req.Name,
		SalarySystem:  enum.SalarySystem(req.SalarySystem),
		MonthlySalary: req.MonthlySalary,
		HourlyWage:    req.HourlyWage,
		BackSetting:   enum.BackSetting(req.BackSetting),
	}
}
