package handler

import (
	"github.com/clubdesk/clubdesk-api/internal/application/service"
	"github.com/clubdesk/clubdesk-api/internal/presentation/http/dto/request"
	"github.com/clubdesk/clubdesk-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StoreHandler handles store HTTP requests. Managers can only address their
// own store.
type StoreHandler struct {
	storeService *service.StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// checkOwnStore verifies the path store ID matches the caller's store. It
// writes the error response itself; callers return immediately on !ok.
func checkOwnStore(c *gin.Context) bool {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return false
	}
	if storeID != GetStoreID(c) {
		response.Forbidden(c, "You do not have access to this store")
		return false
	}
	return true
}

// Get returns the caller's store
func (h *StoreHandler) Get(c *gin.Context) {
	if !checkOwnStore(c) {
		return
	}

	store, err := h.storeService.Get(c.Request.Context(), GetStoreID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store retrieved successfully", gin.H{"store": store})
}

// Update modifies the caller's store
func (h *StoreHandler) Update(c *gin.Context) {
	if !checkOwnStore(c) {
		return
	}

	var req request.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	store, err := h.storeService.Update(c.Request.Context(), GetStoreID(c), &service.UpdateStoreInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store updated successfully", gin.H{"store": store})
}
