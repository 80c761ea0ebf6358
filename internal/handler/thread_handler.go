package handler

import (
	"net/http"

	"anoa.com/diskusiforum/internal/dto"
	"anoa.com/diskusiforum/internal/service"
	"anoa.com/diskusiforum/pkg/apperror"
	"anoa.com/diskusiforum/pkg/response"
	"anoa.com/diskusiforum/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ThreadHandler struct {
	service service.ThreadService
}

func NewThreadHandler(service service.ThreadService) *ThreadHandler {
	return &ThreadHandler{service: service}
}

func (h *ThreadHandler) CreateThread(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), nil))
		return
	}

	thread, err := h.service.CreateThread(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"addedThread": thread})
}

func (h *ThreadHandler) GetThreadDetail(c *gin.Context) {
	threadID := c.Param("thread_id")

	thread, err := h.service.GetThreadDetail(c.Request.Context(), threadID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"thread": thread})
}
