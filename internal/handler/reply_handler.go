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

type ReplyHandler struct {
	service service.ReplyService
}

func NewReplyHandler(service service.ReplyService) *ReplyHandler {
	return &ReplyHandler{service: service}
}

func (h *ReplyHandler) CreateReply(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), nil))
		return
	}

	reply, err := h.service.CreateReply(c.Request.Context(), userID, c.Param("thread_id"), c.Param("comment_id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"addedReply": reply})
}

func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.DeleteReply(c.Request.Context(), userID, c.Param("reply_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessStatus(c)
}
