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

type CommentHandler struct {
	service service.CommentService
}

func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), nil))
		return
	}

	comment, err := h.service.CreateComment(c.Request.Context(), userID, c.Param("thread_id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"addedComment": comment})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), userID, c.Param("comment_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessStatus(c)
}
