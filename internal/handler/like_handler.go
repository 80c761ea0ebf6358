package handler

import (
	"anoa.com/diskusiforum/internal/service"
	"anoa.com/diskusiforum/pkg/response"
	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	service service.LikeService
}

func NewLikeHandler(service service.LikeService) *LikeHandler {
	return &LikeHandler{service: service}
}

func (h *LikeHandler) ToggleLike(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.ToggleLike(c.Request.Context(), userID, c.Param("thread_id"), c.Param("comment_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessStatus(c)
}
