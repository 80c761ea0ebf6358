package handler

import (
	"context"

	"anoa.com/diskusiforum/internal/dto"
	"github.com/gin-gonic/gin"
)

// --- Service mocks ---

type mockThreadService struct {
	createFunc func(ownerID string, req dto.CreateThreadRequest) (*dto.AddedThreadResponse, error)
	detailFunc func(threadID string) (*dto.ThreadDetailResponse, error)
}

func (m *mockThreadService) CreateThread(_ context.Context, ownerID string, req dto.CreateThreadRequest) (*dto.AddedThreadResponse, error) {
	return m.createFunc(ownerID, req)
}

func (m *mockThreadService) GetThreadDetail(_ context.Context, threadID string) (*dto.ThreadDetailResponse, error) {
	return m.detailFunc(threadID)
}

type mockCommentService struct {
	createFunc   func(ownerID, threadID string, req dto.CreateCommentRequest) (*dto.AddedCommentResponse, error)
	deleteFunc   func(ownerID, commentID string) error
	createCalled bool
}

func (m *mockCommentService) CreateComment(_ context.Context, ownerID, threadID string, req dto.CreateCommentRequest) (*dto.AddedCommentResponse, error) {
	m.createCalled = true
	return m.createFunc(ownerID, threadID, req)
}

func (m *mockCommentService) DeleteComment(_ context.Context, ownerID, commentID string) error {
	return m.deleteFunc(ownerID, commentID)
}

type mockLikeService struct {
	toggleFunc func(ownerID, threadID, commentID string) error
}

func (m *mockLikeService) ToggleLike(_ context.Context, ownerID, threadID, commentID string) error {
	return m.toggleFunc(ownerID, threadID, commentID)
}

// asUser injects an authenticated identity the way the auth middleware does.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}
