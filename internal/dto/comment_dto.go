package dto

import "time"

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type AddedCommentResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// CommentResponse is the display shape of a comment inside the thread
// detail view. Content is already masked if the row was soft-deleted.
type CommentResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Date      time.Time       `json:"date"`
	Content   string          `json:"content"`
	LikeCount int64           `json:"likeCount"`
	Replies   []ReplyResponse `json:"replies"`
}
