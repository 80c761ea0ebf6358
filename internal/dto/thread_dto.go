package dto

import "time"

type CreateThreadRequest struct {
	Title string `json:"title" binding:"required,max=50"`
	Body  string `json:"body" binding:"required"`
}

type AddedThreadResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// ThreadDetailResponse is the fully nested read model for the detail
// endpoint: thread, its comments in date order, and each comment's
// replies grouped underneath.
type ThreadDetailResponse struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Date     time.Time         `json:"date"`
	Username string            `json:"username"`
	Comments []CommentResponse `json:"comments"`
}
