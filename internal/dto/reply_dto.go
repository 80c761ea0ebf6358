package dto

import "time"

type CreateReplyRequest struct {
	Content string `json:"content" binding:"required"`
}

type AddedReplyResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// ReplyResponse is the display shape of a reply nested under its parent
// comment. The parent foreign key is intentionally absent.
type ReplyResponse struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
}
