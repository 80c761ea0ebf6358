package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reply struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	CommentID string    `gorm:"type:varchar(64);not null;index" json:"comment_id"`
	Comment   Comment   `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
	Owner     string    `gorm:"type:varchar(64);not null;index" json:"owner"`
	User      User      `gorm:"foreignKey:Owner;constraint:OnDelete:CASCADE" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Date      time.Time `gorm:"autoCreateTime" json:"date"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
}

func (r *Reply) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = "reply-" + uuid.NewString()
	}
	return nil
}

// ReplyRow is a raw read-model row joined with the author's username.
// CommentID keys the grouping under the parent comment and is dropped
// from the outward-facing shape.
type ReplyRow struct {
	ID        string    `json:"id"`
	CommentID string    `json:"comment_id"`
	Username  string    `json:"username"`
	Date      time.Time `json:"date"`
	Content   string    `json:"content"`
	IsDeleted bool      `json:"is_deleted"`
}
