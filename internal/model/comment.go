package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	ThreadID  string    `gorm:"type:varchar(64);not null;index" json:"thread_id"`
	Thread    Thread    `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE" json:"-"`
	Owner     string    `gorm:"type:varchar(64);not null;index" json:"owner"`
	User      User      `gorm:"foreignKey:Owner;constraint:OnDelete:CASCADE" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Date      time.Time `gorm:"autoCreateTime" json:"date"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = "comment-" + uuid.NewString()
	}
	return nil
}

// CommentRow is a raw read-model row joined with the author's username.
// IsDeleted is carried so the display layer can mask the content.
type CommentRow struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Date      time.Time `json:"date"`
	Content   string    `json:"content"`
	IsDeleted bool      `json:"is_deleted"`
}
