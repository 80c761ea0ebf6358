package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Like struct {
	ID        string  `gorm:"type:varchar(64);primaryKey" json:"id"`
	CommentID string  `gorm:"type:varchar(64);not null;uniqueIndex:idx_likes_comment_owner" json:"comment_id"`
	Comment   Comment `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
	Owner     string  `gorm:"type:varchar(64);not null;uniqueIndex:idx_likes_comment_owner" json:"owner"`
	User      User    `gorm:"foreignKey:Owner;constraint:OnDelete:CASCADE" json:"-"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = "like-" + uuid.NewString()
	}
	return nil
}
