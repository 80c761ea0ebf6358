package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Thread struct {
	ID    string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Title string    `gorm:"size:50;not null" json:"title"`
	Body  string    `gorm:"type:text;not null" json:"body"`
	Owner string    `gorm:"type:varchar(64);not null;index" json:"owner"`
	User  User      `gorm:"foreignKey:Owner;constraint:OnDelete:CASCADE" json:"-"`
	Date  time.Time `gorm:"autoCreateTime" json:"date"`
}

func (t *Thread) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = "thread-" + uuid.NewString()
	}
	return nil
}

// ThreadDetailRow is the read-model row for the detail view, joined
// with the owner's username.
type ThreadDetailRow struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}
