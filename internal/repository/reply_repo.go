package repository

import (
	"context"

	"anoa.com/diskusiforum/internal/model"
	"gorm.io/gorm"
)

type ReplyRepository interface {
	Create(ctx context.Context, reply *model.Reply) error
	FindByID(ctx context.Context, id string) (*model.Reply, error)
	FindByThreadID(ctx context.Context, threadID string) ([]model.ReplyRow, error)
	SoftDeleteByID(ctx context.Context, id string) error
}

type replyRepository struct {
	db *gorm.DB
}

func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(ctx context.Context, reply *model.Reply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *replyRepository) FindByID(ctx context.Context, id string) (*model.Reply, error) {
	var reply model.Reply
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&reply).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}

// FindByThreadID returns the replies of every comment belonging to the
// thread, oldest first.
func (r *replyRepository) FindByThreadID(ctx context.Context, threadID string) ([]model.ReplyRow, error) {
	var rows []model.ReplyRow
	err := r.db.WithContext(ctx).
		Table("replies").
		Select("replies.id, replies.comment_id, users.username, replies.date, replies.content, replies.is_deleted").
		Joins("JOIN comments ON comments.id = replies.comment_id").
		Joins("JOIN users ON users.id = replies.owner").
		Where("comments.thread_id = ?", threadID).
		Order("replies.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *replyRepository) SoftDeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Reply{}).
		Where("id = ?", id).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
