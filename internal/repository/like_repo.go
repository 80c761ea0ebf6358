package repository

import (
	"context"

	"anoa.com/diskusiforum/internal/model"
	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(ctx context.Context, like *model.Like) error
	FindByCommentIDAndOwner(ctx context.Context, commentID, owner string) (*model.Like, error)
	DeleteByID(ctx context.Context, id string) error
	CountByCommentID(ctx context.Context, commentID string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *model.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) FindByCommentIDAndOwner(ctx context.Context, commentID, owner string) (*model.Like, error) {
	var like model.Like
	err := r.db.WithContext(ctx).
		Where("comment_id = ? AND owner = ?", commentID, owner).
		Take(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *likeRepository) CountByCommentID(ctx context.Context, commentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
