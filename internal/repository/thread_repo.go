package repository

import (
	"context"

	"anoa.com/diskusiforum/internal/model"
	"gorm.io/gorm"
)

type ThreadRepository interface {
	Create(ctx context.Context, thread *model.Thread) error
	FindByID(ctx context.Context, id string) (*model.Thread, error)
	FindDetailByID(ctx context.Context, id string) (*model.ThreadDetailRow, error)
}

type threadRepository struct {
	db *gorm.DB
}

func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &threadRepository{db: db}
}

func (r *threadRepository) Create(ctx context.Context, thread *model.Thread) error {
	return r.db.WithContext(ctx).Create(thread).Error
}

func (r *threadRepository) FindByID(ctx context.Context, id string) (*model.Thread, error) {
	var thread model.Thread
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&thread).Error; err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *threadRepository) FindDetailByID(ctx context.Context, id string) (*model.ThreadDetailRow, error) {
	var row model.ThreadDetailRow
	err := r.db.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.title, threads.body, threads.date, users.username").
		Joins("JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
