package service

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/diskusiforum/internal/model"
	"anoa.com/diskusiforum/internal/repository"
	"anoa.com/diskusiforum/pkg/apperror"
	"gorm.io/gorm"
)

type LikeService interface {
	ToggleLike(ctx context.Context, ownerID, threadID, commentID string) error
}

type likeService struct {
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
	threadRepo  repository.ThreadRepository
}

func NewLikeService(likeRepo repository.LikeRepository, commentRepo repository.CommentRepository, threadRepo repository.ThreadRepository) LikeService {
	return &likeService{
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
	}
}

// ToggleLike removes the caller's like on the comment if one exists,
// otherwise creates it. Exactly one write happens per call.
func (s *likeService) ToggleLike(ctx context.Context, ownerID, threadID, commentID string) error {
	if _, err := s.threadRepo.FindByID(ctx, threadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("thread tidak ditemukan: %w", apperror.ErrNotFound)
		}
		return err
	}

	if _, err := s.commentRepo.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("comment tidak dapat ditemukan: %w", apperror.ErrNotFound)
		}
		return err
	}

	like, err := s.likeRepo.FindByCommentIDAndOwner(ctx, commentID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.likeRepo.Create(ctx, &model.Like{
				CommentID: commentID,
				Owner:     ownerID,
			})
		}
		return err
	}

	if err := s.likeRepo.DeleteByID(ctx, like.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("like tidak ditemukan: %w", apperror.ErrNotFound)
		}
		return err
	}

	return nil
}
