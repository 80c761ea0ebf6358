package service

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/diskusiforum/internal/dto"
	"anoa.com/diskusiforum/internal/model"
	"anoa.com/diskusiforum/internal/repository"
	"anoa.com/diskusiforum/pkg/apperror"
	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(ctx context.Context, ownerID, threadID string, req dto.CreateCommentRequest) (*dto.AddedCommentResponse, error)
	DeleteComment(ctx context.Context, ownerID, commentID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	threadRepo  repository.ThreadRepository
}

func NewCommentService(commentRepo repository.CommentRepository, threadRepo repository.ThreadRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
	}
}

func (s *commentService) CreateComment(ctx context.Context, ownerID, threadID string, req dto.CreateCommentRequest) (*dto.AddedCommentResponse, error) {
	if _, err := s.threadRepo.FindByID(ctx, threadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("thread tidak ditemukan: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	content := sanitizeContent(req.Content)
	if content == "" {
		return nil, fmt.Errorf("konten wajib diisi: %w", apperror.ErrBadRequest)
	}

	comment := &model.Comment{
		ThreadID: threadID,
		Owner:    ownerID,
		Content:  content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return &dto.AddedCommentResponse{
		ID:      comment.ID,
		Content: comment.Content,
		Owner:   comment.Owner,
	}, nil
}

// DeleteComment verifies existence and ownership, then flips the
// soft-delete flag. Verification and deletion are separate statements;
// the window between them is accepted.
func (s *commentService) DeleteComment(ctx context.Context, ownerID, commentID string) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("comment tidak dapat ditemukan: %w", apperror.ErrNotFound)
		}
		return err
	}

	if comment.Owner != ownerID {
		return fmt.Errorf("Anda tidak mempunyai akses untuk melakukan aksi ini: %w", apperror.ErrForbidden)
	}

	if err := s.commentRepo.SoftDeleteByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("comment tidak dapat ditemukan: %w", apperror.ErrNotFound)
		}
		return err
	}

	return nil
}
