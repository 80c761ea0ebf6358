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

type ReplyService interface {
	CreateReply(ctx context.Context, ownerID, threadID, commentID string, req dto.CreateReplyRequest) (*dto.AddedReplyResponse, error)
	DeleteReply(ctx context.Context, ownerID, replyID string) error
}

type replyService struct {
	replyRepo   repository.ReplyRepository
	commentRepo repository.CommentRepository
	threadRepo  repository.ThreadRepository
}

func NewReplyService(replyRepo repository.ReplyRepository, commentRepo repository.CommentRepository, threadRepo repository.ThreadRepository) ReplyService {
	return &replyService{
		replyRepo:   replyRepo,
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
	}
}

func (s *replyService) CreateReply(ctx context.Context, ownerID, threadID, commentID string, req dto.CreateReplyRequest) (*dto.AddedReplyResponse, error) {
	if _, err := s.threadRepo.FindByID(ctx, threadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("thread tidak ditemukan: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	if _, err := s.commentRepo.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment tidak dapat ditemukan: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	content := sanitizeContent(req.Content)
	if content == "" {
		return nil, fmt.Errorf("konten wajib diisi: %w", apperror.ErrBadRequest)
	}

	reply := &model.Reply{
		CommentID: commentID,
		Owner:     ownerID,
		Content:   content,
	}

	if err := s.replyRepo.Create(ctx, reply); err != nil {
		return nil, err
	}

	return &dto.AddedReplyResponse{
		ID:      reply.ID,
		Content: reply.Content,
		Owner:   reply.Owner,
	}, nil
}

func (s *replyService) DeleteReply(ctx context.Context, ownerID, replyID string) error {
	reply, err := s.replyRepo.FindByID(ctx, replyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("reply tidak dapat ditemukan: %w", apperror.ErrNotFound)
		}
		return err
	}

	if reply.Owner != ownerID {
		return fmt.Errorf("Anda tidak mempunyai akses untuk melakukan aksi ini: %w", apperror.ErrForbidden)
	}

	if err := s.replyRepo.SoftDeleteByID(ctx, replyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("reply tidak dapat ditemukan: %w", apperror.ErrNotFound)
		}
		return err
	}

	return nil
}
