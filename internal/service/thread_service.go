package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"anoa.com/diskusiforum/internal/dto"
	"anoa.com/diskusiforum/internal/model"
	"anoa.com/diskusiforum/internal/repository"
	"anoa.com/diskusiforum/pkg/apperror"
	"gorm.io/gorm"
)

const maxThreadTitleLen = 50

type ThreadService interface {
	CreateThread(ctx context.Context, ownerID string, req dto.CreateThreadRequest) (*dto.AddedThreadResponse, error)
	GetThreadDetail(ctx context.Context, threadID string) (*dto.ThreadDetailResponse, error)
}

type threadService struct {
	threadRepo  repository.ThreadRepository
	commentRepo repository.CommentRepository
	replyRepo   repository.ReplyRepository
	likeRepo    repository.LikeRepository
}

func NewThreadService(threadRepo repository.ThreadRepository, commentRepo repository.CommentRepository, replyRepo repository.ReplyRepository, likeRepo repository.LikeRepository) ThreadService {
	return &threadService{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
		likeRepo:    likeRepo,
	}
}

func (s *threadService) CreateThread(ctx context.Context, ownerID string, req dto.CreateThreadRequest) (*dto.AddedThreadResponse, error) {
	title := sanitizeContent(req.Title)
	body := sanitizeContent(req.Body)

	if title == "" || body == "" {
		return nil, fmt.Errorf("judul dan isi thread wajib diisi: %w", apperror.ErrBadRequest)
	}
	if utf8.RuneCountInString(title) > maxThreadTitleLen {
		return nil, fmt.Errorf("judul melebihi batas %d karakter: %w", maxThreadTitleLen, apperror.ErrBadRequest)
	}

	thread := &model.Thread{
		Title: title,
		Body:  body,
		Owner: ownerID,
	}

	if err := s.threadRepo.Create(ctx, thread); err != nil {
		return nil, err
	}

	return &dto.AddedThreadResponse{
		ID:    thread.ID,
		Title: thread.Title,
		Owner: thread.Owner,
	}, nil
}

// GetThreadDetail assembles the nested detail view. The fetches run
// strictly in sequence: the thread lookup gates everything else, and
// the per-comment like counts follow comment order.
func (s *threadService) GetThreadDetail(ctx context.Context, threadID string) (*dto.ThreadDetailResponse, error) {
	row, err := s.threadRepo.FindDetailByID(ctx, threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("thread tidak ditemukan: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	comments, err := s.commentRepo.FindByThreadID(ctx, threadID)
	if err != nil {
		return nil, err
	}

	replies, err := s.replyRepo.FindByThreadID(ctx, threadID)
	if err != nil {
		return nil, err
	}

	nested := groupReplies(comments, replies)
	for i := range comments {
		count, err := s.likeRepo.CountByCommentID(ctx, comments[i].ID)
		if err != nil {
			return nil, err
		}
		nested[i].LikeCount = count
	}

	return &dto.ThreadDetailResponse{
		ID:       row.ID,
		Title:    row.Title,
		Body:     row.Body,
		Date:     row.Date,
		Username: row.Username,
		Comments: nested,
	}, nil
}
