package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"anoa.com/diskusiforum/internal/dto"
	"anoa.com/diskusiforum/internal/model"
	"anoa.com/diskusiforum/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newThreadService(threadRepo *mockThreadRepo, commentRepo *mockCommentRepo, replyRepo *mockReplyRepo, likeRepo *mockLikeRepo) ThreadService {
	if threadRepo == nil {
		threadRepo = &mockThreadRepo{}
	}
	if commentRepo == nil {
		commentRepo = &mockCommentRepo{}
	}
	if replyRepo == nil {
		replyRepo = &mockReplyRepo{}
	}
	if likeRepo == nil {
		likeRepo = &mockLikeRepo{}
	}
	return NewThreadService(threadRepo, commentRepo, replyRepo, likeRepo)
}

func TestCreateThread(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and returns the added thread projection", func(t *testing.T) {
		threadRepo := &mockThreadRepo{}
		svc := newThreadService(threadRepo, nil, nil, nil)

		got, err := svc.CreateThread(ctx, "user-1", dto.CreateThreadRequest{
			Title: "sebuah thread",
			Body:  "sebuah body",
		})

		require.NoError(t, err)
		assert.True(t, threadRepo.createCalled)
		assert.Equal(t, "thread-123", got.ID)
		assert.Equal(t, "sebuah thread", got.Title)
		assert.Equal(t, "user-1", got.Owner)
	})

	t.Run("rejects a title longer than 50 characters", func(t *testing.T) {
		threadRepo := &mockThreadRepo{}
		svc := newThreadService(threadRepo, nil, nil, nil)

		_, err := svc.CreateThread(ctx, "user-1", dto.CreateThreadRequest{
			Title: strings.Repeat("a", 51),
			Body:  "sebuah body",
		})

		assert.ErrorIs(t, err, apperror.ErrBadRequest)
		assert.False(t, threadRepo.createCalled)
	})

	t.Run("accepts a title of exactly 50 characters", func(t *testing.T) {
		svc := newThreadService(nil, nil, nil, nil)

		got, err := svc.CreateThread(ctx, "user-1", dto.CreateThreadRequest{
			Title: strings.Repeat("a", 50),
			Body:  "sebuah body",
		})

		require.NoError(t, err)
		assert.Len(t, got.Title, 50)
	})

	t.Run("rejects empty title or body", func(t *testing.T) {
		svc := newThreadService(nil, nil, nil, nil)

		_, err := svc.CreateThread(ctx, "user-1", dto.CreateThreadRequest{Title: " ", Body: "isi"})
		assert.ErrorIs(t, err, apperror.ErrBadRequest)

		_, err = svc.CreateThread(ctx, "user-1", dto.CreateThreadRequest{Title: "judul", Body: " "})
		assert.ErrorIs(t, err, apperror.ErrBadRequest)
	})
}

func TestGetThreadDetail(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("missing thread aborts before any comment fetch", func(t *testing.T) {
		threadRepo := &mockThreadRepo{
			findDetailFunc: func(id string) (*model.ThreadDetailRow, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		commentFetched := false
		commentRepo := &mockCommentRepo{
			findByThreadIDFunc: func(threadID string) ([]model.CommentRow, error) {
				commentFetched = true
				return nil, nil
			},
		}
		svc := newThreadService(threadRepo, commentRepo, nil, nil)

		_, err := svc.GetThreadDetail(ctx, "thread-404")

		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.False(t, commentFetched)
	})

	t.Run("thread without comments returns an empty comment list", func(t *testing.T) {
		threadRepo := &mockThreadRepo{
			findDetailFunc: func(id string) (*model.ThreadDetailRow, error) {
				return &model.ThreadDetailRow{
					ID:       "thread-123",
					Title:    "sebuah thread",
					Body:     "sebuah body",
					Date:     date,
					Username: "dicoding",
				}, nil
			},
		}
		svc := newThreadService(threadRepo, nil, nil, nil)

		got, err := svc.GetThreadDetail(ctx, "thread-123")

		require.NoError(t, err)
		assert.Equal(t, "thread-123", got.ID)
		assert.Equal(t, "dicoding", got.Username)
		assert.NotNil(t, got.Comments)
		assert.Empty(t, got.Comments)
	})

	t.Run("assembles comments, replies, masking and like counts", func(t *testing.T) {
		threadRepo := &mockThreadRepo{
			findDetailFunc: func(id string) (*model.ThreadDetailRow, error) {
				return &model.ThreadDetailRow{ID: id, Title: "judul", Username: "dicoding"}, nil
			},
		}
		commentRepo := &mockCommentRepo{
			findByThreadIDFunc: func(threadID string) ([]model.CommentRow, error) {
				return []model.CommentRow{
					{ID: "comment-1", Username: "johndoe", Date: date, Content: "komentar pertama"},
					{ID: "comment-2", Username: "janedoe", Date: date.Add(time.Minute), Content: "komentar kedua", IsDeleted: true},
				}, nil
			},
		}
		replyRepo := &mockReplyRepo{
			findByThreadIDFunc: func(threadID string) ([]model.ReplyRow, error) {
				return []model.ReplyRow{
					{ID: "reply-1", CommentID: "comment-1", Username: "janedoe", Content: "balasan", IsDeleted: true},
					{ID: "reply-2", CommentID: "comment-1", Username: "johndoe", Content: "balasan lain"},
				}, nil
			},
		}
		likeRepo := &mockLikeRepo{
			countFunc: func(commentID string) (int64, error) {
				if commentID == "comment-1" {
					return 2, nil
				}
				return 0, nil
			},
		}
		svc := newThreadService(threadRepo, commentRepo, replyRepo, likeRepo)

		got, err := svc.GetThreadDetail(ctx, "thread-123")

		require.NoError(t, err)
		require.Len(t, got.Comments, 2)

		first := got.Comments[0]
		assert.Equal(t, "komentar pertama", first.Content)
		assert.Equal(t, int64(2), first.LikeCount)
		require.Len(t, first.Replies, 2)
		assert.Equal(t, "**balasan telah dihapus**", first.Replies[0].Content)
		assert.Equal(t, "balasan lain", first.Replies[1].Content)

		second := got.Comments[1]
		assert.Equal(t, "**komentar telah dihapus**", second.Content)
		assert.Equal(t, int64(0), second.LikeCount)
		assert.Empty(t, second.Replies)

		// like counts were fetched in comment order
		assert.Equal(t, []string{"comment-1", "comment-2"}, likeRepo.countedIDs)
	})

	t.Run("like count failure propagates with no partial result", func(t *testing.T) {
		commentRepo := &mockCommentRepo{
			findByThreadIDFunc: func(threadID string) ([]model.CommentRow, error) {
				return []model.CommentRow{{ID: "comment-1"}}, nil
			},
		}
		likeRepo := &mockLikeRepo{
			countFunc: func(commentID string) (int64, error) {
				return 0, assert.AnError
			},
		}
		svc := newThreadService(nil, commentRepo, nil, likeRepo)

		got, err := svc.GetThreadDetail(ctx, "thread-123")

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, got)
	})
}
