package service

import (
	"context"

	"anoa.com/diskusiforum/internal/model"
	"gorm.io/gorm"
)

// --- Mocks ---

// mockThreadRepo mocks repository.ThreadRepository.
type mockThreadRepo struct {
	createFunc       func(thread *model.Thread) error
	findByIDFunc     func(id string) (*model.Thread, error)
	findDetailFunc   func(id string) (*model.ThreadDetailRow, error)
	createCalled     bool
	findDetailCalled bool
}

func (m *mockThreadRepo) Create(_ context.Context, thread *model.Thread) error {
	m.createCalled = true
	if m.createFunc != nil {
		return m.createFunc(thread)
	}
	thread.ID = "thread-123"
	return nil
}

func (m *mockThreadRepo) FindByID(_ context.Context, id string) (*model.Thread, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id)
	}
	return &model.Thread{ID: id}, nil
}

func (m *mockThreadRepo) FindDetailByID(_ context.Context, id string) (*model.ThreadDetailRow, error) {
	m.findDetailCalled = true
	if m.findDetailFunc != nil {
		return m.findDetailFunc(id)
	}
	return &model.ThreadDetailRow{ID: id}, nil
}

// mockCommentRepo mocks repository.CommentRepository.
type mockCommentRepo struct {
	createFunc         func(comment *model.Comment) error
	findByIDFunc       func(id string) (*model.Comment, error)
	findByThreadIDFunc func(threadID string) ([]model.CommentRow, error)
	softDeleteFunc     func(id string) error
	createCalled       bool
	softDeleteCalled   bool
}

func (m *mockCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	m.createCalled = true
	if m.createFunc != nil {
		return m.createFunc(comment)
	}
	comment.ID = "comment-123"
	return nil
}

func (m *mockCommentRepo) FindByID(_ context.Context, id string) (*model.Comment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id)
	}
	return &model.Comment{ID: id}, nil
}

func (m *mockCommentRepo) FindByThreadID(_ context.Context, threadID string) ([]model.CommentRow, error) {
	if m.findByThreadIDFunc != nil {
		return m.findByThreadIDFunc(threadID)
	}
	return nil, nil
}

func (m *mockCommentRepo) SoftDeleteByID(_ context.Context, id string) error {
	m.softDeleteCalled = true
	if m.softDeleteFunc != nil {
		return m.softDeleteFunc(id)
	}
	return nil
}

// mockReplyRepo mocks repository.ReplyRepository.
type mockReplyRepo struct {
	createFunc         func(reply *model.Reply) error
	findByIDFunc       func(id string) (*model.Reply, error)
	findByThreadIDFunc func(threadID string) ([]model.ReplyRow, error)
	softDeleteFunc     func(id string) error
	createCalled       bool
	softDeleteCalled   bool
}

func (m *mockReplyRepo) Create(_ context.Context, reply *model.Reply) error {
	m.createCalled = true
	if m.createFunc != nil {
		return m.createFunc(reply)
	}
	reply.ID = "reply-123"
	return nil
}

func (m *mockReplyRepo) FindByID(_ context.Context, id string) (*model.Reply, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id)
	}
	return &model.Reply{ID: id}, nil
}

func (m *mockReplyRepo) FindByThreadID(_ context.Context, threadID string) ([]model.ReplyRow, error) {
	if m.findByThreadIDFunc != nil {
		return m.findByThreadIDFunc(threadID)
	}
	return nil, nil
}

func (m *mockReplyRepo) SoftDeleteByID(_ context.Context, id string) error {
	m.softDeleteCalled = true
	if m.softDeleteFunc != nil {
		return m.softDeleteFunc(id)
	}
	return nil
}

// mockLikeRepo mocks repository.LikeRepository.
type mockLikeRepo struct {
	createFunc   func(like *model.Like) error
	findFunc     func(commentID, owner string) (*model.Like, error)
	deleteFunc   func(id string) error
	countFunc    func(commentID string) (int64, error)
	createCalled bool
	deleteCalled bool
	countedIDs   []string
}

func (m *mockLikeRepo) Create(_ context.Context, like *model.Like) error {
	m.createCalled = true
	if m.createFunc != nil {
		return m.createFunc(like)
	}
	like.ID = "like-123"
	return nil
}

func (m *mockLikeRepo) FindByCommentIDAndOwner(_ context.Context, commentID, owner string) (*model.Like, error) {
	if m.findFunc != nil {
		return m.findFunc(commentID, owner)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLikeRepo) DeleteByID(_ context.Context, id string) error {
	m.deleteCalled = true
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

func (m *mockLikeRepo) CountByCommentID(_ context.Context, commentID string) (int64, error) {
	m.countedIDs = append(m.countedIDs, commentID)
	if m.countFunc != nil {
		return m.countFunc(commentID)
	}
	return 0, nil
}

// mockUserRepo mocks repository.UserRepository.
type mockUserRepo struct {
	createFunc         func(user *model.User) error
	findByIDFunc       func(id string) (*model.User, error)
	findByUsernameFunc func(username string) (*model.User, error)
	countFunc          func(username string) (int64, error)
	createCalled       bool
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.createCalled = true
	if m.createFunc != nil {
		return m.createFunc(user)
	}
	user.ID = "user-123"
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id)
	}
	return &model.User{ID: id}, nil
}

func (m *mockUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) CountByUsername(_ context.Context, username string) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(username)
	}
	return 0, nil
}
