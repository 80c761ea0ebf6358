package service

import (
	"strings"

	"anoa.com/diskusiforum/internal/dto"
	"anoa.com/diskusiforum/internal/model"
	"github.com/microcosm-cc/bluemonday"
)

// Placeholders shown instead of the stored content once a row has been
// soft-deleted. The raw content stays untouched in the database.
const (
	deletedCommentPlaceholder = "**komentar telah dihapus**"
	deletedReplyPlaceholder   = "**balasan telah dihapus**"
)

var contentPolicy = bluemonday.StrictPolicy()

func sanitizeContent(s string) string {
	return strings.TrimSpace(contentPolicy.Sanitize(s))
}

// maskComment projects a raw comment row into its display shape,
// substituting the placeholder when the row is soft-deleted.
func maskComment(row model.CommentRow) dto.CommentResponse {
	content := row.Content
	if row.IsDeleted {
		content = deletedCommentPlaceholder
	}

	return dto.CommentResponse{
		ID:       row.ID,
		Username: row.Username,
		Date:     row.Date,
		Content:  content,
	}
}

// maskReply projects a raw reply row into its display shape. The parent
// foreign key is dropped here; grouping happens before the projection.
func maskReply(row model.ReplyRow) dto.ReplyResponse {
	content := row.Content
	if row.IsDeleted {
		content = deletedReplyPlaceholder
	}

	return dto.ReplyResponse{
		ID:       row.ID,
		Username: row.Username,
		Date:     row.Date,
		Content:  content,
	}
}

// groupReplies nests each reply under its parent comment, keeping both
// sequences in their original fetch order. A comment without replies
// gets an empty slice, never nil.
func groupReplies(comments []model.CommentRow, replies []model.ReplyRow) []dto.CommentResponse {
	byComment := make(map[string][]dto.ReplyResponse)
	for _, reply := range replies {
		byComment[reply.CommentID] = append(byComment[reply.CommentID], maskReply(reply))
	}

	out := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		resp := maskComment(comment)
		if nested, ok := byComment[comment.ID]; ok {
			resp.Replies = nested
		} else {
			resp.Replies = []dto.ReplyResponse{}
		}
		out = append(out, resp)
	}

	return out
}
