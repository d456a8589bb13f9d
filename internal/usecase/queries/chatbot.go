package queries

import (
	"context"
	"strings"

	"salon-reservas/internal/domain/chat"
	"salon-reservas/internal/pkg/errs"
)

var ErrEmptyMessage = errs.New("message cannot be empty")

type ChatQueries interface {
	Reply(ctx context.Context, message string) (string, error)
}

type chatQueriesImpl struct {
	matcher *chat.Matcher
}

func NewChatQueries() ChatQueries {
	return &chatQueriesImpl{
		matcher: chat.NewMatcher(chat.DefaultEntries, chat.DefaultFallback),
	}
}

func (q *chatQueriesImpl) Reply(_ context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	return q.matcher.Reply(message), nil
}
