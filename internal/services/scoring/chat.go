package scoring

import (
	"fmt"
	"strings"

	"github.com/nadajinny/AI-Challenge-MVP/internal/domain/models"
	domsvc "github.com/nadajinny/AI-Challenge-MVP/internal/domain/service"
	"github.com/nadajinny/AI-Challenge-MVP/internal/rules"
)

// replyContext carries the caller-owned state a producer may consult.
type replyContext struct {
	last *models.StressResult
}

type replyProducer func(ctx replyContext) string

// ChatResolver maps user text to one canned reply. Intent patterns and
// reply texts are data (rules.ChatRules); only the tip and score intents
// need a producer, because their replies branch on the last stress result.
// A new fixed-reply intent is a pattern entry plus a replies entry.
type ChatResolver struct {
	rules     *rules.Set
	producers map[string]replyProducer
}

func NewChatResolver(rs *rules.Set) *ChatResolver {
	r := &ChatResolver{rules: rs}
	r.producers = map[string]replyProducer{
		rules.IntentTip:   r.tipReply,
		rules.IntentScore: r.scoreReply,
	}
	return r
}

// Reply resolves the first matching intent in rule order. It is total:
// unknown input falls through to the fixed fallback string.
func (r *ChatResolver) Reply(text string, last *models.StressResult) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	ctx := replyContext{last: last}

	for _, intent := range r.rules.Chat.Intents {
		for _, p := range intent.Patterns {
			if p == "" || !strings.Contains(lowered, strings.ToLower(p)) {
				continue
			}
			if produce, ok := r.producers[intent.Name]; ok {
				return produce(ctx)
			}
			if reply := r.rules.Chat.Replies[intent.Name]; reply != "" {
				return reply
			}
		}
	}
	return r.rules.Chat.Fallback
}

func (r *ChatResolver) tipReply(ctx replyContext) string {
	c := r.rules.Chat
	if ctx.last == nil {
		return c.TipNoResult
	}
	switch ctx.last.Category {
	case models.CategoryVeryHigh:
		return c.TipVeryHigh
	case models.CategoryHigh:
		return c.TipHigh
	default:
		return fmt.Sprintf(c.TipTemplate, ctx.last.Category)
	}
}

func (r *ChatResolver) scoreReply(ctx replyContext) string {
	c := r.rules.Chat
	if ctx.last == nil {
		return c.ScoreNoResult
	}
	return fmt.Sprintf(c.ScoreTemplate, ctx.last.Score, ctx.last.Category, ctx.last.Message)
}

var _ domsvc.ChatResolver = (*ChatResolver)(nil)
