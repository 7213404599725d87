package punctuation

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/punctcheck/internal/domain"
)

// DefaultMaxTextLength is the maximum number of characters accepted per request.
const DefaultMaxTextLength = 10000

type quotaService interface {
	CheckAndConsume(ctx context.Context, visitor domain.VisitorIdentity) (domain.Usage, error)
}

// Service checks and converts punctuation on behalf of a visitor.
type Service struct {
	quota         quotaService
	maxTextLength int
	log           *slog.Logger
}

// NewService creates a new punctuation service. A non-positive maxTextLength
// falls back to DefaultMaxTextLength.
func NewService(
	log *slog.Logger,
	quota quotaService,
	maxTextLength int,
) *Service {
	if maxTextLength <= 0 {
		maxTextLength = DefaultMaxTextLength
	}
	return &Service{
		quota:         quota,
		maxTextLength: maxTextLength,
		log:           log.With("service", "punctuation"),
	}
}
