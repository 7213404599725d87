package punctuation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/punctcheck/internal/domain"
	"github.com/heartmarshall/punctcheck/internal/service/punctuation/engine"
	"github.com/heartmarshall/punctcheck/pkg/ctxutil"
)

// ErrNoVisitor is returned when the request context carries no visitor identity.
var ErrNoVisitor = errors.New("punctuation: no visitor in context")

// Check validates the input, consumes one unit of the visitor's daily quota,
// and runs detection and per-line processing over the text. A rejected
// quota returns a *domain.QuotaError before the text is touched.
func (s *Service) Check(ctx context.Context, input CheckInput) (*domain.CheckResult, error) {
	if err := input.Validate(s.maxTextLength); err != nil {
		return nil, err
	}

	visitor, ok := ctxutil.VisitorFromCtx(ctx)
	if !ok {
		return nil, ErrNoVisitor
	}

	usage, err := s.quota.CheckAndConsume(ctx, visitor)
	if err != nil {
		return nil, fmt.Errorf("check quota: %w", err)
	}

	result := engine.Run(engine.Request{
		Text:  input.Text,
		Mode:  input.Mode,
		Style: input.Style,
		Width: input.EffectiveWidth(),
	})
	result.Usage = &usage

	if input.Mode == domain.ModeConvert && len(result.Changes) > 0 {
		diff, err := engine.UnifiedDiff(input.Text, result.Text)
		if err != nil {
			s.log.WarnContext(ctx, "render diff", slog.String("error", err.Error()))
		}
		result.Diff = diff
	}

	s.log.InfoContext(ctx, "punctuation checked",
		slog.String("visitor_id", visitor.ID.String()),
		slog.String("mode", input.Mode.String()),
		slog.String("detected_style", result.Summary.DetectedStyle.String()),
		slog.String("applied_style", result.Summary.AppliedStyle.String()),
		slog.Int("issues", len(result.Issues)),
		slog.Int("changes", result.Summary.TotalChanges),
	)

	return &result, nil
}
