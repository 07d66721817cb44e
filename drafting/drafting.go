// Package drafting turns a few keywords into a work log description using a
// hosted text-generation model. It never fails its caller: problems come
// back as a fixed, human-readable placeholder in place of the draft.
package drafting

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	NotConfiguredText = "API key not configured. Please set the API_KEY environment variable."
	FailedText        = "An error occurred while generating the description. Please try again."
)

const promptTemplate = `Based on the following keywords, write a professional, concise, and clear work log entry. The entry should be a single sentence or a short paragraph. Keywords: "%s"`

// Completer is a single-shot text completion.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Drafter is what the entry form depends on.
type Drafter interface {
	Draft(ctx context.Context, keywords string) string
}

// Service drafts descriptions through a Completer. A nil Completer means no
// credential was configured.
type Service struct {
	completer Completer
	logger    *zap.Logger
}

var _ Drafter = (*Service)(nil)

func NewService(completer Completer, logger *zap.Logger) *Service {
	return &Service{completer: completer, logger: logger}
}

// Prompt is the instruction sent for keywords.
func Prompt(keywords string) string {
	return fmt.Sprintf(promptTemplate, keywords)
}

// Draft returns the trimmed completion for keywords. An unconfigured
// service yields NotConfiguredText, blank keywords yield "" without a call,
// and a failed call yields FailedText.
func (s *Service) Draft(ctx context.Context, keywords string) string {
	if s.completer == nil {
		return NotConfiguredText
	}
	if strings.TrimSpace(keywords) == "" {
		return ""
	}

	text, err := s.completer.Complete(ctx, Prompt(keywords))
	if err != nil {
		s.logger.Error("Error generating description", zap.Error(err))
		return FailedText
	}
	return strings.TrimSpace(text)
}
