package contact

import (
	"context"

	"go.uber.org/zap"
)

// Sender delivers a validated form.
type Sender interface {
	Submit(ctx context.Context, f Form) error
}

// Result is what the page shows after a submit attempt. Form holds the values
// to re-fill; it is empty only after a confirmed send.
type Result struct {
	Form   Form
	Errors ValidationErrors
	Failed bool
	Sent   bool
}

const FailureNotice = "Sorry, we couldn't send your message. Please try again."

// Service validates forms and hands valid ones to a Sender.
type Service struct {
	sender Sender
	logger *zap.Logger
}

func NewService(sender Sender, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{sender: sender, logger: logger}
}

func (s *Service) Handle(ctx context.Context, f Form) Result {
	if errs := f.Validate(); len(errs) > 0 {
		return Result{Form: f, Errors: errs}
	}
	if err := s.sender.Submit(ctx, f); err != nil {
		s.logger.Warn("contact submission failed", zap.Error(err))
		return Result{Form: f, Failed: true}
	}
	s.logger.Info("contact submission sent")
	return Result{Sent: true}
}
