package usecases

import (
	"context"

	"github.com/tcworld/magadmin/internal/application/subscriber/dto"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/services/markdown"
)

type GetSubscriberUseCase struct {
	repo   subscriber.Repository
	subs   SubscriptionReader
	notes  markdown.Renderer
	logger logger.Interface
}

func NewGetSubscriberUseCase(
	repo subscriber.Repository,
	subs SubscriptionReader,
	notes markdown.Renderer,
	logger logger.Interface,
) *GetSubscriberUseCase {
	return &GetSubscriberUseCase{
		repo:   repo,
		subs:   subs,
		notes:  notes,
		logger: logger,
	}
}

// Execute assembles the subscriber with its subscriptions as stored right now.
func (uc *GetSubscriberUseCase) Execute(ctx context.Context, id string) (*dto.SubscriberDTO, error) {
	s, err := getSubscriber(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	subs, err := uc.subs.ListBySubscriber(ctx, s.ID())
	if err != nil {
		uc.logger.Errorw("failed to load subscriber subscriptions", "id", s.ID(), "error", err)
		return nil, err
	}

	html, err := uc.notes.Render(s.Notes())
	if err != nil {
		uc.logger.Warnw("failed to render subscriber notes", "id", s.ID(), "error", err)
		html = ""
	}

	return dto.ToSubscriberDTO(subscription.ComposeSubscriber(s, subs), html), nil
}
