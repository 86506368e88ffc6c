package handlers

import (
	"context"

	"github.com/tcworld/magadmin/internal/application/subscriber/dto"
	"github.com/tcworld/magadmin/internal/application/subscriber/usecases"
)

// Use case interfaces for SubscriberHandler

type createSubscriberUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateSubscriberCommand) (*dto.SubscriberDTO, error)
}

type updateSubscriberUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateSubscriberCommand) (*dto.SubscriberDTO, error)
}

type getSubscriberUseCase interface {
	Execute(ctx context.Context, id string) (*dto.SubscriberDTO, error)
}

type listSubscribersUseCase interface {
	Execute(ctx context.Context, query usecases.ListSubscribersQuery) (*usecases.ListSubscribersResult, error)
}

// subscriberLifecycleUseCase covers both logical delete and activate.
type subscriberLifecycleUseCase interface {
	Execute(ctx context.Context, id string) error
}

type subscriberReportUseCase interface {
	Rows(ctx context.Context, charLimit *int) ([]*dto.ReportRowDTO, error)
	PDF(ctx context.Context, charLimit *int) ([]byte, error)
	SamplePDF(charLimit *int) ([]byte, error)
	Email(ctx context.Context, to string, charLimit *int) error
	FileName() string
}
