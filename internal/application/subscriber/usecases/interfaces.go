package usecases

import (
	"context"

	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/domain/subscription"
)

// SubscriptionReader loads the subscriptions that make up a subscriber aggregate.
type SubscriptionReader interface {
	ListBySubscriber(ctx context.Context, subscriberID string) ([]*subscription.Subscription, error)
	ListBySubscribers(ctx context.Context, subscriberIDs []string) ([]*subscription.Subscription, error)
}

// LabelRenderer lays report rows out as a printable label sheet.
type LabelRenderer interface {
	Render(rows []subscriber.ReportRow, charLimit int) ([]byte, error)
}

// ReportMailer delivers a rendered label sheet as an attachment.
type ReportMailer interface {
	SendReport(ctx context.Context, to, fileName string, pdf []byte) error
}
