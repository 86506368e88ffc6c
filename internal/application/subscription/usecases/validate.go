package usecases

import (
	"context"
	"time"

	"github.com/tcworld/magadmin/internal/application/common"
	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/domain/shared/ref"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/shared/dates"
	"github.com/tcworld/magadmin/internal/shared/errors"
)

// resolver turns submitted ids into resolved references, recording every
// failure on the shared error set.
type resolver struct {
	subscribers subscriber.Repository
	plans       plan.Repository
	refs        reference.Repository
}

func (r resolver) subscriber(ctx context.Context, verrs *errors.ValidationErrors, id string) (ref.Ref[subscriber.Subscriber], error) {
	return common.ResolveRef(ctx, verrs, ref.ID[subscriber.Subscriber](id), r.subscribers.GetByID, "subscriber", subscription.MsgSubscriberNotFound)
}

func (r resolver) plan(ctx context.Context, verrs *errors.ValidationErrors, id string) (ref.Ref[plan.Plan], error) {
	return common.ResolveRef(ctx, verrs, ref.ID[plan.Plan](id), r.plans.GetByID, "subscription_plan", subscription.MsgPlanNotFound)
}

func (r resolver) paymentMode(ctx context.Context, verrs *errors.ValidationErrors, id string) (ref.Ref[reference.Entity], error) {
	return common.ResolveReference(ctx, verrs, r.refs, reference.KindPaymentMode, "payment_mode", id)
}

// parseDate records a malformed date on field. A nil or empty raw value yields nil.
func parseDate(verrs *errors.ValidationErrors, field string, raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, err := dates.ParseOptional(*raw)
	if err != nil {
		verrs.Add(field, subscription.MsgDateFormat)
		return nil
	}
	return t
}

// checkDuplicate records a non-field error when another stored subscription
// of the same subscriber repeats candidate's terms.
func checkDuplicate(ctx context.Context, verrs *errors.ValidationErrors, repo subscription.Repository, candidate *subscription.Subscription) error {
	existing, err := repo.ListBySubscriber(ctx, candidate.Subscriber().ID())
	if err != nil {
		return err
	}
	if subscription.FindDuplicate(candidate, existing) != nil {
		verrs.AddNonField(subscription.MsgDuplicate)
	}
	return nil
}
