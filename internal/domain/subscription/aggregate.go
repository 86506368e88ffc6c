package subscription

import (
	"github.com/tcworld/magadmin/internal/domain/subscriber"
)

// SubscriberAggregate is a subscriber together with the subscriptions that
// point at it, assembled from storage at read time.
type SubscriberAggregate struct {
	Subscriber    *subscriber.Subscriber
	Subscriptions []*Subscription
}

// ComposeSubscriber keeps only the subscriptions referencing s.
func ComposeSubscriber(s *subscriber.Subscriber, subs []*Subscription) *SubscriberAggregate {
	own := make([]*Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub != nil && sub.subscriber.ID() == s.ID() {
			own = append(own, sub)
		}
	}
	return &SubscriberAggregate{Subscriber: s, Subscriptions: own}
}

// HasActiveSubscriptions is derived from the subscriptions, never stored.
func (a *SubscriberAggregate) HasActiveSubscriptions() bool {
	for _, sub := range a.Subscriptions {
		if sub.active {
			return true
		}
	}
	return false
}

// ComposeSubscribers groups subs by subscriber for a page of subscribers.
func ComposeSubscribers(subscribers []*subscriber.Subscriber, subs []*Subscription) []*SubscriberAggregate {
	bySubscriber := make(map[string][]*Subscription, len(subscribers))
	for _, sub := range subs {
		if sub == nil {
			continue
		}
		id := sub.subscriber.ID()
		bySubscriber[id] = append(bySubscriber[id], sub)
	}

	out := make([]*SubscriberAggregate, 0, len(subscribers))
	for _, s := range subscribers {
		own := bySubscriber[s.ID()]
		if own == nil {
			own = []*Subscription{}
		}
		out = append(out, &SubscriberAggregate{Subscriber: s, Subscriptions: own})
	}
	return out
}
