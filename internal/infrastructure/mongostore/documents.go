// Package mongostore implements the domain repositories on MongoDB.
package mongostore

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/domain/shared/ref"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/models"
	"github.com/tcworld/magadmin/internal/shared/constants"
)

// Collection names match the relational table names.
const (
	CollectionPlans         = constants.TablePlans
	CollectionSubscribers   = constants.TableSubscribers
	CollectionSubscriptions = constants.TableSubscriptions
	CollectionAdminUsers    = constants.TableAdminUsers
)

func referenceCollection(kind reference.Kind) string {
	return models.ReferenceTable(kind)
}

type referenceDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func toReferenceDocument(e *reference.Entity) referenceDocument {
	return referenceDocument{ID: e.ID(), Name: e.Name(), CreatedAt: e.CreatedAt(), UpdatedAt: e.UpdatedAt()}
}

func (d referenceDocument) entity(kind reference.Kind) *reference.Entity {
	return reference.ReconstructEntity(kind, d.ID, d.Name, d.CreatedAt, d.UpdatedAt)
}

type planDocument struct {
	ID               string          `bson:"_id"`
	Version          string          `bson:"version"`
	Name             string          `bson:"name,omitempty"`
	StartDate        *time.Time      `bson:"start_date,omitempty"`
	Price            bson.Decimal128 `bson:"subscription_price"`
	LanguageID       string          `bson:"subscription_language"`
	ModeID           string          `bson:"subscription_mode"`
	DurationInMonths int             `bson:"duration_in_months"`
	CreatedAt        time.Time       `bson:"created_at"`
	UpdatedAt        time.Time       `bson:"updated_at"`
}

func toPlanDocument(p *plan.Plan) (planDocument, error) {
	price, err := bson.ParseDecimal128(p.Price().String())
	if err != nil {
		return planDocument{}, fmt.Errorf("failed to encode price %s: %w", p.Price(), err)
	}
	return planDocument{
		ID:               p.ID(),
		Version:          p.Version(),
		Name:             p.Name(),
		StartDate:        p.StartDate(),
		Price:            price,
		LanguageID:       p.LanguageID(),
		ModeID:           p.ModeID(),
		DurationInMonths: p.DurationInMonths(),
		CreatedAt:        p.CreatedAt(),
		UpdatedAt:        p.UpdatedAt(),
	}, nil
}

func (d planDocument) entity() (*plan.Plan, error) {
	price, err := decimal.NewFromString(d.Price.String())
	if err != nil {
		return nil, fmt.Errorf("failed to decode price of plan %s: %w", d.ID, err)
	}
	return plan.ReconstructPlan(plan.Params{
		ID:               d.ID,
		Version:          d.Version,
		Name:             d.Name,
		StartDate:        utcPtr(d.StartDate),
		Price:            price,
		LanguageID:       d.LanguageID,
		ModeID:           d.ModeID,
		DurationInMonths: d.DurationInMonths,
	}, d.CreatedAt, d.UpdatedAt), nil
}

type subscriberDocument struct {
	ID                 string    `bson:"_id"`
	Name               string    `bson:"name"`
	RegistrationNumber string    `bson:"registration_number"`
	Address            string    `bson:"address"`
	CityTown           string    `bson:"city_town"`
	District           string    `bson:"district"`
	State              string    `bson:"state"`
	Pincode            string    `bson:"pincode"`
	Phone              string    `bson:"phone"`
	Email              string    `bson:"email"`
	CategoryID         string    `bson:"category"`
	TypeID             string    `bson:"stype"`
	Notes              string    `bson:"notes"`
	IsDeleted          bool      `bson:"isDeleted"`
	CreatedAt          time.Time `bson:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at"`
}

func toSubscriberDocument(s *subscriber.Subscriber) subscriberDocument {
	return subscriberDocument{
		ID:                 s.ID(),
		Name:               s.Name(),
		RegistrationNumber: s.RegistrationNumber(),
		Address:            s.Address(),
		CityTown:           s.CityTown(),
		District:           s.District(),
		State:              s.State(),
		Pincode:            s.Pincode(),
		Phone:              s.Phone(),
		Email:              s.Email(),
		CategoryID:         s.CategoryID(),
		TypeID:             s.TypeID(),
		Notes:              s.Notes(),
		IsDeleted:          s.IsDeleted(),
		CreatedAt:          s.CreatedAt(),
		UpdatedAt:          s.UpdatedAt(),
	}
}

func (d subscriberDocument) entity() *subscriber.Subscriber {
	return subscriber.ReconstructSubscriber(subscriber.Params{
		ID:                 d.ID,
		Name:               d.Name,
		RegistrationNumber: d.RegistrationNumber,
		Address:            d.Address,
		CityTown:           d.CityTown,
		District:           d.District,
		State:              d.State,
		Pincode:            d.Pincode,
		Phone:              d.Phone,
		Email:              d.Email,
		CategoryID:         d.CategoryID,
		TypeID:             d.TypeID,
		Notes:              d.Notes,
	}, d.IsDeleted, d.CreatedAt, d.UpdatedAt)
}

type subscriptionDocument struct {
	ID            string     `bson:"_id"`
	SubscriberID  string     `bson:"subscriber"`
	PlanID        string     `bson:"subscription_plan"`
	PaymentModeID string     `bson:"payment_mode"`
	StartDate     time.Time  `bson:"start_date"`
	EndDate       *time.Time `bson:"end_date,omitempty"`
	PaymentStatus string     `bson:"payment_status"`
	Active        bool       `bson:"active"`
	CreatedAt     time.Time  `bson:"created_at"`
	UpdatedAt     time.Time  `bson:"updated_at"`
}

func toSubscriptionDocument(s *subscription.Subscription) subscriptionDocument {
	return subscriptionDocument{
		ID:            s.ID(),
		SubscriberID:  s.Subscriber().ID(),
		PlanID:        s.Plan().ID(),
		PaymentModeID: s.PaymentMode().ID(),
		StartDate:     s.StartDate(),
		EndDate:       s.EndDate(),
		PaymentStatus: s.PaymentStatus(),
		Active:        s.IsActive(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
}

func (d subscriptionDocument) entity() *subscription.Subscription {
	return subscription.ReconstructSubscription(subscription.Params{
		ID:            d.ID,
		Subscriber:    ref.ID[subscriber.Subscriber](d.SubscriberID),
		Plan:          ref.ID[plan.Plan](d.PlanID),
		PaymentMode:   ref.ID[reference.Entity](d.PaymentModeID),
		StartDate:     d.StartDate.UTC(),
		EndDate:       utcPtr(d.EndDate),
		PaymentStatus: d.PaymentStatus,
		Active:        d.Active,
	}, d.CreatedAt, d.UpdatedAt)
}

type adminUserDocument struct {
	ID           string     `bson:"_id"`
	Username     string     `bson:"username"`
	Email        string     `bson:"email"`
	FirstName    string     `bson:"first_name"`
	LastName     string     `bson:"last_name"`
	Aadhaar      string     `bson:"aadhaar"`
	Mobile       string     `bson:"mobile"`
	Role         string     `bson:"role"`
	PasswordHash string     `bson:"password_hash"`
	Active       bool       `bson:"active"`
	LastLogin    *time.Time `bson:"last_login,omitempty"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at"`
}

func toAdminUserDocument(u *admin.User) adminUserDocument {
	return adminUserDocument{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Aadhaar:      u.Aadhaar(),
		Mobile:       u.Mobile(),
		Role:         u.Role().String(),
		PasswordHash: u.PasswordHash(),
		Active:       u.IsActive(),
		LastLogin:    u.LastLogin(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func (d adminUserDocument) entity() *admin.User {
	return admin.ReconstructUser(admin.Params{
		ID:        d.ID,
		Username:  d.Username,
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Aadhaar:   d.Aadhaar,
		Mobile:    d.Mobile,
		Role:      admin.Role(d.Role),
	}, d.PasswordHash, d.Active, utcPtr(d.LastLogin), d.CreatedAt, d.UpdatedAt)
}

// BSON datetimes decode in local time.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
