package handlers

import (
	"context"

	admindto "github.com/tcworld/magadmin/internal/application/admin/dto"
	adminuc "github.com/tcworld/magadmin/internal/application/admin/usecases"
	plandto "github.com/tcworld/magadmin/internal/application/plan/dto"
	planuc "github.com/tcworld/magadmin/internal/application/plan/usecases"
	refdto "github.com/tcworld/magadmin/internal/application/reference/dto"
	refuc "github.com/tcworld/magadmin/internal/application/reference/usecases"
	subscriberdto "github.com/tcworld/magadmin/internal/application/subscriber/dto"
	subscriberuc "github.com/tcworld/magadmin/internal/application/subscriber/usecases"
	subdto "github.com/tcworld/magadmin/internal/application/subscription/dto"
	subuc "github.com/tcworld/magadmin/internal/application/subscription/usecases"
	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/domain/reference"
)

// =====================================================================
// Reference use cases
// =====================================================================

type mockCreateReferenceUC struct {
	result *refdto.ReferenceDTO
	err    error
	cmd    refuc.CreateReferenceCommand
}

func (m *mockCreateReferenceUC) Execute(ctx context.Context, cmd refuc.CreateReferenceCommand) (*refdto.ReferenceDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdateReferenceUC struct {
	result *refdto.ReferenceDTO
	err    error
	cmd    refuc.UpdateReferenceCommand
}

func (m *mockUpdateReferenceUC) Execute(ctx context.Context, cmd refuc.UpdateReferenceCommand) (*refdto.ReferenceDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetReferenceUC struct {
	result *refdto.ReferenceDTO
	err    error
}

func (m *mockGetReferenceUC) Execute(ctx context.Context, kind reference.Kind, id string) (*refdto.ReferenceDTO, error) {
	return m.result, m.err
}

type mockListReferencesUC struct {
	result *refuc.ListReferencesResult
	err    error
	query  refuc.ListReferencesQuery
}

func (m *mockListReferencesUC) Execute(ctx context.Context, query refuc.ListReferencesQuery) (*refuc.ListReferencesResult, error) {
	m.query = query
	return m.result, m.err
}

type mockDeleteReferenceUC struct {
	err  error
	kind reference.Kind
	id   string
}

func (m *mockDeleteReferenceUC) Execute(ctx context.Context, kind reference.Kind, id string) error {
	m.kind, m.id = kind, id
	return m.err
}

// =====================================================================
// Plan use cases
// =====================================================================

type mockCreatePlanUC struct {
	result *plandto.PlanDTO
	err    error
	cmd    planuc.CreatePlanCommand
}

func (m *mockCreatePlanUC) Execute(ctx context.Context, cmd planuc.CreatePlanCommand) (*plandto.PlanDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdatePlanUC struct {
	result *plandto.PlanDTO
	err    error
	cmd    planuc.UpdatePlanCommand
}

func (m *mockUpdatePlanUC) Execute(ctx context.Context, cmd planuc.UpdatePlanCommand) (*plandto.PlanDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetPlanUC struct {
	result *plandto.PlanDTO
	err    error
}

func (m *mockGetPlanUC) Execute(ctx context.Context, id string) (*plandto.PlanDTO, error) {
	return m.result, m.err
}

type mockListPlansUC struct {
	result *planuc.ListPlansResult
	err    error
	query  planuc.ListPlansQuery
}

func (m *mockListPlansUC) Execute(ctx context.Context, query planuc.ListPlansQuery) (*planuc.ListPlansResult, error) {
	m.query = query
	return m.result, m.err
}

// mockIDUC serves every use case shaped Execute(ctx, id) error.
type mockIDUC struct {
	err error
	id  string
}

func (m *mockIDUC) Execute(ctx context.Context, id string) error {
	m.id = id
	return m.err
}

// =====================================================================
// Subscriber use cases
// =====================================================================

type mockCreateSubscriberUC struct {
	result *subscriberdto.SubscriberDTO
	err    error
	cmd    subscriberuc.CreateSubscriberCommand
}

func (m *mockCreateSubscriberUC) Execute(ctx context.Context, cmd subscriberuc.CreateSubscriberCommand) (*subscriberdto.SubscriberDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdateSubscriberUC struct {
	result *subscriberdto.SubscriberDTO
	err    error
	cmd    subscriberuc.UpdateSubscriberCommand
}

func (m *mockUpdateSubscriberUC) Execute(ctx context.Context, cmd subscriberuc.UpdateSubscriberCommand) (*subscriberdto.SubscriberDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetSubscriberUC struct {
	result *subscriberdto.SubscriberDTO
	err    error
}

func (m *mockGetSubscriberUC) Execute(ctx context.Context, id string) (*subscriberdto.SubscriberDTO, error) {
	return m.result, m.err
}

type mockListSubscribersUC struct {
	result *subscriberuc.ListSubscribersResult
	err    error
	query  subscriberuc.ListSubscribersQuery
}

func (m *mockListSubscribersUC) Execute(ctx context.Context, query subscriberuc.ListSubscribersQuery) (*subscriberuc.ListSubscribersResult, error) {
	m.query = query
	return m.result, m.err
}

type mockReportUC struct {
	rows      []*subscriberdto.ReportRowDTO
	pdf       []byte
	err       error
	charLimit *int
	mailedTo  string
}

func (m *mockReportUC) Rows(ctx context.Context, charLimit *int) ([]*subscriberdto.ReportRowDTO, error) {
	m.charLimit = charLimit
	return m.rows, m.err
}

func (m *mockReportUC) PDF(ctx context.Context, charLimit *int) ([]byte, error) {
	m.charLimit = charLimit
	return m.pdf, m.err
}

func (m *mockReportUC) SamplePDF(charLimit *int) ([]byte, error) {
	m.charLimit = charLimit
	return m.pdf, m.err
}

func (m *mockReportUC) Email(ctx context.Context, to string, charLimit *int) error {
	m.mailedTo = to
	m.charLimit = charLimit
	return m.err
}

func (m *mockReportUC) FileName() string {
	return "subscriber_labels.pdf"
}

// =====================================================================
// Subscription use cases
// =====================================================================

type mockCreateSubscriptionUC struct {
	result *subdto.SubscriptionDTO
	err    error
	cmd    subuc.CreateSubscriptionCommand
}

func (m *mockCreateSubscriptionUC) Execute(ctx context.Context, cmd subuc.CreateSubscriptionCommand) (*subdto.SubscriptionDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdateSubscriptionUC struct {
	result *subdto.SubscriptionDTO
	err    error
	cmd    subuc.UpdateSubscriptionCommand
}

func (m *mockUpdateSubscriptionUC) Execute(ctx context.Context, cmd subuc.UpdateSubscriptionCommand) (*subdto.SubscriptionDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetSubscriptionUC struct {
	result *subdto.SubscriptionDTO
	err    error
}

func (m *mockGetSubscriptionUC) Execute(ctx context.Context, id string) (*subdto.SubscriptionDTO, error) {
	return m.result, m.err
}

type mockListSubscriptionsUC struct {
	result *subuc.ListSubscriptionsResult
	err    error
	query  subuc.ListSubscriptionsQuery
}

func (m *mockListSubscriptionsUC) Execute(ctx context.Context, query subuc.ListSubscriptionsQuery) (*subuc.ListSubscriptionsResult, error) {
	m.query = query
	return m.result, m.err
}

type mockListBySubscriberUC struct {
	result []*subdto.SubscriptionDTO
	err    error
}

func (m *mockListBySubscriberUC) Execute(ctx context.Context, subscriberID string) ([]*subdto.SubscriptionDTO, error) {
	return m.result, m.err
}

// =====================================================================
// Auth and admin user use cases
// =====================================================================

type mockLoginUC struct {
	result *admindto.LoginResponse
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd adminuc.LoginCommand) (*admindto.LoginResponse, error) {
	return m.result, m.err
}

type mockLogoutUC struct {
	err       error
	principal *admin.Principal
}

func (m *mockLogoutUC) Execute(ctx context.Context, principal *admin.Principal) error {
	m.principal = principal
	return m.err
}

type mockSignupUC struct {
	result *admindto.AdminUserDTO
	err    error
	cmd    adminuc.SignupCommand
}

func (m *mockSignupUC) Execute(ctx context.Context, cmd adminuc.SignupCommand) (*admindto.AdminUserDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetAdminUserUC struct {
	result *admindto.AdminUserDTO
	err    error
}

func (m *mockGetAdminUserUC) Execute(ctx context.Context, id string) (*admindto.AdminUserDTO, error) {
	return m.result, m.err
}

type mockListAdminUsersUC struct {
	result *adminuc.ListAdminUsersResult
	err    error
}

func (m *mockListAdminUsersUC) Execute(ctx context.Context, query adminuc.ListAdminUsersQuery) (*adminuc.ListAdminUsersResult, error) {
	return m.result, m.err
}
