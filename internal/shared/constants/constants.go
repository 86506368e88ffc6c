package constants

const (
	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypePDF  = "application/pdf"

	// Context keys
	ContextKeyAdminID   = "admin_id"
	ContextKeyRole      = "role"
	ContextKeySessionID = "session_id"
	ContextKeyPrincipal = "principal"
	ContextKeyRequestID = "request_id"

	// Roles
	RoleAdmin = "admin"
	RoleStaff = "staff"

	// Database table names
	TableCategories    = "categories"
	TableTypes         = "subscriber_types"
	TableLanguages     = "languages"
	TableModes         = "modes"
	TablePaymentModes  = "payment_modes"
	TablePlans         = "subscription_plans"
	TableSubscribers   = "magazine_subscribers"
	TableSubscriptions = "subscriptions"
	TableAdminUsers    = "admin_users"

	// Date wire format
	DateLayout = "2006-01-02"

	// Report
	DefaultReportCharLimit = 42

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgForbidden           = "You do not have permission to perform this action."
)
