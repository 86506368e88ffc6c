package permission

import (
	"fmt"

	"github.com/tcworld/magadmin/internal/shared/constants"
)

// Resources guarded by the permission middleware.
const (
	ResourceCategory     = "category"
	ResourceType         = "type"
	ResourceLanguage     = "language"
	ResourceMode         = "mode"
	ResourcePaymentMode  = "payment_mode"
	ResourcePlan         = "subscription_plan"
	ResourceSubscriber   = "subscriber"
	ResourceSubscription = "subscription"
	ResourceReport       = "report"
	ResourceAdminUser    = "admin_user"
)

// Actions guarded by the permission middleware.
const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionSend   = "send"
)

// DefaultPolicies grants admins everything. Staff read everything except
// admin accounts and maintain subscribers and subscriptions.
func DefaultPolicies() [][]string {
	policies := [][]string{
		{constants.RoleAdmin, "*", "*"},
		{constants.RoleStaff, ResourceSubscriber, ActionCreate},
		{constants.RoleStaff, ResourceSubscriber, ActionUpdate},
		{constants.RoleStaff, ResourceSubscription, ActionCreate},
		{constants.RoleStaff, ResourceSubscription, ActionUpdate},
		{constants.RoleStaff, ResourceReport, ActionSend},
	}
	for _, resource := range []string{
		ResourceCategory, ResourceType, ResourceLanguage, ResourceMode, ResourcePaymentMode,
		ResourcePlan, ResourceSubscriber, ResourceSubscription, ResourceReport,
	} {
		policies = append(policies, []string{constants.RoleStaff, resource, ActionRead})
	}
	return policies
}

// InitPolicies stores the default policies. Policies already present are kept.
func (e *Enforcer) InitPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, policy := range DefaultPolicies() {
		if _, err := e.enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	e.logger.Info("permissions initialized successfully")
	return nil
}
