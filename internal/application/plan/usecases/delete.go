package usecases

import (
	"context"
	"fmt"

	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/shared/db"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type DeletePlanUseCase struct {
	planRepo plan.Repository
	subs     SubscriptionCounter
	tx       db.Transactor
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo plan.Repository, subs SubscriptionCounter, tx db.Transactor, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		subs:     subs,
		tx:       tx,
		logger:   logger,
	}
}

// Execute deletes a plan no subscription references. The reference count and
// the delete run in one transaction.
func (uc *DeletePlanUseCase) Execute(ctx context.Context, id string) error {
	if _, err := getPlan(ctx, uc.planRepo, id); err != nil {
		return err
	}

	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		n, err := uc.subs.CountByPlanID(ctx, id)
		if err != nil {
			uc.logger.Errorw("failed to count plan subscriptions", "id", id, "error", err)
			return err
		}
		if n > 0 {
			return errors.NewConflictError(
				"Plan is still referenced by subscriptions.",
				fmt.Sprintf("%d subscription(s) use plan %s", n, id),
			)
		}

		if err := uc.planRepo.Delete(ctx, id); err != nil {
			uc.logger.Errorw("failed to delete plan", "id", id, "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("plan deleted", "id", id)
	return nil
}
