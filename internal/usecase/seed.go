package usecase

import (
	"context"
	"fmt"

	"github.com/carousell/ct-go/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/imagine-ke/imagine-api/internal/models"
	"github.com/imagine-ke/imagine-api/internal/repo"
)

// SeedUsecase populates default reference data on first run.
type SeedUsecase interface {
	SeedContent(ctx context.Context) error
}

type seedUsecase struct {
	store repo.Store
}

func NewSeedUsecase(store repo.Store) SeedUsecase {
	return &seedUsecase{store: store}
}

// SeedContent checks and seeds each reference collection independently, so
// partial seeding is possible and repeat calls are no-ops. The check-then-insert
// has a known race: two concurrent first seeds can both insert the defaults.
// Duplicate default rows are accepted over locking a stateless service.
func (u *seedUsecase) SeedContent(ctx context.Context) error {
	if !u.store.Available() {
		return models.ErrStorageUnavailable
	}
	log := logger.MustNamed("seed")

	count, err := u.store.Count(ctx, models.CollectionMode, bson.M{})
	if err != nil {
		return fmt.Errorf("count modes: %w", err)
	}
	if count == 0 {
		modes, err := DefaultModes()
		if err != nil {
			return err
		}
		for _, mode := range modes {
			if _, err := u.store.Insert(ctx, models.CollectionMode, mode); err != nil {
				return fmt.Errorf("seed mode %q: %w", mode.Key, err)
			}
		}
		log.Infow("seeded default modes", "count", len(modes))
	}

	count, err = u.store.Count(ctx, models.CollectionPricingPlan, bson.M{})
	if err != nil {
		return fmt.Errorf("count pricing plans: %w", err)
	}
	if count == 0 {
		plans, err := DefaultPricingPlans()
		if err != nil {
			return err
		}
		for _, plan := range plans {
			if _, err := u.store.Insert(ctx, models.CollectionPricingPlan, plan); err != nil {
				return fmt.Errorf("seed pricing plan %q: %w", plan.Name, err)
			}
		}
		log.Infow("seeded default pricing plans", "count", len(plans))
	}

	return nil
}
