package usecase

import (
	"context"

	"cseboard/internal/customer"
	repo "cseboard/internal/customer/repository"
)

// ListOrgs returns every distinct Org in store order.
func (uc *implUseCase) ListOrgs(ctx context.Context) (customer.ListOrgsOutput, error) {
	orgs, err := uc.repo.ListOrgs(ctx)
	if err != nil {
		uc.metrics.RecordLookup("list", "error")
		uc.l.Errorf(ctx, "uc.ListOrgs ListOrgs: %v", err)
		return customer.ListOrgsOutput{}, &customer.StoreError{Op: "list", Err: err}
	}
	uc.metrics.RecordLookup("list", "ok")
	return customer.ListOrgsOutput{Orgs: orgs}, nil
}

// Detail retrieves the Record for an exact Org match. A missing row yields
// Found == false and a nil error.
func (uc *implUseCase) Detail(ctx context.Context, org string) (customer.DetailOutput, error) {
	var gen uint64
	if uc.cache != nil {
		if rec, ok := uc.cache.Get(org); ok {
			uc.metrics.RecordLookup("detail", "cache_hit")
			return customer.DetailOutput{Record: rec, Found: true}, nil
		}
		gen = uc.generation(org)
	}

	rec, err := uc.repo.GetOneRecord(ctx, repo.GetOneRecordOptions{Org: org})
	if err != nil {
		uc.metrics.RecordLookup("detail", "error")
		uc.l.Errorf(ctx, "uc.Detail GetOneRecord: %v", err)
		return customer.DetailOutput{}, &customer.StoreError{Op: "get", Err: err}
	}
	if rec.Org == "" {
		uc.metrics.RecordLookup("detail", "not_found")
		return customer.DetailOutput{Found: false}, nil
	}

	if uc.cache != nil {
		uc.fill(org, gen, rec)
	}
	uc.metrics.RecordLookup("detail", "found")
	return customer.DetailOutput{Record: rec, Found: true}, nil
}
