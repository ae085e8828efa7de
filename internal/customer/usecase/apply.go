package usecase

import (
	"context"
	"strings"

	"cseboard/internal/customer"
	repo "cseboard/internal/customer/repository"
	"cseboard/pkg/metrics"
)

// Apply inserts a new Record when the Org is unknown, otherwise updates
// exactly the attributes present in input.Fields. One existence read and one
// write per call.
func (uc *implUseCase) Apply(ctx context.Context, input customer.ApplyInput) (customer.ApplyOutput, error) {
	org := strings.TrimSpace(input.Org)
	if org == "" {
		uc.reject(ctx, input.Org, customer.ErrMissingOrg)
		return customer.ApplyOutput{}, customer.ErrMissingOrg
	}

	cols := input.Fields.Effective()
	if len(cols) == 0 {
		uc.reject(ctx, org, customer.ErrNoFields)
		return customer.ApplyOutput{}, customer.ErrNoFields
	}

	exists, err := uc.repo.Exists(ctx, org)
	if err != nil {
		return customer.ApplyOutput{}, uc.fail(ctx, org, "exists", err)
	}

	if !exists {
		if err := uc.repo.InsertRecord(ctx, repo.InsertRecordOptions{Org: org, Columns: cols}); err != nil {
			return customer.ApplyOutput{}, uc.fail(ctx, org, "insert", err)
		}
		uc.invalidate(org)
		uc.metrics.RecordUpsert(metrics.OutcomeInserted)
		uc.l.Infof(ctx, "New Org %s inserted successfully (%s)", org, columnNames(cols))
		return customer.ApplyOutput{Created: true}, nil
	}

	if err := uc.repo.UpdateRecord(ctx, repo.UpdateRecordOptions{Org: org, Columns: cols}); err != nil {
		return customer.ApplyOutput{}, uc.fail(ctx, org, "update", err)
	}
	uc.invalidate(org)
	uc.metrics.RecordUpsert(metrics.OutcomeUpdated)
	uc.l.Infof(ctx, "Org %s updated successfully (%s)", org, columnNames(cols))
	return customer.ApplyOutput{Created: false}, nil
}

func (uc *implUseCase) reject(ctx context.Context, org string, err error) {
	uc.metrics.RecordUpsert(metrics.OutcomeRejected)
	uc.l.Warnf(ctx, "Org %q update rejected: %v", org, err)
}

func (uc *implUseCase) fail(ctx context.Context, org, op string, err error) error {
	uc.metrics.RecordUpsert(metrics.OutcomeFailed)
	uc.l.Errorf(ctx, "Error saving/updating Org %s: %v", org, err)
	return &customer.StoreError{Op: op, Err: err}
}
