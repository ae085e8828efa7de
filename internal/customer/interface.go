package customer

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Apply inserts the Org if it is new, otherwise updates exactly the
	// attributes present in input.Fields.
	Apply(ctx context.Context, input ApplyInput) (ApplyOutput, error)
	ListOrgs(ctx context.Context) (ListOrgsOutput, error)
	Detail(ctx context.Context, org string) (DetailOutput, error)
}
