// Package rules holds the guard predicates checked before any catalog
// mutation. Each predicate issues at most one read-only store query and either
// returns nil or a domain business error.
package rules

import "context"

// EntityLookup is the read-only slice of a repository the rules need.
type EntityLookup interface {
	ExistsByID(ctx context.Context, id int) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByNameAndIDNot(ctx context.Context, name string, id int) (bool, error)
}
