// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// RepositoryFactory hands out repository instances bound to one transaction.
// Implementations are created per Execute call by the TransactionManager.
type RepositoryFactory interface {
	UserRepo() UserRepository
	AreaRepo() AreaRepository
	ResidentRepo() ResidentRepository
}

// TransactionManager runs a unit of work inside a single storage transaction.
// Check-then-act sequences (email/name uniqueness, referential checks
// followed by an insert) run through Execute so they commit or roll back as
// one.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
