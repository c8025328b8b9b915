package ports

import "go.trai.ch/cookbook/internal/core/domain"

// EntryStore holds cookbook entries keyed by name.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type EntryStore interface {
	// Put stores a new entry. It fails with domain.ErrDuplicateName if the name
	// is taken and leaves the store unchanged on any error.
	Put(entry domain.Entry) error

	// Get returns the entry stored under name.
	Get(name string) (domain.Entry, bool)

	// List returns all entries in insertion order.
	List() []domain.Entry

	// Len returns the number of stored entries.
	Len() int
}
