// Package directory implements the shared list-plus-create pattern backing
// the user, template and workflow management screens. One generic store
// replaces the near-identical per-screen implementations.
package directory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/errors"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/logger"
)

var validate = validator.New()

// ListFunc fetches the full collection for one resource.
type ListFunc[T any] func(ctx context.Context) ([]T, error)

// CreateFunc submits a new-entity draft and returns the server's copy.
type CreateFunc[T any, D any] func(ctx context.Context, draft D) (*T, error)

// Store holds the latest known list for one resource and mediates creation.
// The server is the sole source of truth: the store never mutates entity
// fields locally, and every successful create triggers a full re-fetch.
type Store[T any, D any] struct {
	name   string
	list   ListFunc[T]
	create CreateFunc[T, D]

	mu     sync.Mutex
	items  []T
	issued uint64 // highest load sequence handed out
}

// NewStore creates a directory store for one resource.
func NewStore[T any, D any](name string, list ListFunc[T], create CreateFunc[T, D]) *Store[T, D] {
	return &Store[T, D]{
		name:   name,
		list:   list,
		create: create,
	}
}

// Load fetches the full list and replaces local state. Each call carries a
// monotonically increasing sequence number; a response that is no longer the
// latest issued is discarded so a slow fetch cannot overwrite a newer one.
func (s *Store[T, D]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	items, err := s.list(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.issued {
		logger.WithComponent("directory").Debug("discarding stale load response",
			"store", s.name, "seq", seq, "latest", s.issued)
		return nil
	}
	s.items = items
	return nil
}

// Create validates the draft, submits it, and on success re-fetches the list
// to resynchronize. On failure local state is unchanged so the operator can
// correct the draft and resubmit.
func (s *Store[T, D]) Create(ctx context.Context, draft D) (*T, error) {
	if err := validate.Struct(draft); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, e := range verrs {
				fields = append(fields, e.Field()+":"+e.Tag())
			}
			return nil, apperrors.NewValidationError(apperrors.ReasonInvalidDraft,
				"invalid "+s.name+" draft", strings.Join(fields, ", "))
		}
		return nil, apperrors.NewValidationError(apperrors.ReasonInvalidDraft,
			"invalid "+s.name+" draft", err.Error())
	}

	created, err := s.create(ctx, draft)
	if err != nil {
		return nil, err
	}

	// No optimistic insert: the next fetch is authoritative even if it
	// were to omit the entity just created.
	if err := s.Load(ctx); err != nil {
		logger.WithComponent("directory").Warn("refresh after create failed",
			"store", s.name, "error", err)
	}
	return created, nil
}

// Items returns a copy of the latest fetched list.
func (s *Store[T, D]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of entities in the latest fetched list.
func (s *Store[T, D]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
