package cart

import (
	"errors"
	"fmt"
	"sync"
)

var ErrSave = errors.New("failed to persist cart")

type Outcome string

const (
	OutcomeAdded       Outcome = "added"
	OutcomeIncremented Outcome = "incremented"
	OutcomeSaturated   Outcome = "saturated"
	OutcomeDecremented Outcome = "decremented"
	OutcomeAtMinimum   Outcome = "at_minimum"
	OutcomeRemoved     Outcome = "removed"
	OutcomeMissing     Outcome = "missing"
	OutcomeCleared     Outcome = "cleared"
	OutcomeRejected    Outcome = "rejected"
)

// ChangeFunc observes every new snapshot. It runs synchronously after the
// snapshot has replaced the previous one.
type ChangeFunc func(Cart) error

type Store struct {
	mu       sync.Mutex
	current  Cart
	onChange ChangeFunc
}

type StoreOption func(*Store)

func WithOnChange(fn ChangeFunc) StoreOption {
	return func(s *Store) {
		s.onChange = fn
	}
}

func NewStore(initial Cart, opts ...StoreOption) *Store {
	s := &Store{current: initial.Clone()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Snapshot() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// AddToCart rejects an item without an id: an empty id could be saved but
// never loaded back.
func (s *Store) AddToCart(item Item) (Outcome, error) {
	if item.ID.IsZero() {
		return OutcomeRejected, fmt.Errorf("%w: empty id", ErrInvalidID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, existed := s.current.Find(item.ID)
	next, changed := Add(s.current, item)
	if !changed {
		return OutcomeSaturated, nil
	}
	if existed {
		return OutcomeIncremented, s.commit(next)
	}
	return OutcomeAdded, s.commit(next)
}

func (s *Store) RemoveFromCart(id ItemID) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome := OutcomeRemoved
	if s.current.Index(id) < 0 {
		outcome = OutcomeMissing
	}
	return outcome, s.commit(Remove(s.current, id))
}

func (s *Store) IncreaseQuantity(id ItemID) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome := OutcomeIncremented
	switch e, ok := s.current.Find(id); {
	case !ok:
		outcome = OutcomeMissing
	case e.Quantity >= MaxItems:
		outcome = OutcomeSaturated
	}
	return outcome, s.commit(Increase(s.current, id))
}

func (s *Store) DecreaseQuantity(id ItemID) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome := OutcomeDecremented
	switch e, ok := s.current.Find(id); {
	case !ok:
		outcome = OutcomeMissing
	case e.Quantity <= MinItems:
		outcome = OutcomeAtMinimum
	}
	return outcome, s.commit(Decrease(s.current, id))
}

func (s *Store) ClearCart() (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return OutcomeCleared, s.commit(Clear())
}

// commit replaces the snapshot before notifying, so a failing observer
// never rolls back the in-memory state.
func (s *Store) commit(next Cart) error {
	s.current = next
	if s.onChange == nil {
		return nil
	}
	if err := s.onChange(next.Clone()); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}
