package application

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dentalcare360/storefront/internal/domain/entity"
	"github.com/dentalcare360/storefront/internal/domain/repository"
	"github.com/dentalcare360/storefront/pkg/helpers"
)

const (
	keySession = "user"
	keyUsers   = "users"
)

// AccountStore owns the account aggregate: the current session user and the
// durable index of all registered users. The index lives only in storage;
// memory holds just the session user.
//
// Operations that a real deployment would serve from a backend carry a
// configured artificial latency so callers keep the "this may suspend"
// contract. There is no cancellation: an abandoned caller still lets the
// operation run to completion and persist.
type AccountStore struct {
	mu      sync.Mutex
	kv      repository.KVStore
	logger  *logrus.Logger
	latency time.Duration
	user    *entity.User
}

// NewAccountStore hydrates the session user from storage. A missing or
// malformed session record yields guest mode.
func NewAccountStore(ctx context.Context, kv repository.KVStore, logger *logrus.Logger, latency time.Duration) *AccountStore {
	s := &AccountStore{kv: kv, logger: logger, latency: latency}
	if raw, ok := kv.Get(ctx, keySession); ok {
		var u entity.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			if logger != nil {
				logger.WithError(err).Warn("stored session unreadable, starting as guest")
			}
		} else {
			s.user = &u
		}
	}
	return s
}

// ProfileInput carries a partial profile update; empty fields are unchanged.
type ProfileInput struct {
	Name  string
	Email string
	Phone string
}

// AddressInput carries a new address without an identifier.
type AddressInput struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
	IsDefault    bool
}

// Register creates an account and signs it in. The email must not already be
// registered; the match is an exact, case-sensitive comparison. The password
// is accepted for contract compatibility only and is not stored: credential
// handling belongs to the authentication collaborator behind this boundary.
func (s *AccountStore) Register(ctx context.Context, name, email, _ string) (*entity.User, error) {
	s.simulate()
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers(ctx)
	for _, u := range users {
		if u.Email == email {
			return nil, ErrEmailInUse
		}
	}
	u := entity.User{
		ID:        helpers.NewEntityID(),
		Name:      name,
		Email:     email,
		Addresses: []entity.Address{},
		Orders:    []entity.Order{},
	}
	s.user = &u
	if err := s.persistUserLocked(ctx); err != nil {
		return nil, err
	}
	return s.copyUserLocked(), nil
}

// Login signs in the account registered under email. The password is not
// verified here; see Register.
func (s *AccountStore) Login(ctx context.Context, email, _ string) (*entity.User, error) {
	s.simulate()
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.loadUsers(ctx) {
		if u.Email == email {
			s.user = &u
			if err := s.setJSON(ctx, keySession, s.user); err != nil {
				return nil, err
			}
			return s.copyUserLocked(), nil
		}
	}
	return nil, ErrUserNotFound
}

// Logout clears the session user and its persisted record. The users index
// is untouched.
func (s *AccountStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := s.kv.Remove(ctx, keySession); err != nil && s.logger != nil {
		s.logger.WithError(err).Warn("session record removal failed")
	}
}

// CurrentUser returns a copy of the session user, or nil in guest mode.
func (s *AccountStore) CurrentUser() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyUserLocked()
}

// IsAuthenticated reports whether a session user is active.
func (s *AccountStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// UpdateProfile merges non-empty fields into the current user and persists
// both the session record and the users index entry.
func (s *AccountStore) UpdateProfile(ctx context.Context, in ProfileInput) (*entity.User, error) {
	s.simulate()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, ErrNoSession
	}
	if in.Name != "" {
		s.user.Name = in.Name
	}
	if in.Email != "" {
		s.user.Email = in.Email
	}
	if in.Phone != "" {
		s.user.Phone = in.Phone
	}
	if err := s.persistUserLocked(ctx); err != nil {
		return nil, err
	}
	return s.copyUserLocked(), nil
}

// AddAddress appends a fresh-id address to the current user. The first
// address, or one explicitly requesting default status, becomes the single
// default; every other address is forced to non-default in the same step.
func (s *AccountStore) AddAddress(ctx context.Context, in AddressInput) (*entity.Address, error) {
	s.simulate()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, ErrNoSession
	}
	addr := entity.Address{
		ID:           helpers.NewEntityID(),
		Street:       in.Street,
		Number:       in.Number,
		Complement:   in.Complement,
		Neighborhood: in.Neighborhood,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		IsDefault:    in.IsDefault,
	}
	if len(s.user.Addresses) == 0 || addr.IsDefault {
		for i := range s.user.Addresses {
			s.user.Addresses[i].IsDefault = false
		}
		addr.IsDefault = true
	}
	s.user.Addresses = append(s.user.Addresses, addr)
	if err := s.persistUserLocked(ctx); err != nil {
		return nil, err
	}
	out := addr
	return &out, nil
}

// UpdateAddress replaces the matching address by id. A default-flagged update
// demotes every other address; an update clearing the flag is coerced back to
// default when no other address holds it, so a non-empty book always has
// exactly one default.
func (s *AccountStore) UpdateAddress(ctx context.Context, addr entity.Address) error {
	s.simulate()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNoSession
	}
	idx := -1
	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID == addr.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	if addr.IsDefault {
		for i := range s.user.Addresses {
			s.user.Addresses[i].IsDefault = false
		}
	} else {
		otherDefault := false
		for i := range s.user.Addresses {
			if i != idx && s.user.Addresses[i].IsDefault {
				otherDefault = true
				break
			}
		}
		if !otherDefault {
			addr.IsDefault = true
		}
	}
	s.user.Addresses[idx] = addr
	return s.persistUserLocked(ctx)
}

// RemoveAddress deletes the address. Removing the default while others remain
// promotes the first remaining address; an emptied book has no default.
func (s *AccountStore) RemoveAddress(ctx context.Context, addressID string) error {
	s.simulate()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNoSession
	}
	wasDefault := false
	found := false
	kept := s.user.Addresses[:0]
	for _, a := range s.user.Addresses {
		if a.ID == addressID {
			found = true
			wasDefault = a.IsDefault
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return ErrNotFound
	}
	s.user.Addresses = kept
	if wasDefault && len(s.user.Addresses) > 0 {
		for i := range s.user.Addresses {
			s.user.Addresses[i].IsDefault = i == 0
		}
	}
	return s.persistUserLocked(ctx)
}

// SetDefaultAddress makes the given address the single default.
func (s *AccountStore) SetDefaultAddress(ctx context.Context, addressID string) error {
	s.simulate()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNoSession
	}
	found := false
	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID == addressID {
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}
	for i := range s.user.Addresses {
		s.user.Addresses[i].IsDefault = s.user.Addresses[i].ID == addressID
	}
	return s.persistUserLocked(ctx)
}

// AppendOrder attaches the order to the current user's history. This is the
// only path that records orders; it applies no stock or payment checks.
func (s *AccountStore) AppendOrder(ctx context.Context, order entity.Order) error {
	s.simulate()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNoSession
	}
	s.user.Orders = append(s.user.Orders, order)
	return s.persistUserLocked(ctx)
}

// Orders returns a copy of the current user's order history.
func (s *AccountStore) Orders() ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, ErrNoSession
	}
	out := make([]entity.Order, len(s.user.Orders))
	copy(out, s.user.Orders)
	return out, nil
}

// OrderByID returns one order from the current user's history.
func (s *AccountStore) OrderByID(orderID string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, ErrNoSession
	}
	if o := s.user.OrderByID(orderID); o != nil {
		out := *o
		return &out, nil
	}
	return nil, ErrNotFound
}

// simulate models the round-trip a real backend would cost. It always runs
// to completion; the surrounding contract exposes no cancellation.
func (s *AccountStore) simulate() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

// persistUserLocked is the single dual-write path: it replaces (or inserts)
// the session user's entry in the users index and rewrites the session
// record. No caller may perform one of the two writes without the other.
func (s *AccountStore) persistUserLocked(ctx context.Context) error {
	users := s.loadUsers(ctx)
	found := false
	for i := range users {
		if users[i].ID == s.user.ID {
			users[i] = *s.user
			found = true
			break
		}
	}
	if !found {
		users = append(users, *s.user)
	}
	if err := s.setJSON(ctx, keyUsers, users); err != nil {
		return err
	}
	return s.setJSON(ctx, keySession, s.user)
}

// loadUsers reads the users index; a missing or malformed record reads as
// empty.
func (s *AccountStore) loadUsers(ctx context.Context) []entity.User {
	raw, ok := s.kv.Get(ctx, keyUsers)
	if !ok {
		return nil
	}
	var users []entity.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Warn("users index unreadable, treating as empty")
		}
		return nil
	}
	return users
}

func (s *AccountStore) setJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("key", key).Warn("record encode failed")
		}
		return err
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("key", key).Warn("record write failed")
		}
		return err
	}
	return nil
}

func (s *AccountStore) copyUserLocked() *entity.User {
	if s.user == nil {
		return nil
	}
	out := *s.user
	out.Addresses = make([]entity.Address, len(s.user.Addresses))
	copy(out.Addresses, s.user.Addresses)
	out.Orders = make([]entity.Order, len(s.user.Orders))
	copy(out.Orders, s.user.Orders)
	return &out
}
