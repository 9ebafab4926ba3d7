// Package memory holds the in-memory user store. All state lives for the
// duration of the process; there is no persistence by contract.
package memory

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/techhive/user-api/internal/user"
)

// Store is a concurrency-safe map of users keyed by ID. A process-wide
// atomic counter assigns IDs; the counter only ever increments, so IDs are
// strictly increasing and never reused, even after deletion. The map is
// guarded by an RWMutex: concurrent reads proceed in parallel, writes are
// serialized, and concurrent updates to the same ID resolve as
// last-writer-wins.
type Store struct {
	mu     sync.RWMutex
	users  map[int64]user.User
	nextID atomic.Int64
}

func NewStore() *Store {
	return &Store{
		users: make(map[int64]user.User),
	}
}

// List returns a copy of all users ordered by ascending ID.
func (s *Store) List() []user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]user.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Get(id int64) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

// Insert stores a new user. A zero ID gets the next counter value; a
// pre-assigned ID fails with ErrConflict when it already exists and
// otherwise advances the counter past it so later inserts stay unique.
func (s *Store) Insert(u user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == 0 {
		u.ID = s.nextID.Add(1)
	} else {
		if _, exists := s.users[u.ID]; exists {
			return user.User{}, user.ErrConflict
		}
		for {
			cur := s.nextID.Load()
			if cur >= u.ID || s.nextID.CompareAndSwap(cur, u.ID) {
				break
			}
		}
	}

	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}

	s.users[u.ID] = u
	return u, nil
}

// Update applies mutate to the stored user under the write lock and stamps
// UpdatedAt. The mutation sees and modifies a copy; the copy replaces the
// stored value atomically, so no caller ever aliases store-owned state.
func (s *Store) Update(id int64, mutate func(*user.User)) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}

	mutate(&u)
	u.UpdatedAt = time.Now().UTC()
	s.users[id] = u
	return u, nil
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return user.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// Count reports how many users are currently stored.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Seed installs the two development users before the server accepts
// requests. Fields are deterministic; timestamps are relative to startup.
// Seeded users go through Insert, so they share the ID counter with every
// later create.
func (s *Store) Seed(now time.Time) {
	seedUsers := []user.User{
		{
			FirstName:  "Alice",
			LastName:   "Johnson",
			Email:      "alice.johnson@techhive.io",
			Department: "Engineering",
			Title:      "Senior Developer",
			IsActive:   true,
			CreatedAt:  now.Add(-48 * time.Hour),
		},
		{
			FirstName:  "Bob",
			LastName:   "Smith",
			Email:      "bob.smith@techhive.io",
			Department: "Marketing",
			Title:      "Content Strategist",
			IsActive:   true,
			CreatedAt:  now.Add(-24 * time.Hour),
		},
	}

	for _, u := range seedUsers {
		// Insert cannot conflict here: seeding runs once on an empty store.
		_, _ = s.Insert(u)
	}
}
