package usecases

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/shared/errors"
)

type memoryAdminRepository struct {
	mu        sync.Mutex
	users     map[string]*admin.User
	updateErr error
}

func newMemoryAdminRepository() *memoryAdminRepository {
	return &memoryAdminRepository{users: make(map[string]*admin.User)}
}

func (r *memoryAdminRepository) Create(_ context.Context, u *admin.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID()]; ok {
		return fmt.Errorf("UNIQUE constraint failed: admin_users.id")
	}
	r.users[u.ID()] = u
	return nil
}

func (r *memoryAdminRepository) GetByID(_ context.Context, id string) (*admin.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *memoryAdminRepository) GetByUsername(_ context.Context, username string) (*admin.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memoryAdminRepository) Update(_ context.Context, u *admin.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID()] = u
	return nil
}

func (r *memoryAdminRepository) List(_ context.Context, filter admin.ListFilter) ([]*admin.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*admin.User
	for _, u := range r.users {
		if filter.Role != "" && u.Role().String() != filter.Role {
			continue
		}
		if filter.Search != "" && !strings.Contains(u.Username(), filter.Search) {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username() < out[j].Username() })
	return out, int64(len(out)), nil
}

func (r *memoryAdminRepository) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username() == username || u.Email() == email {
			return true, nil
		}
	}
	return false, nil
}

// prefixHasher stores "hashed:" + password so tests stay fast.
type prefixHasher struct{}

func (prefixHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (prefixHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*admin.Session
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]*admin.Session)}
}

func (s *memorySessionStore) Save(_ context.Context, session *admin.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, id string) (*admin.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id], nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok, nil
}

// plainTokenIssuer encodes claims as "adminID|sessionID".
type plainTokenIssuer struct{}

func (plainTokenIssuer) Issue(session *admin.Session) (string, error) {
	return session.AdminID + "|" + session.ID, nil
}

func (plainTokenIssuer) Parse(token string) (*admin.TokenClaims, error) {
	if token == "expired" {
		return nil, errors.NewTokenExpiredError("token")
	}
	parts := strings.Split(token, "|")
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed token")
	}
	return &admin.TokenClaims{AdminID: parts[0], SessionID: parts[1], ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func seedAdmin(repo *memoryAdminRepository, username, password string, role admin.Role) *admin.User {
	u, err := admin.NewUser(admin.Params{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	}, password, prefixHasher{})
	if err != nil {
		panic(err)
	}
	repo.users[u.ID()] = u
	return u
}

// upgradingHasher accepts prefixHasher output but hashes with a newer prefix.
type upgradingHasher struct{}

func (upgradingHasher) Hash(password string) (string, error) {
	return "hashed2:" + password, nil
}

func (upgradingHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password && hash != "hashed2:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

func (upgradingHasher) NeedsRehash(hash string) bool {
	return !strings.HasPrefix(hash, "hashed2:")
}
