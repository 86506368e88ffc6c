// Package admin holds the staff accounts that operate the back office and the
// sessions they authenticate with.
package admin

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tcworld/magadmin/internal/shared/errors"
)

// Role is the authorization role of an admin account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff
}

func (r Role) String() string {
	return string(r)
}

// Password length bounds. bcrypt ignores anything past 72 bytes.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

const MsgDuplicateAccount = "Username or email already exists."

// PasswordHasher hashes and checks admin passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is an admin account.
type User struct {
	id           string
	username     string
	email        string
	firstName    string
	lastName     string
	aadhaar      string
	mobile       string
	role         Role
	passwordHash string
	active       bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// Params carries account fields.
type Params struct {
	ID        string
	Username  string
	Email     string
	FirstName string
	LastName  string
	Aadhaar   string
	Mobile    string
	Role      Role
}

// NewUser builds an active account and hashes its password. An empty role
// defaults to staff.
func NewUser(p Params, password string, hasher PasswordHasher) (*User, error) {
	if p.Role == "" {
		p.Role = RoleStaff
	}

	verrs := errors.NewValidationErrors()
	if strings.TrimSpace(p.Username) == "" {
		verrs.Add("username", errors.MsgBlank)
	}
	if strings.TrimSpace(p.Email) == "" {
		verrs.Add("email", errors.MsgBlank)
	}
	if !p.Role.IsValid() {
		verrs.Add("role", fmt.Sprintf("\"%s\" is not a valid choice.", p.Role))
	}
	CheckPassword(verrs, password)
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u := &User{
		passwordHash: hash,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}
	u.assign(p)
	return u, nil
}

// ReconstructUser rebuilds an account loaded from storage.
func ReconstructUser(p Params, passwordHash string, active bool, lastLogin *time.Time, createdAt, updatedAt time.Time) *User {
	u := &User{
		passwordHash: passwordHash,
		active:       active,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
	u.assign(p)
	return u
}

func (u *User) assign(p Params) {
	u.id = p.ID
	u.username = strings.TrimSpace(p.Username)
	u.email = strings.ToLower(strings.TrimSpace(p.Email))
	u.firstName = strings.TrimSpace(p.FirstName)
	u.lastName = strings.TrimSpace(p.LastName)
	u.aadhaar = strings.TrimSpace(p.Aadhaar)
	u.mobile = strings.TrimSpace(p.Mobile)
	u.role = p.Role
}

func (u *User) ID() string            { return u.id }
func (u *User) Username() string      { return u.username }
func (u *User) Email() string         { return u.email }
func (u *User) FirstName() string     { return u.firstName }
func (u *User) LastName() string      { return u.lastName }
func (u *User) Aadhaar() string       { return u.aadhaar }
func (u *User) Mobile() string        { return u.mobile }
func (u *User) Role() Role            { return u.role }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) IsActive() bool        { return u.active }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

// VerifyPassword checks plain against the stored hash.
func (u *User) VerifyPassword(plain string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("account has no password set")
	}
	if err := hasher.Verify(plain, u.passwordHash); err != nil {
		return fmt.Errorf("invalid password")
	}
	return nil
}

// Rehasher is implemented by hashers that can tell when a stored hash was
// produced with outdated parameters.
type Rehasher interface {
	NeedsRehash(hash string) bool
}

// UpgradePassword rehashes a verified password when the hasher reports the
// stored hash as outdated. It reports whether the hash changed.
func (u *User) UpgradePassword(plain string, hasher PasswordHasher) (bool, error) {
	rh, ok := hasher.(Rehasher)
	if !ok || !rh.NeedsRehash(u.passwordHash) {
		return false, nil
	}
	hash, err := hasher.Hash(plain)
	if err != nil {
		return false, err
	}
	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return true, nil
}

// RecordLogin stamps the last successful login.
func (u *User) RecordLogin(at time.Time) {
	t := at.UTC()
	u.lastLogin = &t
	u.updatedAt = t
}

func (u *User) Deactivate() {
	if !u.active {
		return
	}
	u.active = false
	u.updatedAt = time.Now().UTC()
}

// CheckPassword records a password outside the accepted length bounds.
func CheckPassword(verrs *errors.ValidationErrors, password string) {
	switch {
	case password == "":
		verrs.Add("password", errors.MsgBlank)
	case len(password) < MinPasswordLength:
		verrs.Add("password", fmt.Sprintf("Ensure this field has at least %d characters.", MinPasswordLength))
	case len(password) > MaxPasswordLength:
		verrs.Add("password", fmt.Sprintf("Ensure this field has no more than %d characters.", MaxPasswordLength))
	}
}
