// Package session owns the storefront's single authentication state. A
// session is either anonymous or holds one user; login and signup simulate a
// network round-trip before they resolve.
package session

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/cleandrop/internal/models"
	"github.com/example/cleandrop/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// ProfileUpdate lists the user fields that may change. Nil fields are kept.
type ProfileUpdate struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`
}

// Outcome is the single result delivered by an async login or signup.
type Outcome struct {
	User models.User
	Err  error
}

// Manager holds the current session. It is safe for concurrent use; the
// simulated latency never runs under the lock.
type Manager struct {
	mu    sync.RWMutex
	user  *models.User
	users []models.User

	delay    Delayer
	notifier Notifier
	now      func() time.Time
	newID    func() string
}

// Option configures a Manager.
type Option func(*Manager)

// WithDelay sets the latency provider.
func WithDelay(d Delayer) Option {
	return func(m *Manager) {
		m.delay = d
	}
}

// WithNotifier sets where transition notices go.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) {
		m.notifier = n
	}
}

// WithClock overrides the clock used for created_at.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithIDGenerator overrides how customer ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(m *Manager) {
		m.newID = newID
	}
}

// NewManager returns an anonymous session over the seeded accounts.
func NewManager(users []models.User, opts ...Option) *Manager {
	m := &Manager{
		users:    append([]models.User(nil), users...),
		delay:    FixedDelay(time.Second),
		notifier: LogNotifier{},
		now:      time.Now,
		newID: func() string {
			return "customer-" + uuid.NewString()
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Login authenticates with a role hint. Admin logins must use the seeded
// admin email; customer logins always succeed. Passwords are not verified.
func (m *Manager) Login(email, password string, role models.Role) (models.User, error) {
	m.delay.Delay()

	email = strings.TrimSpace(email)

	var user models.User
	switch role {
	case models.RoleAdmin:
		admin, ok := m.seededAdmin()
		if !ok || !strings.EqualFold(admin.Email, email) {
			log.Printf("[Session] admin login rejected for %q", email)
			m.notifier.Notify(noticeLoginFailed)
			return models.User{}, ErrInvalidCredentials
		}
		user = admin
	default:
		user = models.User{
			ID:        m.newID(),
			Email:     email,
			Name:      localPart(email),
			Avatar:    models.AvatarURL(email),
			Role:      models.RoleCustomer,
			CreatedAt: m.now().UTC(),
		}
	}

	m.setUser(user)

	if user.IsAdmin() {
		m.notifier.Notify(noticeAdminWelcome)
	} else {
		m.notifier.Notify(noticeCustomerWelcome)
	}
	return user, nil
}

// Signup creates a new customer and makes it the session user, replacing
// any current one. Duplicate emails are accepted.
func (m *Manager) Signup(name, email, password string) (models.User, error) {
	m.delay.Delay()

	user := models.User{
		ID:        m.newID(),
		Email:     strings.TrimSpace(email),
		Name:      strings.TrimSpace(name),
		Avatar:    models.AvatarURL(name),
		Role:      models.RoleCustomer,
		CreatedAt: m.now().UTC(),
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("[Session] password hash skipped for %s: %v", user.ID, err)
	} else {
		user.PasswordHash = hash
	}

	m.setUser(user)
	m.notifier.Notify(noticeAccountCreated)
	return user, nil
}

// LoginAsync runs Login in the background. The channel receives exactly one
// Outcome.
func (m *Manager) LoginAsync(email, password string, role models.Role) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		user, err := m.Login(email, password, role)
		out <- Outcome{User: user, Err: err}
		close(out)
	}()
	return out
}

// SignupAsync runs Signup in the background. The channel receives exactly
// one Outcome.
func (m *Manager) SignupAsync(name, email, password string) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		user, err := m.Signup(name, email, password)
		out <- Outcome{User: user, Err: err}
		close(out)
	}()
	return out
}

// Logout returns the session to anonymous. Logging out while anonymous does
// nothing.
func (m *Manager) Logout() {
	m.mu.Lock()
	wasAuthenticated := m.user != nil
	m.user = nil
	m.mu.Unlock()

	if wasAuthenticated {
		m.notifier.Notify(noticeLoggedOut)
	}
}

// UpdateProfile edits the current user's name, email or avatar. The id and
// role never change.
func (m *Manager) UpdateProfile(update ProfileUpdate) (models.User, error) {
	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		return models.User{}, ErrNotAuthenticated
	}

	if update.Name != nil {
		m.user.Name = *update.Name
	}
	if update.Email != nil {
		m.user.Email = *update.Email
	}
	if update.Avatar != nil {
		m.user.Avatar = *update.Avatar
	}
	updated := *m.user
	m.mu.Unlock()

	m.notifier.Notify(noticeProfileUpdated)
	return updated, nil
}

// CurrentUser returns the session user, if any.
func (m *Manager) CurrentUser() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// Customers returns the seeded customer accounts.
func (m *Manager) Customers() []models.User {
	res := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		if u.Role == models.RoleCustomer {
			res = append(res, u)
		}
	}
	return res
}

// UserByID looks up a seeded account.
func (m *Manager) UserByID(id string) (models.User, bool) {
	for _, u := range m.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (m *Manager) seededAdmin() (models.User, bool) {
	for _, u := range m.users {
		if u.IsAdmin() {
			return u, true
		}
	}
	return models.User{}, false
}

func (m *Manager) setUser(user models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
