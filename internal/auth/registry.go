// Package auth owns the set of chats allowed to trigger downloads.
package auth

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Registry tracks authenticated chats. Chats from the pre-authorized list
// are members immediately after construction and after every Reset; other
// chats join via a successful /auth command. State lives in memory only
// and does not survive a restart.
type Registry struct {
	mu            sync.Mutex
	authenticated map[string]struct{}

	password       string
	preauthChatIDs []string
	adminUserID    string
}

func NewRegistry(password string, preauthChatIDs []string, adminUserID string) *Registry {
	r := &Registry{
		authenticated:  make(map[string]struct{}),
		password:       password,
		preauthChatIDs: preauthChatIDs,
		adminUserID:    adminUserID,
	}
	r.seedPreauthorized()
	return r
}

// Authenticate idempotently marks the chat as authenticated.
func (r *Registry) Authenticate(chatID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authenticated[chatID] = struct{}{}
}

func (r *Registry) IsAuthenticated(chatID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.authenticated[chatID]
	return ok
}

// Reset clears all authenticated chats and re-seeds the pre-authorized
// list. The clear and re-seed happen under one lock so a concurrent
// Authenticate can never interleave with a half-done reset.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authenticated = make(map[string]struct{})
	r.seedLocked()
}

// Required reports whether a shared password is configured. When it is
// not, authorization checks for ordinary actions always succeed.
func (r *Registry) Required() bool {
	return r.password != ""
}

func (r *Registry) CheckPassword(password string) bool {
	return r.Required() && password == r.password
}

// IsAdmin compares the user ID against the configured admin as a string;
// no numeric coercion.
func (r *Registry) IsAdmin(userID string) bool {
	return r.adminUserID != "" && userID == r.adminUserID
}

func (r *Registry) seedPreauthorized() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seedLocked()
}

func (r *Registry) seedLocked() {
	for _, chatID := range r.preauthChatIDs {
		logrus.Debugf("Pre-authenticating chat %q", chatID)
		r.authenticated[chatID] = struct{}{}
	}
}
