// Package registry holds the in-memory activity rosters.
package registry

import (
	"sync"

	"github.com/mergington/activities/internal/domain"
	"github.com/mergington/activities/internal/logging"
)

// Registry owns the activity map. The set of activities is fixed at
// construction; only participant lists change afterwards.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// New creates a Registry seeded with the school's activity catalog.
func New() *Registry {
	return NewWithActivities(defaultActivities())
}

// NewWithActivities creates a Registry over the given activities.
// The map is taken over by the Registry and must not be used afterwards.
func NewWithActivities(activities map[string]*domain.Activity) *Registry {
	return &Registry{activities: activities}
}

// List returns a deep-copied snapshot of all activities keyed by name.
func (r *Registry) List() map[string]domain.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]domain.Activity, len(r.activities))
	for name, a := range r.activities {
		copied := *a
		copied.Participants = make([]string, len(a.Participants))
		copy(copied.Participants, a.Participants)
		snapshot[name] = copied
	}
	return snapshot
}

// Signup appends email to the named activity's roster.
func (r *Registry) Signup(activity, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activity]
	if !ok {
		return domain.ErrActivityNotFound
	}

	for _, p := range a.Participants {
		if p == email {
			return domain.ErrAlreadySignedUp
		}
	}

	// max_participants is stored but deliberately not enforced here; the
	// original service never checked capacity either.
	a.Participants = append(a.Participants, email)
	logging.WithActivity(activity).Info("Student signed up", "email", email, "participants", len(a.Participants))
	return nil
}

// Unregister removes email from the named activity's roster, keeping the
// relative order of the remaining participants.
func (r *Registry) Unregister(activity, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activity]
	if !ok {
		return domain.ErrActivityNotFound
	}

	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			logging.WithActivity(activity).Info("Student unregistered", "email", email, "participants", len(a.Participants))
			return nil
		}
	}
	return domain.ErrNotSignedUp
}

// Count returns the number of activities in the catalog.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}
