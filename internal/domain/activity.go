package domain

// Activity is one extracurricular offering with its roster.
// Participants keeps insertion order and holds each email at most once.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivityService is the roster surface consumed by the HTTP layer.
// Authentication is not its concern; handlers gate mutations behind a
// valid teacher session before calling Signup or Unregister.
type ActivityService interface {
	// List returns a deep-copied snapshot of every activity keyed by name.
	List() map[string]Activity

	// Signup appends email to the activity's roster.
	// Returns ErrActivityNotFound or ErrAlreadySignedUp on failure.
	Signup(activity, email string) error

	// Unregister removes email from the activity's roster, preserving the
	// relative order of the remaining participants.
	// Returns ErrActivityNotFound or ErrNotSignedUp on failure.
	Unregister(activity, email string) error
}
