// Package store implements the in-memory activity registry. It plays the
// repository role: handlers never touch the data directly, they go through
// the service layer which calls into here.
//
// The registry is ephemeral by design. The catalog is seeded once at
// construction and lives for the process lifetime; only participant lists
// are ever mutated. A single RWMutex guards the whole registry so each
// signup/unregister runs its membership check and mutation as one critical
// section.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"sync"

	"github.com/mergington/activities/internal/model"
)

// ErrActivityNotFound is returned when the named activity does not exist.
var ErrActivityNotFound = errors.New("activity not found")

// ErrAlreadySignedUp is returned when the email is already on the roster.
var ErrAlreadySignedUp = errors.New("already signed up")

// ErrNotSignedUp is returned when unregistering an email that is not on the roster.
var ErrNotSignedUp = errors.New("not signed up")

// Store holds the authoritative name → Activity mapping. Seed order is
// retained so list responses are deterministic.
type Store struct {
	mu         sync.RWMutex
	names      []string
	activities map[string]*model.Activity
}

// seedActivity pairs a name with its record for initial catalog loading.
type seedActivity struct {
	name     string
	activity model.Activity
}

func seedCatalog() []seedActivity {
	return []seedActivity{
		{
			name: "Chess Club",
			activity: model.Activity{
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Fridays and Saturdays, 3:30 PM - 5:00 PM",
				MaxParticipants: 12,
				Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
			},
		},
		{
			name: "Programming Class",
			activity: model.Activity{
				Description:     "Learn programming fundamentals and build software projects",
				Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
				MaxParticipants: 20,
				Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
			},
		},
		{
			name: "Gym Class",
			activity: model.Activity{
				Description:     "Physical education and sports activities",
				Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
				MaxParticipants: 30,
				Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
			},
		},
		{
			name: "Art Studio",
			activity: model.Activity{
				Description:     "Painting, drawing, and mixed media projects",
				Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
				MaxParticipants: 15,
				Participants:    []string{"amelia@mergington.edu"},
			},
		},
		{
			name: "Debate Team",
			activity: model.Activity{
				Description:     "Develop public speaking and argumentation skills",
				Schedule:        "Thursdays, 4:00 PM - 5:30 PM",
				MaxParticipants: 16,
				Participants:    []string{},
			},
		},
	}
}

// New constructs a Store seeded with the fixed activity catalog.
func New() *Store {
	s := &Store{activities: make(map[string]*model.Activity)}
	for _, seed := range seedCatalog() {
		a := seed.activity
		s.names = append(s.names, seed.name)
		s.activities[seed.name] = &a
	}
	return s
}

// copyActivity returns a detached copy so callers cannot mutate the registry
// behind the lock. The participant slice is always non-nil so it marshals
// as [] rather than null.
func copyActivity(a *model.Activity) model.Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	return model.Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

// Get returns a copy of the named activity, or ErrActivityNotFound.
func (s *Store) Get(name string) (model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	return copyActivity(a), nil
}

// List returns a point-in-time copy of the whole registry in seed order.
func (s *Store) List() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		names:      make([]string, len(s.names)),
		activities: make(map[string]model.Activity, len(s.activities)),
	}
	copy(snap.names, s.names)
	for name, a := range s.activities {
		snap.activities[name] = copyActivity(a)
	}
	return snap
}

// Signup appends email to the named activity's roster. It fails with
// ErrActivityNotFound for unknown activities and ErrAlreadySignedUp when the
// email is already registered; on failure nothing is mutated.
func (s *Store) Signup(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	for _, p := range a.Participants {
		if p == email {
			return ErrAlreadySignedUp
		}
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister removes one occurrence of email from the named activity's
// roster, preserving the order of the remaining entries. It fails with
// ErrActivityNotFound for unknown activities and ErrNotSignedUp when the
// email is not registered.
func (s *Store) Unregister(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotSignedUp
}

// Snapshot is an immutable view of the registry. It marshals to a JSON
// object whose keys appear in seed order; encoding a plain map would sort
// them alphabetically.
type Snapshot struct {
	names      []string
	activities map[string]model.Activity
}

// Len returns the number of activities in the snapshot.
func (s Snapshot) Len() int { return len(s.names) }

// Names returns the activity names in seed order.
func (s Snapshot) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Activity returns the named activity from the snapshot.
func (s Snapshot) Activity(name string) (model.Activity, bool) {
	a, ok := s.activities[name]
	return a, ok
}

// MarshalJSON encodes the snapshot as an object keyed by activity name,
// keys in seed order.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(s.activities[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
