// Package session persists the signed-in user between runs: the current
// profile snapshot plus the bearer token, in one JSON file under the
// user config dir. The Repository interface exists so the loaders can be
// tested against an in-memory store.
package session

import (
	"errors"
	"time"

	"github.com/garagehub/garagectl/internal/domain"
)

// ErrNoSession indicates no user is signed in on this machine.
var ErrNoSession = errors.New("session: not signed in")

// Snapshot is the cached "current user" record.
type Snapshot struct {
	Profile domain.Profile `json:"profile"`
	Token   string         `json:"token"`
	SavedAt time.Time      `json:"saved_at"`
}

// Repository is the persistent current-user slot. Current returns
// ErrNoSession when the slot is empty. Save overwrites the slot;
// last writer wins.
type Repository interface {
	Current() (*Snapshot, error)
	Save(snap *Snapshot) error
	Clear() error
}
