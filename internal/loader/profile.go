package loader

import (
	"context"
	"log/slog"
	"sync"

	"github.com/garagehub/garagectl/internal/api"
	"github.com/garagehub/garagectl/internal/domain"
	"github.com/garagehub/garagectl/internal/notify"
	"github.com/garagehub/garagectl/internal/session"
)

// ProfileAPI is the slice of the API client the profile loader needs.
type ProfileAPI interface {
	Profile(ctx context.Context) (map[string]any, error)
	UpdateProfile(ctx context.Context, fields map[string]any) (map[string]any, error)
}

// loadPhase is the one-shot latch for the initial profile fetch.
type loadPhase int

const (
	phaseNotStarted loadPhase = iota
	phaseLoading
	phaseLoaded
	phaseFailed
)

// ProfileLoader manages the current user's profile: a load that runs at
// most once per process (a failure re-arms it), a save that validates
// locally and merges the server's response, and the session cache kept
// in sync after every successful read or write.
type ProfileLoader struct {
	sm     stateMachine[domain.Profile]
	client ProfileAPI
	repo   session.Repository
	toast  notify.Notifier

	phaseMu sync.Mutex
	phase   loadPhase

	saveMu sync.Mutex
}

// NewProfileLoader creates a ProfileLoader seeded from the session
// cache, so a previously seen profile renders before the first fetch
// completes.
func NewProfileLoader(client ProfileAPI, repo session.Repository, toast notify.Notifier) *ProfileLoader {
	l := &ProfileLoader{client: client, repo: repo, toast: toast}
	if snap, err := repo.Current(); err == nil && snap.Profile.UserID != "" {
		l.sm.seed(snap.Profile)
	}
	return l
}

// Load fetches the profile at most once. Calls while a load is in
// flight or already complete are no-ops with no network traffic. A
// failed load re-arms the latch so Retry can re-attempt.
func (l *ProfileLoader) Load(ctx context.Context) error {
	l.phaseMu.Lock()
	if l.phase == phaseLoading || l.phase == phaseLoaded {
		l.phaseMu.Unlock()
		return nil
	}
	l.phase = phaseLoading
	l.phaseMu.Unlock()

	seq := l.sm.begin()

	raw, err := l.client.Profile(ctx)
	if err != nil {
		l.setPhase(phaseFailed)
		l.sm.fail(seq, api.Classify(err))
		return err
	}

	profile := domain.NormalizeProfile(raw)
	l.setPhase(phaseLoaded)
	if l.sm.succeed(seq, profile) {
		l.persist(profile)
	}
	return nil
}

// Retry re-attempts a failed load. Identical contract to Load.
func (l *ProfileLoader) Retry(ctx context.Context) error {
	return l.Load(ctx)
}

// Save submits edited profile fields. A missing user id is a terminal
// validation error surfaced before any network call. Saves are
// serialized; the server's response is merged over local state and
// persisted to the session cache. Failures are surfaced and returned so
// the caller can keep the edit form open.
func (l *ProfileLoader) Save(ctx context.Context, edited domain.Profile) error {
	if edited.UserID == "" {
		l.toast.Error(MsgMissingUserID)
		return &ValidationError{Message: MsgMissingUserID}
	}

	l.saveMu.Lock()
	defer l.saveMu.Unlock()

	fields := map[string]any{
		"user_id":   edited.UserID,
		"full_name": edited.FullName,
		"email":     edited.Email,
		"phone":     edited.Phone,
		"address":   edited.Address,
	}
	if edited.Avatar != "" {
		fields["avatar"] = edited.Avatar
	}

	raw, err := l.client.UpdateProfile(ctx, fields)
	if err != nil {
		l.toast.Error(api.Classify(err).Message)
		return err
	}

	merged := edited.Merge(domain.NormalizeProfile(raw))
	l.sm.seed(merged)
	l.persist(merged)
	l.toast.Success("Profile updated.")
	return nil
}

// Snapshot returns the current render state.
func (l *ProfileLoader) Snapshot() State[domain.Profile] {
	return l.sm.snapshot()
}

func (l *ProfileLoader) setPhase(p loadPhase) {
	l.phaseMu.Lock()
	l.phase = p
	l.phaseMu.Unlock()
}

// persist rewrites the session cache, keeping the existing token. Cache
// write failures are logged, not surfaced: the in-memory state is
// already correct.
func (l *ProfileLoader) persist(profile domain.Profile) {
	snap, err := l.repo.Current()
	if err != nil {
		snap = &session.Snapshot{}
	}
	snap.Profile = profile
	if err := l.repo.Save(snap); err != nil {
		slog.Warn("persist profile to session cache", "error", err)
	}
}
