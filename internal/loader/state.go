// Package loader is the data-loading layer between the API client and
// the presentation code. Each loader owns one asynchronous read (and
// sometimes one write), exposing a snapshot of {loading, error, data}
// that views render from. Failed refreshes keep the last good data
// (stale-but-available); stale completions are discarded via per-loader
// sequence tokens.
package loader

import (
	"sync"

	"github.com/garagehub/garagectl/internal/api"
)

// State is the render snapshot every loader exposes. Loading and Err
// are mutually exclusive per fetch cycle. Data survives a failed
// refresh; HasData distinguishes "never loaded" from "loaded empty".
type State[T any] struct {
	Loading        bool
	Err            string
	Retryable      bool
	SessionExpired bool
	Data           T
	HasData        bool
	Seq            uint64
}

// stateMachine holds a State behind a mutex and enforces the sequence
// rule: only the completion carrying the last issued token may write.
type stateMachine[T any] struct {
	mu     sync.Mutex
	issued uint64
	st     State[T]
}

// begin starts a fetch cycle and returns its sequence token. It flips
// the snapshot to loading and clears any previous error.
func (s *stateMachine[T]) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.st.Loading = true
	s.st.Err = ""
	s.st.Retryable = false
	s.st.SessionExpired = false
	s.st.Seq = s.issued
	return s.issued
}

// succeed installs data for the cycle with the given token. A stale
// token is discarded and succeed reports false.
func (s *stateMachine[T]) succeed(seq uint64, data T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.issued {
		return false
	}
	s.st = State[T]{Data: data, HasData: true, Seq: seq}
	return true
}

// fail records a classified failure for the cycle with the given token,
// keeping the previous data visible. A stale token is discarded.
func (s *stateMachine[T]) fail(seq uint64, c api.Classification) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.issued {
		return false
	}
	s.st.Loading = false
	s.st.Err = c.Message
	s.st.Retryable = c.Retryable
	s.st.SessionExpired = c.SessionExpired
	return true
}

// seed installs data without a fetch cycle, e.g. the cached profile
// shown before the first load completes.
func (s *stateMachine[T]) seed(data T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Data = data
	s.st.HasData = true
}

// snapshot returns a copy of the current state.
func (s *stateMachine[T]) snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st
}
