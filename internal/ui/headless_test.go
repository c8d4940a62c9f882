package ui

import "testing"

func TestForceHeadlessOverridesDetection(t *testing.T) {
	t.Parallel()

	h := NewHeadlessManager()

	h.ForceHeadless(true)
	if !h.IsHeadless() {
		t.Error("ForceHeadless(true) must report headless regardless of TTY state")
	}

	h.ForceHeadless(false)
	if h.IsHeadless() {
		t.Error("ForceHeadless(false) must report interactive regardless of TTY state")
	}
}
