package api

import (
	"testing"
	"time"
)

func TestFingerprintDeterministic(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	a := NewBlueprint("id-1", "MX-480", "# Blueprint\nbody", now)
	b := NewBlueprint("id-2", "MX-480", "# Blueprint\nbody", now)

	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("same content should hash the same regardless of ID")
	}
}

func TestFingerprintChangesWithContent(t *testing.T) {
	now := time.Now()
	a := NewBlueprint("id-1", "MX-480", "body A", now)
	b := NewBlueprint("id-1", "MX-480", "body B", now)

	if a.Fingerprint() == b.Fingerprint() {
		t.Fatalf("different content must produce different fingerprints")
	}
}

func TestFingerprintFieldBoundaries(t *testing.T) {
	now := time.Now()
	// Moving bytes across the model/content boundary must change the hash.
	a := NewBlueprint("x", "AB", "C", now)
	b := NewBlueprint("x", "A", "BC", now)

	if a.Fingerprint() == b.Fingerprint() {
		t.Fatalf("field boundary collision")
	}
}
