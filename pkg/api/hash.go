package api

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a deterministic BLAKE3 hash of the record content.
// It covers DeviceModel, Content, and CreatedAt; the ID is excluded so two
// regenerations with identical output hash the same.
func (b Blueprint) Fingerprint() string {
	h := blake3.New()

	// NUL delimiters keep field boundaries unambiguous.
	h.Write([]byte(b.DeviceModel))
	h.Write([]byte{0})

	h.Write([]byte(b.Content))
	h.Write([]byte{0})

	if !b.CreatedAt.IsZero() {
		h.Write([]byte(b.CreatedAt.UTC().Format(timeRFC3339Nano)))
	}

	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}

const timeRFC3339Nano = "2006-01-02T15:04:05.999999999Z07:00"
