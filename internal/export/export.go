// Package export writes blueprint Markdown to files for printing or
// sharing; actual print rendering is left to the host environment.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

// Write saves the raw Markdown of a record under dir (current directory
// when empty) and returns the file path.
func Write(b api.Blueprint, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	name := fmt.Sprintf("blueprint-%s-%s.md",
		sanitize(b.DeviceModel),
		b.CreatedAt.Local().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.Content), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// WriteTo saves the record at an explicit path chosen by the user.
func WriteTo(b api.Blueprint, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	return os.WriteFile(path, []byte(b.Content), 0o644)
}

// sanitize turns a device model into a safe filename fragment.
func sanitize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte('-')
		}
	}
	out := strings.Trim(sb.String(), "-")
	if out == "" {
		out = "blueprint"
	}
	return out
}
