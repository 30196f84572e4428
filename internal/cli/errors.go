package cli

import "fmt"

// HintedError wraps an error with a user-facing recovery hint.
type HintedError struct {
	Err  error
	Hint string
}

func (h *HintedError) Error() string { return h.Err.Error() }
func (h *HintedError) Unwrap() error { return h.Err }

// hintCredentials wraps client-setup failures with the usual fix.
func hintCredentials(err error) error {
	if err == nil {
		return nil
	}
	return &HintedError{
		Err:  fmt.Errorf("setting up generation client: %w", err),
		Hint: "Set PAKNET_API_KEY, or api.key in the config file (see 'paknet config init').",
	}
}
