package cli

import "github.com/google/uuid"

// newRunToken returns a UUIDv7 correlating the log lines of one CLI
// invocation. UUIDv7 embeds a timestamp in the most significant bits, so
// tokens from successive runs sort by creation time.
//
// Panics if UUID generation fails (should never happen in practice).
func newRunToken() string {
	return uuid.Must(uuid.NewV7()).String()
}
