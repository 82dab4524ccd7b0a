package session

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh session identifier: the unix-millisecond
// timestamp joined with twelve hex characters of randomness. The time
// component keeps directory listings chronological; the random
// component rules out collisions between calls in the same
// millisecond. No I/O and no shared state.
func NewID() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), random)
}

// A session identifier is either the NewID form or an assistant-issued
// UUID. Both forms name files retention is allowed to reclaim, so every
// record Save writes stays prunable.
const idPattern = `\d+-[0-9a-f]{12}|[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`

var (
	sessionID = regexp.MustCompile(`^(?:` + idPattern + `)$`)

	// sessionFileName matches the files Save produces. Retention only
	// ever considers matching files; anything else in the sessions
	// directory is left alone.
	sessionFileName = regexp.MustCompile(`^(?:` + idPattern + `)\.json$`)
)

// IsID reports whether id is usable as a session identifier.
func IsID(id string) bool {
	return sessionID.MatchString(id)
}

// IsSessionFile reports whether name follows the session file naming
// convention.
func IsSessionFile(name string) bool {
	return sessionFileName.MatchString(name)
}
