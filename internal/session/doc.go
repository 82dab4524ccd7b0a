// Package session owns the per-session state files under the sessions
// directory.
//
// # Session Lifecycle
//
// 1. Start: when a hook fires for a new session:
//   - The assistant-issued session id is adopted when the payload
//     carries one; otherwise an identifier is generated
//     (unix-millisecond timestamp plus a short random component)
//   - A record is written to sessions/<id>.json
//
// 2. During: hooks may re-save the record any number of times. The
// housekeeping core only relies on the file's existence and
// modification time; the record contents belong to the hooks.
//
// 3. End: the record gets a closing timestamp and the cross-session
// memory document is updated by the caller.
//
// 4. Retention: CleanOld prunes the directory on every hook
// invocation. It keeps at most a fixed number of files ranked by
// modification time and drops anything older than the age limit.
// Files that do not follow the <id>.json naming convention are never
// touched.
//
// Concurrent hook processes may race on the directory. That is
// tolerated rather than locked against: deletes swallow not-found
// errors and reads fall back to defaults.
package session
