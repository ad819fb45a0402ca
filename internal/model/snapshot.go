package model

// SnapshotSchemaVersion identifies the persisted snapshot layout. Bump it
// whenever a field changes shape; loaders discard snapshots written with a
// different version and the store starts from its seed defaults.
const SnapshotSchemaVersion = 1

// Snapshot is the persisted subset of store state: the user directory, the
// active session (by email, empty when anonymous), the session's joined-ad
// set, and the theme preference.
//
// Advertisements and filter/search state are intentionally absent — a fresh
// load always resets the ad list to the built-in seed set and clears
// filters.
type Snapshot struct {
	SchemaVersion int      `json:"schemaVersion"`
	Users         []User   `json:"users"`
	CurrentEmail  string   `json:"currentEmail,omitempty"`
	JoinedAdIDs   []string `json:"joinedAdIds"`
	Theme         Theme    `json:"theme"`
}
