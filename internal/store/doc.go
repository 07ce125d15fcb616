// Package store persists timeline snapshots in a local SQLite database so a
// feed can be shown immediately on the next start, before the first page
// arrives from the instance.
package store
