// Package interaction owns the per-user state around the catalog: favorite
// and liked id sets, the ordered playback queue and the item playing now.
//
// A Manager is loaded once from a statestore.Store and writes each changed
// key back before a mutator returns. Persistence failures are logged and
// swallowed; the in-memory state stays authoritative for the session.
// The current item is never persisted.
package interaction
