// Package statestore persists small opaque values (favorites, likes and the
// playback queue) under string keys.
//
// Three backends share the Store interface: SQLiteStore keeps a single kv
// table in a WAL database, FileStore writes one JSON file per key guarded by a
// cross-process lock, and MemoryStore backs tests. Writes are atomic per key;
// no backend offers multi-key transactions.
package statestore
