package statestore

import "context"

// BumpSchemaVersionForTest rewrites the recorded schema version.
func BumpSchemaVersionForTest(s *SQLiteStore, version int) error {
	_, err := s.db.ExecContext(context.Background(), "UPDATE schema_version SET version = ?", version)
	return err
}
