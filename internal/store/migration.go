package store

import (
	"database/sql"
	"fmt"
)

const currentSchemaVersion = 2

// RunMigrations applies any pending database migrations.
func (s *Store) RunMigrations() error {
	version, err := s.getSchemaVersion()
	if err != nil {
		return err
	}

	if version < 2 {
		if err := s.migrateToV2(); err != nil {
			return fmt.Errorf("migration to v2 failed: %w", err)
		}
	}

	return nil
}

// getSchemaVersion returns the current schema version, 1 if not set.
func (s *Store) getSchemaVersion() (int, error) {
	var tableName string
	err := s.db.QueryRow(`
		SELECT name FROM sqlite_master
		WHERE type='table' AND name='radikal_schema_version'
	`).Scan(&tableName)

	if err == sql.ErrNoRows {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	var version int
	err = s.db.QueryRow("SELECT COALESCE(MAX(version), 1) FROM radikal_schema_version").Scan(&version)
	if err != nil {
		return 1, nil
	}

	return version, nil
}

// migrateToV2 rewrites the saved camera config from the legacy field names
// ("distance"/"height") to the current ones. LoadDocument tolerates either
// form; the migration just keeps old decks from carrying the legacy names
// forever.
func (s *Store) migrateToV2() error {
	raw, err := s.GetValue(KeyCamera)
	if err != nil {
		return err
	}
	if raw != "" {
		cam, err := mergeCamera([]byte(raw))
		if err == nil {
			if err := s.SaveCamera(cam); err != nil {
				return err
			}
		}
		// A malformed saved camera is left alone; LoadDocument falls back
		// to defaults for it.
	}

	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO radikal_schema_version (version) VALUES (?)",
		currentSchemaVersion,
	)
	return err
}
