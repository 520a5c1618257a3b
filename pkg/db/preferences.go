package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// SaveUserPreference appends a preference record for a user and returns its ID.
// Preferences are history, not a single value per type - repeated answers
// accumulate and the latest-per-type view is derived on read.
func (db *DB) SaveUserPreference(ctx context.Context, userID, prefType, prefValue string) (int64, error) {
	var id int64
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err := retrier.Do(ctx, func() error {
		query := `
			INSERT INTO user_preferences (user_id, preference_type, preference_value)
			VALUES (?, ?, ?)
		`
		result, err := db.conn.ExecContext(ctx, query, userID, prefType, prefValue)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("insert preference: %w", err)}
		}

		id, err = result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get last insert id: %w", err)}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetUserPreferences retrieves all preference records for a user, newest first
func (db *DB) GetUserPreferences(ctx context.Context, userID string) ([]Preference, error) {
	var prefs []Preference
	query := `
		SELECT * FROM user_preferences
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`
	err := db.conn.SelectContext(ctx, &prefs, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get user preferences: %w", err)
	}
	return prefs, nil
}
