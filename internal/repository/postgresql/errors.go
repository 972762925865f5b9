package postgresql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

func createQueryError(err error) error {
	return fmt.Errorf("failed to build query: %w", err)
}

func executeQueryError(err error) error {
	return fmt.Errorf("failed to execute query: %w", err)
}

func scanRowError(err error) error {
	return fmt.Errorf("failed to scan row: %w", err)
}

func collectRowsError(err error) error {
	return fmt.Errorf("failed to collect rows: %w", err)
}

// collectOneError maps a missing row to notFound, labelled with what was looked up.
func collectOneError(err error, what string, notFound error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, notFound)
	}
	return collectRowsError(err)
}

// scanOneError is collectOneError for QueryRow scans.
func scanOneError(err error, what string, notFound error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, notFound)
	}
	return scanRowError(err)
}
