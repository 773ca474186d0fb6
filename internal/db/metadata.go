//-------------------------------------------------------------------------
//
// pgEdge Trade Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pgEdge/pgedge-tradegen/internal/logging"
	"github.com/pgEdge/pgedge-tradegen/pkg/version"
)

// MetadataTable records how the current data set was produced.
const MetadataTable = "tradegen_metadata"

const createMetadataTableSQL = `
CREATE TABLE IF NOT EXISTS tradegen_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// RunInfo describes a completed generation run.
type RunInfo struct {
	App         string
	Seed        uint64
	Records     int
	GeneratedAt time.Time
}

// SaveMetadata records info about a completed run, replacing any previous
// values.
func SaveMetadata(ctx context.Context, conn DB, info RunInfo) error {
	if _, err := conn.Exec(ctx, createMetadataTableSQL); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	metadata := map[string]string{
		"app":          info.App,
		"version":      version.Short(),
		"seed":         strconv.FormatUint(info.Seed, 10),
		"records":      strconv.Itoa(info.Records),
		"generated_at": info.GeneratedAt.UTC().Format(time.RFC3339),
	}

	for key, value := range metadata {
		_, err := conn.Exec(ctx, `
            INSERT INTO tradegen_metadata (key, value) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        `, key, value)
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().
		Str("app", info.App).
		Uint64("seed", info.Seed).
		Msg("Saved metadata")

	return nil
}

// GetMetadataValue retrieves a single metadata value by key.
func GetMetadataValue(ctx context.Context, conn DB, key string) (string, error) {
	var value string
	err := conn.QueryRow(ctx, `
        SELECT value FROM tradegen_metadata WHERE key = $1
    `, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// GetAllMetadata retrieves all metadata as a map.
func GetAllMetadata(ctx context.Context, conn DB) (map[string]string, error) {
	rows, err := conn.Query(ctx, `SELECT key, value FROM tradegen_metadata`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metadata := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		metadata[key] = value
	}

	return metadata, rows.Err()
}

// DropMetadata drops the metadata table.
func DropMetadata(ctx context.Context, conn DB) error {
	_, err := conn.Exec(ctx, "DROP TABLE IF EXISTS "+pgx.Identifier{MetadataTable}.Sanitize())
	return err
}

// MetadataExists checks if the metadata table exists.
func MetadataExists(ctx context.Context, conn DB) (bool, error) {
	var exists bool
	err := conn.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT FROM information_schema.tables
            WHERE table_name = $1
        )
    `, MetadataTable).Scan(&exists)
	return exists, err
}
