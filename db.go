package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/glebarez/go-sqlite"
)

// statsStore serves the constant statistics out of an in-memory SQLite
// database. It is seeded once and only read afterwards.
type statsStore struct {
	db *sql.DB
}

func openStatsStore(ctx context.Context) (*statsStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open stats db: %w", err)
	}

	// every new connection to :memory: is a fresh, empty database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	store := &statsStore{db: db}
	if err := store.createSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := store.seed(ctx, clubTrophies, trophyTrend.Melt()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *statsStore) Close() error {
	return s.db.Close()
}

func (s *statsStore) createSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
    CREATE TABLE IF NOT EXISTS club_trophies (
        position INTEGER PRIMARY KEY,
        club TEXT NOT NULL,
        trophies INTEGER NOT NULL
    );`)
	if err != nil {
		return fmt.Errorf("create club_trophies: %w", err)
	}

	// Long form of the trend table
	_, err = s.db.ExecContext(ctx, `
    CREATE TABLE IF NOT EXISTS trophy_trends (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        year INTEGER NOT NULL,
        club TEXT NOT NULL,
        trophies INTEGER NOT NULL
    );`)
	if err != nil {
		return fmt.Errorf("create trophy_trends: %w", err)
	}
	return nil
}

func (s *statsStore) seed(ctx context.Context, records []ClubTrophyRecord, points []TrendPoint) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for i, r := range records {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO club_trophies (position, club, trophies) VALUES (?, ?, ?)`,
			i, r.Club, r.Trophies); err != nil {
			return fmt.Errorf("seed club %q: %w", r.Club, err)
		}
	}
	for _, p := range points {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO trophy_trends (year, club, trophies) VALUES (?, ?, ?)`,
			p.Year, p.Club, p.Trophies); err != nil {
			return fmt.Errorf("seed trend %s/%d: %w", p.Club, p.Year, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

// ClubTrophies returns the club table in its original order.
func (s *statsStore) ClubTrophies(ctx context.Context) ([]ClubTrophyRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT club, trophies FROM club_trophies ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query club_trophies: %w", err)
	}
	defer rows.Close()

	var records []ClubTrophyRecord
	for rows.Next() {
		var r ClubTrophyRecord
		if err := rows.Scan(&r.Club, &r.Trophies); err != nil {
			return nil, fmt.Errorf("scan club_trophies: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// TrendPoints returns the long-form trend rows in insertion order.
func (s *statsStore) TrendPoints(ctx context.Context) ([]TrendPoint, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT year, club, trophies FROM trophy_trends ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query trophy_trends: %w", err)
	}
	defer rows.Close()

	var points []TrendPoint
	for rows.Next() {
		var p TrendPoint
		if err := rows.Scan(&p.Year, &p.Club, &p.Trophies); err != nil {
			return nil, fmt.Errorf("scan trophy_trends: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
