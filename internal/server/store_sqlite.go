package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// SaveRound writes the round, its per-player rows, and bumps the room
// and player aggregates in a single transaction.
func (s *SQLiteStore) SaveRound(ctx context.Context, rec RoundRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	var winnerID, winnerName sql.NullString
	if rec.HasWinner {
		winnerID = sql.NullString{String: rec.WinnerID, Valid: true}
		winnerName = sql.NullString{String: rec.WinnerName, Valid: true}
	}

	var roundID string
	err = tx.QueryRowContext(ctx, `
		INSERT INTO rounds (room_id, room_title, word, host_id, host_name, completed, has_winner, winner_id, winner_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`, rec.RoomID, rec.RoomTitle, rec.Word, rec.HostID, rec.HostName,
		rec.Completed, rec.HasWinner, winnerID, winnerName).Scan(&roundID)
	if err != nil {
		return fmt.Errorf("inserting round: %w", err)
	}

	for _, p := range rec.Players {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO round_players (round_id, player_id, name, score, won)
			VALUES (?, ?, ?, ?, ?)
		`, roundID, p.PlayerID, p.Name, p.Score, p.Won); err != nil {
			return fmt.Errorf("inserting round player: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO player_stats (room_id, player_id, name, games_played, games_won, total_points)
			VALUES (?, ?, ?, 1, ?, ?)
			ON CONFLICT (room_id, player_id) DO UPDATE SET
				name         = excluded.name,
				games_played = games_played + 1,
				games_won    = games_won + excluded.games_won,
				total_points = total_points + excluded.total_points,
				updated_at   = datetime('now')
		`, rec.RoomID, p.PlayerID, p.Name, boolToInt(p.Won), p.Score); err != nil {
			return fmt.Errorf("upserting player stats: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO room_stats (room_id, room_title, games_played)
		VALUES (?, ?, 1)
		ON CONFLICT (room_id) DO UPDATE SET
			room_title   = excluded.room_title,
			games_played = games_played + 1,
			updated_at   = datetime('now')
	`, rec.RoomID, rec.RoomTitle); err != nil {
		return fmt.Errorf("upserting room stats: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) TopPlayers(ctx context.Context, roomID string, limit int) ([]PlayerStanding, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT player_id, name, games_played, games_won, total_points
		FROM player_stats
		WHERE room_id = ?
		ORDER BY total_points DESC, games_won DESC, name
		LIMIT ?
	`, roomID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	standings := []PlayerStanding{}
	for rows.Next() {
		var p PlayerStanding
		if err := rows.Scan(&p.PlayerID, &p.Name, &p.GamesPlayed, &p.GamesWon, &p.TotalPoints); err != nil {
			return nil, err
		}
		standings = append(standings, p)
	}
	return standings, rows.Err()
}

func (s *SQLiteStore) RecentRounds(ctx context.Context, roomID string, limit int) ([]RoundSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, word, host_name, completed, has_winner, COALESCE(winner_name, ''), created_at
		FROM rounds
		WHERE room_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, roomID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []RoundSummary{}
	for rows.Next() {
		var r RoundSummary
		if err := rows.Scan(&r.ID, &r.Word, &r.HostName, &r.Completed, &r.HasWinner, &r.WinnerName, &r.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, r)
	}
	return summaries, rows.Err()
}

func (s *SQLiteStore) PlayerStats(ctx context.Context, roomID, playerID string) (PlayerStanding, error) {
	var p PlayerStanding
	err := s.db.QueryRowContext(ctx, `
		SELECT player_id, name, games_played, games_won, total_points
		FROM player_stats
		WHERE room_id = ? AND player_id = ?
	`, roomID, playerID).Scan(&p.PlayerID, &p.Name, &p.GamesPlayed, &p.GamesWon, &p.TotalPoints)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	return p, err
}

func (s *SQLiteStore) ListRoomStats(ctx context.Context) ([]RoomStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.room_id, r.room_title, r.games_played,
			(SELECT COUNT(*) FROM player_stats p WHERE p.room_id = r.room_id),
			r.updated_at
		FROM room_stats r
		ORDER BY r.updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []RoomStats{}
	for rows.Next() {
		var rs RoomStats
		if err := rows.Scan(&rs.RoomID, &rs.RoomTitle, &rs.GamesPlayed, &rs.Players, &rs.UpdatedAt); err != nil {
			return nil, err
		}
		stats = append(stats, rs)
	}
	return stats, rows.Err()
}

// ResetRoomStats clears a room's aggregates and round history.
func (s *SQLiteStore) ResetRoomStats(ctx context.Context, roomID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM room_stats WHERE room_id = ?`, roomID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM player_stats WHERE room_id = ?`, roomID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rounds WHERE room_id = ?`, roomID); err != nil {
		return err
	}

	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
