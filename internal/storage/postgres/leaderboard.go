package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/lutefd/skyblock-facade/internal/domain/leaderboard"
)

// ReplacePlayerProfiles swaps every stored row of a player for the given
// ones, so profiles the player left or deleted drop off the leaderboard.
func (s *Store) ReplacePlayerProfiles(ctx context.Context, playerUUID uuid.UUID, rows []leaderboard.Entry) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM profile_weights WHERE player_uuid = $1`, playerUUID); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := tx.Exec(ctx, `
			INSERT INTO profile_weights (
				player_uuid, profile_id, username, profile_name, weight, weight_overflow, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7)
			ON CONFLICT (profile_id, player_uuid)
			DO UPDATE SET
				username = EXCLUDED.username,
				profile_name = EXCLUDED.profile_name,
				weight = EXCLUDED.weight,
				weight_overflow = EXCLUDED.weight_overflow,
				updated_at = EXCLUDED.updated_at
		`, playerUUID, row.ProfileID, row.Username, row.ProfileName, row.Weight, row.Overflow, row.UpdatedAt); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *Store) ListLeaderboard(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	limit = leaderboard.ClampLimit(limit)

	rows, err := s.pool.Query(ctx, `
		SELECT player_uuid, profile_id, username, profile_name, weight, weight_overflow, updated_at
		FROM profile_weights
		ORDER BY weight + weight_overflow DESC, updated_at ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]leaderboard.Entry, 0, limit)
	for rows.Next() {
		var v leaderboard.Entry
		if err := rows.Scan(&v.PlayerUUID, &v.ProfileID, &v.Username, &v.ProfileName, &v.Weight, &v.Overflow, &v.UpdatedAt); err != nil {
			return nil, err
		}
		v.Rank = len(items) + 1
		items = append(items, v)
	}
	return items, rows.Err()
}
