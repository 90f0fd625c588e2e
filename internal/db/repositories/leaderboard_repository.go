package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

type LeaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// RankedUser is one scored row before per-entry decoration.
type RankedUser struct {
	ID          string
	DisplayName string
	Score       int
	HasApplied  bool
	CreatedAt   time.Time
}

// FetchRanked returns users ordered by the chosen metric. Ties break by
// earliest signup, then id, so rank order is stable across pages.
// since is zero for the all-time window.
func (r *LeaderboardRepository) FetchRanked(ctx context.Context, category string, since time.Time, search string, limit, offset int) ([]RankedUser, int64, error) {
	scoreExpr := "users.points"
	switch category {
	case "badges":
		scoreExpr = "(SELECT COUNT(*) FROM user_badges WHERE user_badges.user_id = users.id)"
	case "referrals":
		scoreExpr = "(SELECT COUNT(*) FROM users u2 WHERE u2.referred_by = users.id)"
	default:
		if !since.IsZero() {
			scoreExpr = "(SELECT COALESCE(SUM(points), 0) FROM point_awards WHERE point_awards.user_id = users.id AND point_awards.created_at >= ?)"
		}
	}

	base := r.db.WithContext(ctx).Model(&gormModels.User{}).Where("users.is_active = ?", true)
	if search != "" {
		base = base.Where("LOWER(users.display_name) LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count leaderboard users: %w", err)
	}

	q := base.Session(&gorm.Session{})
	if !since.IsZero() && category != "badges" && category != "referrals" {
		q = q.Select("users.id, users.display_name, users.has_applied, users.created_at, "+scoreExpr+" AS score", since)
	} else {
		q = q.Select("users.id, users.display_name, users.has_applied, users.created_at, " + scoreExpr + " AS score")
	}

	rows, err := q.Order("score DESC, users.created_at ASC, users.id ASC").
		Limit(limit).Offset(offset).
		Rows()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var ranked []RankedUser
	for rows.Next() {
		var u RankedUser
		if err := rows.Scan(&u.ID, &u.DisplayName, &u.HasApplied, &u.CreatedAt, &u.Score); err != nil {
			return nil, 0, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		ranked = append(ranked, u)
	}

	return ranked, total, rows.Err()
}
