package constants

// Raw SQL for the sqlx-backed points ledger. The ledger is append-only;
// totals live on the users row and are maintained in the same
// transaction as the ledger insert.
const (
	InsertPointAward = `
	INSERT INTO point_awards (id, user_id, points, action, description, created_at)
	VALUES ($1, $2, $3, $4, $5, NOW())
	RETURNING created_at
	`

	IncrementUserPoints = `
	UPDATE users
	SET points = GREATEST(points + $2, 0),
	    updated_at = NOW()
	WHERE id = $1
	RETURNING points
	`

	IncrementUserDonationPoints = `
	UPDATE users
	SET donation_points = GREATEST(donation_points + $2, 0),
	    updated_at = NOW()
	WHERE id = $1
	RETURNING donation_points
	`

	GetUserTotals = `
	SELECT id, points, donation_points FROM users WHERE id = $1
	`

	GetPointAwardsByUser = `
	SELECT id, user_id, points, action, description, created_at
	FROM point_awards
	WHERE user_id = $1
	ORDER BY created_at DESC
	LIMIT $2 OFFSET $3
	`

	SumPointAwardsSince = `
	SELECT COALESCE(SUM(points), 0)
	FROM point_awards
	WHERE user_id = $1 AND created_at >= $2
	`
)
