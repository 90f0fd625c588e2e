package gorm

import "time"

// ChecklistItem is the catalog of background-preparation documents.
type ChecklistItem struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Required    bool      `gorm:"column:required;default:true"`
	SortOrder   int       `gorm:"column:sort_order"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ChecklistItem) TableName() string {
	return "checklist_items"
}

// UserChecklistProgress marks a document as checked for a user. The
// unique index doubles as the once-per-document award guard: the row
// survives unchecking, so re-checking never pays out twice.
type UserChecklistProgress struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID        string    `gorm:"column:user_id;type:uuid;uniqueIndex:idx_user_item"`
	ItemID        string    `gorm:"column:item_id;uniqueIndex:idx_user_item"`
	Checked       bool      `gorm:"column:checked;default:true"`
	PointsAwarded bool      `gorm:"column:points_awarded;default:false"`
	CheckedAt     time.Time `gorm:"column:checked_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (UserChecklistProgress) TableName() string {
	return "user_checklist_progress"
}
