package db_models

import "github.com/lib/pq"

// PlanDraft is an itinerary being edited. Snapshot holds the JSON encoded
// planner state; the other columns are denormalized for listing.
type PlanDraft struct {
	BaseModel
	UserID        int64 `gorm:"index;not null"`
	ItineraryID   int64 `gorm:"index"` // set when editing a persisted itinerary
	Title         string
	DestinationID int64
	ActivityIDs   pq.Int64Array `gorm:"type:bigint[]"`
	Revision      int64         `gorm:"not null;default:0"`
	Snapshot      []byte        `gorm:"type:jsonb;not null"`
}

func (PlanDraft) TableName() string { return "plan_drafts" }
