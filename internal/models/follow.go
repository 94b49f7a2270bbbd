package models

import "time"

// Follow is a directed edge: FollowerID follows FollowingID.
// The primary key is a composite of (FollowerID, FollowingID) to ensure uniqueness.
type Follow struct {
	FollowerID  string `gorm:"primaryKey;size:64"`
	FollowingID string `gorm:"primaryKey;size:64;index"`
	CreatedAt   time.Time

	// Define foreign key relationships
	Follower  *Profile `gorm:"foreignKey:FollowerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Following *Profile `gorm:"foreignKey:FollowingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
