package models

import "time"

// Follow is a directed edge recording that UserID wants AuthorID's posts in
// their personalized feed. The composite unique index guarantees at most one
// edge per ordered pair even under concurrent creation.
type Follow struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_follow_pair" json:"user_id"`
	AuthorID uint `gorm:"not null;uniqueIndex:idx_follow_pair" json:"author_id"`

	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}
