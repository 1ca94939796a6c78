package model

import "time"

// GameState stores one game as its versioned snapshot blob. The version
// column backs optimistic concurrency; the snapshot's own version field
// covers wire-format evolution.
type GameState struct {
	GameID    string `gorm:"primaryKey;column:game_id"`
	Snapshot  []byte `gorm:"column:snapshot"`
	Version   int64  `gorm:"column:version"`
	UpdatedAt time.Time
}

func (GameState) TableName() string { return "game_states" }

// NewsEvent is one emitted news item, append-only.
type NewsEvent struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	GameID   string  `gorm:"column:game_id;index"`
	ItemID   string  `gorm:"column:item_id"`
	Category string  `gorm:"column:category"`
	Priority int     `gorm:"column:priority"`
	Day      float64 `gorm:"column:day"`
	Text     string  `gorm:"column:text"`
	Action   []byte  `gorm:"column:action"`
}

func (NewsEvent) TableName() string { return "news_events" }
