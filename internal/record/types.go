package record

import "time"

// GameRecord is a single bowling game encoded as TOML.
type GameRecord struct {
	GameID   string         `toml:"game"`
	Player   string         `toml:"player,omitempty"`
	Lane     int            `toml:"lane,omitempty"`
	Rolls    []int          `toml:"rolls"`
	Score    int            `toml:"score"`
	Time     string         `toml:"time,omitempty"`
	Metadata map[string]any `toml:"metadata,omitempty"`

	Timestamp time.Time `toml:"-"`
}
