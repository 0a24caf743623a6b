package models

import "time"

// MaxLives is the maximum number of lives a profile can hold
const MaxLives = 5

// MaxFrogStage is the final growth stage of the frog
const MaxFrogStage = 4

// Profile represents a user's gameplay profile
type Profile struct {
	UserID        int        `json:"userId"`
	XP            int        `json:"xp"`
	Level         int        `json:"level"`
	Lives         int        `json:"lives"`
	FrogStage     int        `json:"frogStage"`
	LastFrogVisit *time.Time `json:"lastFrogVisit,omitempty"`
}

// LevelForXP computes the level derived from an XP total.
// Level is never stored out of sync with XP; every write recomputes it.
func LevelForXP(xp int) int {
	return xp/100 + 1
}
