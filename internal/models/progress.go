package models

// UserProgress holds a user's position in the 6-week cycle plus their
// per-exercise set overrides. One record per Telegram user, created lazily.
type UserProgress struct {
	UserID          int64          `json:"-"`
	CurrentWeek     int            `json:"current_week"` // 1-6
	CurrentDay      *int           `json:"current_day"`  // 1-4, nil until the user picks a day
	SplitConfigured bool           `json:"split_configured"`
	CustomSets      map[string]int `json:"custom_exercise_sets"` // exercise name (lower) -> sets
}

// NewUserProgress returns a fresh default record for a user.
func NewUserProgress(userID int64) *UserProgress {
	return &UserProgress{
		UserID:      userID,
		CurrentWeek: 1,
		CustomSets:  make(map[string]int),
	}
}

// IncrementWeek advances to the next week in the 6-week cycle, wrapping
// week 6 back to week 1.
func (p *UserProgress) IncrementWeek() int {
	p.CurrentWeek = (p.CurrentWeek % 6) + 1
	return p.CurrentWeek
}
