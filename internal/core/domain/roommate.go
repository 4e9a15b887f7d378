package domain

// PointsPerLevel is how many points separate two levels.
const PointsPerLevel = 100

// BadgeID identifies an achievement.
type BadgeID string

const (
	BadgePlantWhisperer BadgeID = "plant-whisperer"
	BadgeEarlyBird      BadgeID = "early-bird"
	BadgeStreakMaster   BadgeID = "streak-master"
	BadgeCleanFreak     BadgeID = "clean-freak"
	BadgeTeamPlayer     BadgeID = "team-player"
	BadgeNewbie         BadgeID = "newbie"
)

// BadgeInfo is the display metadata for a badge.
type BadgeInfo struct {
	ID          BadgeID `json:"id"`
	Emoji       string  `json:"emoji"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
}

// Badges lists the display metadata for every known badge.
var Badges = map[BadgeID]BadgeInfo{
	BadgePlantWhisperer: {ID: BadgePlantWhisperer, Emoji: "🌿", Label: "Plant Whisperer", Description: "Completed 3+ plant chores"},
	BadgeEarlyBird:      {ID: BadgeEarlyBird, Emoji: "🌅", Label: "Early Bird", Description: "5 chores done early"},
	BadgeStreakMaster:   {ID: BadgeStreakMaster, Emoji: "🔥", Label: "Streak Master", Description: "7-day completion streak"},
	BadgeCleanFreak:     {ID: BadgeCleanFreak, Emoji: "✨", Label: "Clean Freak", Description: "Master of cleanliness"},
	BadgeTeamPlayer:     {ID: BadgeTeamPlayer, Emoji: "🤝", Label: "Team Player", Description: "Helps teammates often"},
	BadgeNewbie:         {ID: BadgeNewbie, Emoji: "🌟", Label: "Newbie", Description: "Welcome aboard!"},
}

// LookupBadge returns the display metadata, falling back to the raw id.
func LookupBadge(id BadgeID) BadgeInfo {
	if info, ok := Badges[id]; ok {
		return info
	}
	return BadgeInfo{ID: id, Emoji: "🏆", Label: string(id)}
}

// Roommate is a household member who earns points for chores.
type Roommate struct {
	RoommateID  string    `json:"roommateID"`
	Name        string    `json:"name"`
	Avatar      string    `json:"avatar"`
	Color       string    `json:"color"`
	Level       int       `json:"level"`
	TotalPoints int       `json:"totalPoints"`
	Badges      []BadgeID `json:"badges"`
}

// HasBadge reports whether the badge is already unlocked.
func (r Roommate) HasBadge(id BadgeID) bool {
	for _, b := range r.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// LevelFor derives a level from a point total.
func LevelFor(totalPoints int) int {
	if totalPoints < 0 {
		return 1
	}
	return totalPoints/PointsPerLevel + 1
}

// PointsToNextLevel is the remaining distance to the next level boundary.
func (r Roommate) PointsToNextLevel() int {
	return r.Level*PointsPerLevel - r.TotalPoints
}

// LevelProgress is the percentage (0-99) of the way through the current level.
func (r Roommate) LevelProgress() int {
	if r.TotalPoints < 0 {
		return 0
	}
	return r.TotalPoints % PointsPerLevel
}
