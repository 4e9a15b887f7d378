package domain

// DefaultReminderDaysBefore is how far ahead upcoming payments are surfaced.
const DefaultReminderDaysBefore = 3

// UserProfile holds the ledger holder's own details and reminder preferences.
type UserProfile struct {
	UserID               string `json:"userID"`
	Name                 string `json:"name"`
	Email                string `json:"email,omitempty"`
	Phone                string `json:"phone,omitempty"`
	Avatar               string `json:"avatar,omitempty"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	ReminderDaysBefore   int    `json:"reminderDaysBefore"`
}

// NewUserProfile returns a profile with default preferences.
func NewUserProfile(userID, name string) UserProfile {
	return UserProfile{
		UserID:               userID,
		Name:                 name,
		NotificationsEnabled: true,
		ReminderDaysBefore:   DefaultReminderDaysBefore,
	}
}
