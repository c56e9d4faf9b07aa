package profiles

import "time"

// Profile is a user's settings row, keyed by the managed-auth user ID. The
// server never creates accounts; a profile springs into existence on first
// write.
type Profile struct {
	UserID              string    `json:"userId"`
	Name                string    `json:"name"`
	AvatarURL           string    `json:"avatarUrl"`
	TrustedContactName  string    `json:"trustedContactName"`
	TrustedContactPhone string    `json:"trustedContactPhone"`
	NotificationEvents  bool      `json:"notificationEvents"`
	NotificationVillage bool      `json:"notificationVillage"`
	NotificationPush    bool      `json:"notificationPush"`
	DarkMode            bool      `json:"darkMode"`
	DataVisibility      string    `json:"dataVisibility"`
	CommunityID         string    `json:"communityId"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// UpdateInput carries partial identity fields; nil keeps the stored value.
type UpdateInput struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

// SettingsInput carries partial settings; nil keeps the stored value.
type SettingsInput struct {
	NotificationEvents  *bool   `json:"notificationEvents"`
	NotificationVillage *bool   `json:"notificationVillage"`
	NotificationPush    *bool   `json:"notificationPush"`
	DarkMode            *bool   `json:"darkMode"`
	DataVisibility      *string `json:"dataVisibility"`
}

type TrustedContactInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ProfileResult struct {
	Source  string   `json:"source"`
	Profile *Profile `json:"profile"`
}
