package schema

const (
	ProfileCollection = "profile"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Profile - user profile document, keyed by account ID
type Profile struct {
	ID          string `bson:"id" json:"id"`
	Email       string `bson:"email" json:"email"`
	DisplayName string `bson:"display_name" json:"display_name"`
	Age         int    `bson:"age,omitempty" json:"age,omitempty"`
	Theme       string `bson:"theme,omitempty" json:"theme,omitempty"`
}
