package user

// Preferences are per-user display settings, created with defaults at
// registration.
type Preferences struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
}

// User is the stored record, keyed by email in the repository. The
// password never leaves this package; handlers only return Profile views.
type User struct {
	ID          int
	Email       string
	Password    string
	Name        string
	CreatedAt   string
	Preferences Preferences
}

// Profile is the redacted view of a user. Preferences are only included
// on the profile endpoint.
type Profile struct {
	ID          int          `json:"id"`
	Email       string       `json:"email"`
	Name        string       `json:"name"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// Profile returns the redacted view without preferences.
func (u User) Profile() Profile {
	return Profile{ID: u.ID, Email: u.Email, Name: u.Name}
}

// FullProfile returns the redacted view including preferences.
func (u User) FullProfile() Profile {
	p := u.Profile()
	prefs := u.Preferences
	p.Preferences = &prefs
	return p
}
