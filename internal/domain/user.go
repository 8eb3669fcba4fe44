package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// User is a reader's profile, keyed by the auth provider's UID.
type User struct {
	UID            string     `json:"uid"`
	Email          string     `json:"email"`
	DisplayName    string     `json:"display_name"`
	Nickname       string     `json:"nickname"`
	PoliticalScore *int       `json:"political_score"`
	ActivityScore  *int       `json:"activity_score"`
	CreatedAt      time.Time  `json:"created_at"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
}

// UserProfileUpdate carries the optional fields a user may change on their profile.
type UserProfileUpdate struct {
	DisplayName    *string
	Nickname       *string
	PoliticalScore *int
}

// UserDeletion reports what was removed alongside a user.
type UserDeletion struct {
	DeletedScraps int64
	DeletedUser   bool
}

// UserView is a User rendered with its derived affiliation.
type UserView struct {
	User
	Thresholds Thresholds `json:"-"`
}

func (v UserView) MarshalJSON() ([]byte, error) {
	type userJSON User
	out := struct {
		userJSON
		PoliticalAffiliation *Affiliation `json:"political_affiliation"`
	}{userJSON: userJSON(v.User)}

	if v.PoliticalScore != nil {
		affiliation := v.Thresholds.Classify(*v.PoliticalScore)
		out.PoliticalAffiliation = &affiliation
	}

	return json.Marshal(out)
}

// PlaceholderUser builds the profile created when a score is set for an unknown UID.
func PlaceholderUser(uid string, now time.Time) User {
	short := uid
	if len(short) > 8 {
		short = short[:8]
	}

	return User{
		UID:         uid,
		Email:       "user_" + short + "@example.com",
		DisplayName: "user_" + short,
		Nickname:    "user_" + short,
		CreatedAt:   now,
	}
}
