package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("username or email already taken")
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never expose hash in JSON
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Bio          string    `json:"bio"`
	Image        string    `json:"image"`
	Phone        string    `json:"phone"`
	Facebook     string    `json:"facebook"`
	Twitter      string    `json:"twitter"`
	LinkedIn     string    `json:"linkedIn"`
	Instagram    string    `json:"instagram"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile is the public view of a user. Email and the password hash are
// withheld on purpose: this is what GET /profiles/:username returns.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Phone     string `json:"phone"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedIn"`
	Instagram string `json:"instagram"`
	Location  string `json:"location"`
	Username  string `json:"username"`
}

// Listing is the projection returned by GET /users. It keeps id, email and
// timestamps but still never carries the password hash.
type Listing struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	Image     string    `json:"image"`
	Phone     string    `json:"phone"`
	Facebook  string    `json:"facebook"`
	Twitter   string    `json:"twitter"`
	LinkedIn  string    `json:"linkedIn"`
	Instagram string    `json:"instagram"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileUpdate carries the mutable profile fields of PUT /profile.
// Every field is written as-is: an omitted field arrives as the empty string
// and overwrites whatever was stored before. That full-overwrite behavior is
// intentional, matching the platform's update contract.
type ProfileUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
	Phone     string `json:"phone"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedIn"`
	Instagram string `json:"instagram"`
	Location  string `json:"location"`
}

func (u User) Profile() Profile {
	return Profile{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		Image:     u.Image,
		Phone:     u.Phone,
		Facebook:  u.Facebook,
		Twitter:   u.Twitter,
		LinkedIn:  u.LinkedIn,
		Instagram: u.Instagram,
		Location:  u.Location,
		Username:  u.Username,
	}
}
