package models

import "time"

// User is a directory entry joined with its optional mailing address.
// Users are provisioned by the seed command; the API only reads them.
type User struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`

	// Optional address columns from the LEFT JOIN. Empty means absent.
	Street  string `json:"street,omitempty" validate:"-"`
	State   string `json:"state,omitempty" validate:"-"`
	City    string `json:"city,omitempty" validate:"-"`
	Zipcode string `json:"zipcode,omitempty" validate:"-"`

	// FormattedAddress is derived for display, never stored.
	FormattedAddress string `json:"formattedAddress,omitempty" validate:"-"`
}

// Address holds the optional mailing-address sub-fields of a user.
type Address struct {
	Street  string
	State   string
	City    string
	Zipcode string
}

// Post represents a blog post written by a user.
type Post struct {
	ID        string    `json:"id" validate:"required"`
	UserID    string    `json:"user_id" validate:"required"`
	Title     string    `json:"title" validate:"required,max=150"`
	Body      string    `json:"body" validate:"required,max=1000"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// CreatePostInput is the payload accepted when creating a post.
// The repository assigns the id and creation time.
type CreatePostInput struct {
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}
