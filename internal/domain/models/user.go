package models

// User is an authenticated identity. ID is the immutable login identifier,
// normalized to lowercase at registration. Name is the mutable display name
// and keeps the original casing the user registered with.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
