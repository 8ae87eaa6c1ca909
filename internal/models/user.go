package models

// The tracker serves exactly two fixed household members. Picking one
// is a selection, not authentication: there is no credential boundary
// between them.
const (
	UserRay = "ray"
	UserBon = "bon"
)

// User describes one of the fixed account identities
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
	Initial     string `json:"initial"`
}

var users = []User{
	{ID: UserRay, DisplayName: "Ray", Avatar: "/cute_girl.png", Initial: "R"},
	{ID: UserBon, DisplayName: "Bon", Avatar: "/bad_boy.jpg", Initial: "B"},
}

// AllUsers returns the fixed user catalog
func AllUsers() []User {
	out := make([]User, len(users))
	copy(out, users)
	return out
}

// LookupUser returns the user with the given id, or false when the id
// is not one of the fixed identities
func LookupUser(id string) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
