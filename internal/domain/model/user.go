package model

// User is the author of a pull request, comment, or review. Only the login
// is consumed; all other GitHub user fields are ignored.
type User struct {
	Login string `json:"login"`
}
