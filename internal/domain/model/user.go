package model

// User is the current operator record persisted by the auth gate.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
