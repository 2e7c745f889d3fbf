package model

import "time"

// User is a stored user record.
type User struct {
	UserID    int       `db:"user_id" json:"user_id"`
	FirstName string    `db:"firstname" json:"firstName"`
	LastName  string    `db:"lastname" json:"lastName"`
	Email     string    `db:"email" json:"email"`
	Number    *string   `db:"number" json:"number"`
	Industry  *string   `db:"industry" json:"industry"`
	Message   *string   `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// AllowedFields lists the client-settable fields of a user, in the order
// they are bound into generated statements. user_id and created_at are
// assigned by the store and never accepted from a client.
var AllowedFields = []string{
	"firstName",
	"lastName",
	"email",
	"number",
	"industry",
	"message",
}
