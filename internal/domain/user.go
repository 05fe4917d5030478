package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the access level of a User.
type Role string

// Known roles.
const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// User is a registered person. Email is the unique key; documents are
// upserted by email.
type User struct {
	ID       primitive.ObjectID `json:"_id,omitempty"      bson:"_id,omitempty"`
	Email    string             `json:"email"              bson:"email"`
	Name     string             `json:"name,omitempty"     bson:"name,omitempty"`
	PhotoURL string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Role     Role               `json:"role"               bson:"role"`
}

// UserProfile is the set of fields a caller may write when upserting a user.
// A nil Role leaves an existing role untouched; new users become students.
type UserProfile struct {
	Name     string
	PhotoURL string
	Role     *Role
}
