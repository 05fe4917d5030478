package domain

// StudentInfo identifies the student a cart item or payment belongs to.
// Linkage to users is by copied email, not by reference.
type StudentInfo struct {
	Email string `json:"email"          bson:"email"`
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
}
