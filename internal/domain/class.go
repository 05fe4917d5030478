package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// ClassStatus tracks the review state of a Class.
type ClassStatus string

// Review states. A class starts pending and is moved to approved or denied
// by an admin; nothing prevents later transitions.
const (
	ClassStatusPending  ClassStatus = "pending"
	ClassStatusApproved ClassStatus = "approved"
	ClassStatusDenied   ClassStatus = "denied"
)

// Valid reports whether s is a known status.
func (s ClassStatus) Valid() bool {
	switch s {
	case ClassStatusPending, ClassStatusApproved, ClassStatusDenied:
		return true
	}
	return false
}

// Class is a listing offered by an instructor.
type Class struct {
	ID              primitive.ObjectID `json:"_id,omitempty"      bson:"_id,omitempty"`
	ClassName       string             `json:"className"          bson:"className"`
	ClassImage      string             `json:"classImage"         bson:"classImage"`
	InstructorName  string             `json:"instructorName"     bson:"instructorName"`
	InstructorEmail string             `json:"instructorEmail"    bson:"instructorEmail"`
	Price           float64            `json:"price"              bson:"price"`
	AvailableSeats  int                `json:"availableSeats"     bson:"availableSeats"`
	TotalEnrolled   int                `json:"totalEnrolled"      bson:"totalEnrolled"`
	Status          ClassStatus        `json:"status"             bson:"status"`
	Feedback        string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
}

// ClassPatch holds the optional fields of a general class update.
// Nil fields are left untouched.
type ClassPatch struct {
	ClassName      *string
	ClassImage     *string
	Price          *float64
	AvailableSeats *int
	Status         *ClassStatus
	Feedback       *string
}

// Empty reports whether the patch changes nothing.
func (p ClassPatch) Empty() bool {
	return p.ClassName == nil &&
		p.ClassImage == nil &&
		p.Price == nil &&
		p.AvailableSeats == nil &&
		p.Status == nil &&
		p.Feedback == nil
}
