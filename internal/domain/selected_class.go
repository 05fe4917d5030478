package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// SelectedClass is a cart item: a class a student intends to pay for.
// The referenced class is not checked for existence or free seats.
type SelectedClass struct {
	ID              primitive.ObjectID `json:"_id,omitempty"             bson:"_id,omitempty"`
	ClassID         primitive.ObjectID `json:"classId"                   bson:"classId"`
	ClassName       string             `json:"className"                 bson:"className"`
	ClassImage      string             `json:"classImage,omitempty"      bson:"classImage,omitempty"`
	InstructorName  string             `json:"instructorName,omitempty"  bson:"instructorName,omitempty"`
	InstructorEmail string             `json:"instructorEmail,omitempty" bson:"instructorEmail,omitempty"`
	Price           float64            `json:"price"                     bson:"price"`
	StudentInfo     StudentInfo        `json:"studentInfo"               bson:"studentInfo"`
}
