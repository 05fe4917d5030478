package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record of a completed charge.
type Payment struct {
	ID          primitive.ObjectID `json:"_id,omitempty"             bson:"_id,omitempty"`
	StudentInfo StudentInfo        `json:"studentInfo"               bson:"studentInfo"`
	ClassID     primitive.ObjectID `json:"classId"                   bson:"classId"`
	// SelectedClassID is nil when the payment was not made from a cart entry.
	SelectedClassID *primitive.ObjectID `json:"selectedClassId,omitempty" bson:"selectedClassId,omitempty"`
	ClassName       string              `json:"className,omitempty"       bson:"className,omitempty"`
	Price           float64             `json:"price"                     bson:"price"`
	TransactionID   string              `json:"transactionId"             bson:"transactionId"`
	Date            time.Time           `json:"date"                      bson:"date"`
}
