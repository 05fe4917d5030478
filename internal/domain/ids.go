package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// ParseID converts a hex string into a document ID.
// Returns a ValidationError wrapping ErrInvalidID when the string is not a
// 24 character hex ObjectID.
func ParseID(field, hex string) (primitive.ObjectID, error) {
	if hex == "" {
		return primitive.NilObjectID, NewValidationError(field, "is required", ErrInvalidID)
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, NewValidationError(field, "has invalid format", ErrInvalidID)
	}
	return id, nil
}
