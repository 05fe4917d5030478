package api

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shutter-academy/academy-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenRequest is the payload for POST /jwt. Other fields a client sends
// alongside the email are ignored.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TokenResponse carries a freshly signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// PaymentIntentRequest is the payload for POST /create-payment-intent.
// Price accepts a JSON number or a quoted decimal string.
type PaymentIntentRequest struct {
	Price decimal.Decimal `json:"price"`
}

// PaymentIntentResponse returns the provider's client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// UpsertUserRequest is the payload for PUT /users/{email}.
type UpsertUserRequest struct {
	// Email may repeat the path email; it must match when present.
	Email    string       `json:"email"    validate:"omitempty,email"`
	Name     string       `json:"name"     validate:"omitempty,max=200"`
	PhotoURL string       `json:"photoURL" validate:"omitempty,url"`
	Role     *domain.Role `json:"role"     validate:"omitempty,role"`
}

// Profile converts the request into the store's upsert input.
func (r UpsertUserRequest) Profile() domain.UserProfile {
	return domain.UserProfile{
		Name:     r.Name,
		PhotoURL: r.PhotoURL,
		Role:     r.Role,
	}
}

// CreateClassRequest is the payload for POST /classes.
type CreateClassRequest struct {
	ClassName       string             `json:"className"       validate:"required,max=200"`
	ClassImage      string             `json:"classImage"      validate:"omitempty,url"`
	InstructorName  string             `json:"instructorName"  validate:"required,max=200"`
	InstructorEmail string             `json:"instructorEmail" validate:"required,email"`
	Price           float64            `json:"price"           validate:"gte=0"`
	AvailableSeats  int                `json:"availableSeats"  validate:"gte=0"`
	Status          domain.ClassStatus `json:"status"          validate:"omitempty,classstatus"`
}

// Class builds the document to insert. New classes start pending with no
// enrollments unless a status is supplied.
func (r CreateClassRequest) Class() *domain.Class {
	status := r.Status
	if status == "" {
		status = domain.ClassStatusPending
	}
	return &domain.Class{
		ClassName:       r.ClassName,
		ClassImage:      r.ClassImage,
		InstructorName:  r.InstructorName,
		InstructorEmail: r.InstructorEmail,
		Price:           r.Price,
		AvailableSeats:  r.AvailableSeats,
		TotalEnrolled:   0,
		Status:          status,
	}
}

// UpdateStatusRequest is the payload for PATCH /updateClassStatus/{id}.
type UpdateStatusRequest struct {
	Status domain.ClassStatus `json:"status" validate:"required,classstatus"`
}

// FeedbackRequest is the payload for PUT /classFeedback/{id}.
type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required,max=2000"`
}

// UpdateClassRequest is the payload for PATCH /updateClass/{id}.
// Absent fields are left unchanged.
type UpdateClassRequest struct {
	ClassName      *string             `json:"className"      validate:"omitempty,min=1,max=200"`
	ClassImage     *string             `json:"classImage"     validate:"omitempty,url"`
	Price          *float64            `json:"price"          validate:"omitempty,gte=0"`
	AvailableSeats *int                `json:"availableSeats" validate:"omitempty,gte=0"`
	Status         *domain.ClassStatus `json:"status"         validate:"omitempty,classstatus"`
	Feedback       *string             `json:"feedback"       validate:"omitempty,max=2000"`
}

// Patch converts the request into a ClassPatch.
func (r UpdateClassRequest) Patch() domain.ClassPatch {
	return domain.ClassPatch{
		ClassName:      r.ClassName,
		ClassImage:     r.ClassImage,
		Price:          r.Price,
		AvailableSeats: r.AvailableSeats,
		Status:         r.Status,
		Feedback:       r.Feedback,
	}
}

// StudentInfoRequest identifies the student in cart and payment payloads.
type StudentInfoRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"omitempty,max=200"`
}

func (s StudentInfoRequest) toDomain() domain.StudentInfo {
	return domain.StudentInfo{Email: s.Email, Name: s.Name}
}

// CreateSelectedClassRequest is the payload for POST /selectedClasses.
type CreateSelectedClassRequest struct {
	ClassID         string             `json:"classId"         validate:"required,objectid"`
	ClassName       string             `json:"className"       validate:"required,max=200"`
	ClassImage      string             `json:"classImage"      validate:"omitempty,url"`
	InstructorName  string             `json:"instructorName"  validate:"omitempty,max=200"`
	InstructorEmail string             `json:"instructorEmail" validate:"omitempty,email"`
	Price           float64            `json:"price"           validate:"gte=0"`
	StudentInfo     StudentInfoRequest `json:"studentInfo"     validate:"required"`
}

// SelectedClass builds the cart document. ClassID has already passed
// objectid validation.
func (r CreateSelectedClassRequest) SelectedClass() (*domain.SelectedClass, error) {
	classID, err := domain.ParseID("classId", r.ClassID)
	if err != nil {
		return nil, err
	}
	return &domain.SelectedClass{
		ClassID:         classID,
		ClassName:       r.ClassName,
		ClassImage:      r.ClassImage,
		InstructorName:  r.InstructorName,
		InstructorEmail: r.InstructorEmail,
		Price:           r.Price,
		StudentInfo:     r.StudentInfo.toDomain(),
	}, nil
}

// CreatePaymentRequest is the payload for POST /payment.
type CreatePaymentRequest struct {
	StudentInfo     StudentInfoRequest `json:"studentInfo"     validate:"required"`
	ClassID         string             `json:"classId"         validate:"required,objectid"`
	SelectedClassID string             `json:"selectedClassId" validate:"omitempty,objectid"`
	ClassName       string             `json:"className"       validate:"omitempty,max=200"`
	Price           float64            `json:"price"           validate:"gt=0"`
	TransactionID   string             `json:"transactionId"   validate:"required,max=255"`
	// Date defaults to the time the record is stored.
	Date *time.Time `json:"date"`
}

// Payment builds the payment record.
func (r CreatePaymentRequest) Payment() (*domain.Payment, error) {
	classID, err := domain.ParseID("classId", r.ClassID)
	if err != nil {
		return nil, err
	}

	var selectedID *primitive.ObjectID
	if r.SelectedClassID != "" {
		id, err := domain.ParseID("selectedClassId", r.SelectedClassID)
		if err != nil {
			return nil, err
		}
		selectedID = &id
	}

	p := &domain.Payment{
		StudentInfo:     r.StudentInfo.toDomain(),
		ClassID:         classID,
		SelectedClassID: selectedID,
		ClassName:       r.ClassName,
		Price:           r.Price,
		TransactionID:   r.TransactionID,
	}
	if r.Date != nil {
		p.Date = r.Date.UTC()
	}
	return p, nil
}
