package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shutter-academy/academy-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxBodyBytes caps the size of JSON request bodies.
const MaxBodyBytes = 1 << 20

// ErrEmptyBody is returned by DecodeJSON when the request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// Global validator instance for reuse
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names in validation errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// objectid accepts 24-character hex document identifiers.
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return domain.Role(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("classstatus", func(fl validator.FieldLevel) bool {
		return domain.ClassStatus(fl.Field().String()).Valid()
	})

	return v
}

// PathParam returns the decoded value of the named route parameter.
// chi matches against the raw path, so escapes such as %40 survive routing.
func PathParam(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", domain.NewValidationError(name, "has invalid escaping", nil)
	}
	return value, nil
}

// ValidateEmail applies the same email rule used for request bodies.
func ValidateEmail(email string) error {
	if email == "" {
		return domain.NewValidationError("email", "is required", domain.ErrInvalidEmail)
	}
	if err := validate.Var(email, "email"); err != nil {
		return domain.NewValidationError("email", "has invalid format", domain.ErrInvalidEmail)
	}
	return nil
}

// DecodeOption customizes DecodeJSON.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	allowUnknownFields bool
}

// AllowUnknownFields makes DecodeJSON ignore fields v does not declare.
func AllowUnknownFields() DecodeOption {
	return func(o *decodeOptions) {
		o.allowUnknownFields = true
	}
}

// DecodeJSON decodes the request body into v. Unknown fields are rejected
// unless AllowUnknownFields is passed. Trailing data and bodies larger than
// MaxBodyBytes are always rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}, opts ...DecodeOption) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	options := decodeOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if !options.allowUnknownFields {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	if dec.More() {
		return fmt.Errorf("request body must contain a single JSON object")
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return validate.Struct(v)
}
