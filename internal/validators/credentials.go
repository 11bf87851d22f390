package validators

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-tg-userbot/models"
)

const (
	FieldAPIID   = "api_id"
	FieldAPIHash = "api_hash"
)

type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAPIID, FieldAPIHash}
	}

	for _, f := range fields {
		switch f {
		case FieldAPIID:
			if creds.APIID == 0 {
				return ErrInvalidAPIID
			}
		case FieldAPIHash:
			if strings.TrimSpace(creds.APIHash) == "" {
				return ErrEmptyAPIHash
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ParseAPIID converts operator input into an API ID, accepting only integers
// within the signed 32-bit range.
func ParseAPIID(input string) (int32, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(input), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAPIID, input)
	}
	return int32(id), nil
}
