package entity

import (
	"path/filepath"
	"regexp"
	"strings"

	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/errors"
	"dnotes/internal/util"

	"github.com/go-playground/validator/v10"
)

// Validation limits shared by entities and request DTOs.
const (
	MinPasswordLength      = 8
	ValidationCodeLength   = 6
	MaxProfileImageBytes   = 5 * 1024 * 1024
	maxShortTextLength     = 255
	maxDescriptionLength   = 2000
	minPersonNameRuneCount = 2
)

var (
	cifPattern        = regexp.MustCompile(`^[A-Z]\d{7}[0-9A-Z]$`)
	nifPattern        = regexp.MustCompile(`^\d{8}[A-Z]$`)
	personNamePattern = regexp.MustCompile(`^[\p{L}][\p{L} '-]*$`)
	codePattern       = regexp.MustCompile(`^\d{6}$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("cif", func(fl validator.FieldLevel) bool {
		return cifPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("nif", func(fl validator.FieldLevel) bool {
		return nifPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()

		return personNamePattern.MatchString(value) && len([]rune(value)) >= minPersonNameRuneCount
	})
	_ = v.RegisterValidation("vcode", func(fl validator.FieldLevel) bool {
		return codePattern.MatchString(fl.Field().String())
	})

	return v
}

// Validator returns the shared validator with the domain tags (cif, nif, personname, vcode) registered.
func Validator() *validator.Validate {
	return validate
}

// NormalizeTaxID trims and upper-cases a CIF or NIF.
func NormalizeTaxID(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// checkField validates a single value against a validator tag list.
func checkField(field string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return domainerrors.NewValidationError(field, describeTag(fieldErrs[0]))
	}

	return domainerrors.NewValidationError(field, "invalid value")
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "email":
		return "must be a valid email address"
	case "cif":
		return "must be a valid CIF (letter, 7 digits, control character)"
	case "nif":
		return "must be a valid NIF (8 digits and a letter)"
	case "personname":
		return "must contain only letters and be at least 2 characters long"
	case "vcode":
		return "must be a 6-digit code"
	case "min":
		return "must be at least " + fe.Param() + " long"
	case "max":
		return "must be at most " + fe.Param() + " long"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// ValidatePassword checks the minimum password policy.
func ValidatePassword(password string) error {
	return checkField("password", password, "required,min=8,max=72")
}

// ValidateEmail checks an email address.
func ValidateEmail(email string) error {
	return checkField("email", email, "required,email,max=255")
}

// ValidateCIF checks a company or client tax id.
func ValidateCIF(cif string) error {
	return checkField("cif", cif, "required,cif")
}

// ValidateCode checks the format of an email validation code.
func ValidateCode(code string) error {
	return checkField("code", code, "required,vcode")
}

var profileImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// ProfileImageContentType checks a profile image upload and returns the media type it is stored with.
func ProfileImageContentType(filename string, size int) (string, error) {
	contentType, ok := profileImageTypes[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return "", domainerrors.NewValidationError("image", "must be a .jpg, .jpeg, .png or .webp file")
	}
	if size <= 0 {
		return "", domainerrors.NewValidationError("image", "must not be empty")
	}
	if size > MaxProfileImageBytes {
		return "", domainerrors.NewValidationError("image", "must be at most "+util.FormatBytes(MaxProfileImageBytes))
	}

	return contentType, nil
}

// ProfileImageExtension returns the normalized extension of an accepted upload.
func ProfileImageExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
