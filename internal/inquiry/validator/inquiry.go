package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"nexusplater/pkg/logger"
	"nexusplater/pkg/messages"
	"nexusplater/pkg/model"
	"nexusplater/pkg/sanitizer"
)

var (
	// Same shape the contact form has always accepted: non-whitespace
	// local part, single @, dot somewhere in the domain. Not RFC-deep.
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Letters and spaces, Latin or Arabic script. Only enforced when the
	// strict name charset option is on.
	reNameCharset = regexp.MustCompile(`^[a-zA-Z\s\x{0600}-\x{06FF}]+$`)
)

// LooksMalicious flags raw input carrying markup or script markers. It
// runs on the pre-sanitization value so an attacked field is reported as
// invalid characters rather than as missing once stripping empties it.
func LooksMalicious(raw string) bool {
	if strings.Contains(strings.ToLower(raw), "<script") {
		return true
	}
	return strings.ContainsAny(raw, "<>")
}

type sanitizedFields struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Mobile  string `json:"mobile" validate:"required,uae_mobile"`
	Email   string `json:"email" validate:"required,contact_email"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

type InquiryValidator struct {
	validate   *validator.Validate
	catalog    messages.Catalog
	clean      *sanitizer.Sanitizer
	strictName bool
	log        *logger.Logger
}

func NewInquiryValidator(catalog messages.Catalog, clean *sanitizer.Sanitizer, strictName bool, log *logger.Logger) *InquiryValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("uae_mobile", func(fl validator.FieldLevel) bool {
		return ValidUAEMobile(fl.Field().String())
	}); err != nil {
		log.Fatal("Failed to register 'uae_mobile' validator", "error", err)
	}
	if err := v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return reEmail.MatchString(strings.TrimSpace(fl.Field().String()))
	}); err != nil {
		log.Fatal("Failed to register 'contact_email' validator", "error", err)
	}

	log.Info("Inquiry validator initialized successfully", "strict_name_charset", strictName)

	return &InquiryValidator{
		validate:   v,
		catalog:    catalog,
		clean:      clean,
		strictName: strictName,
		log:        log,
	}
}

// Validate sanitizes and validates a raw submission in one pass. It is a
// pure function over its input: no I/O, always returns a structured
// result, never an error value.
//
// Per field the first applicable failure wins, with the malicious-content
// check taking precedence for name and message:
//
//  1. raw value carries markup markers -> invalid characters
//  2. sanitization ate a non-blank raw value -> invalid characters
//  3. length/shape check on the sanitized value
//
// SanitizedData is populated for every field regardless of validity so
// callers can echo safe values back.
func (v *InquiryValidator) Validate(raw *model.Submission) *model.ValidationResult {
	result := &model.ValidationResult{
		Errors: map[string]string{},
		SanitizedData: model.SanitizedSubmission{
			Name:    v.clean.CleanText(raw.Name),
			Mobile:  v.clean.CleanText(raw.Mobile),
			Email:   v.clean.CleanText(raw.Email),
			Message: v.clean.CleanText(raw.Message),
		},
	}

	v.checkMalicious(result, "name", raw.Name, result.SanitizedData.Name, messages.NameInvalidCharacters)
	v.checkMalicious(result, "message", raw.Message, result.SanitizedData.Message, messages.MessageInvalidCharacters)

	fields := sanitizedFields(result.SanitizedData)
	if err := v.validate.Struct(&fields); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				field := fe.Field()
				if _, taken := result.Errors[field]; taken {
					continue
				}
				result.Errors[field] = v.catalog.Get(messageKey(field, fe.Tag()))
			}
		} else {
			// Struct-level failures here would be a programming error;
			// report the whole submission as invalid rather than panic.
			v.log.Error("Unexpected validation failure", "error", err)
			result.Errors["message"] = v.catalog.Get(messages.ValidationFailed)
		}
	}

	if v.strictName && result.Errors["name"] == "" && !reNameCharset.MatchString(result.SanitizedData.Name) {
		result.Errors["name"] = v.catalog.Get(messages.NameInvalidCharacters)
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// checkMalicious records the invalid-characters error when the raw value
// carries markup, or when sanitization emptied a non-blank value (the
// payload was markup-only, an attack rather than an absence).
func (v *InquiryValidator) checkMalicious(result *model.ValidationResult, field, raw, sanitized, key string) {
	if raw != "" && LooksMalicious(raw) {
		result.Errors[field] = v.catalog.Get(key)
		return
	}
	if sanitized == "" && strings.TrimSpace(raw) != "" {
		result.Errors[field] = v.catalog.Get(key)
	}
}

func messageKey(field, tag string) string {
	switch field {
	case "name":
		switch tag {
		case "required":
			return messages.NameRequired
		case "min":
			return messages.NameMinLength
		case "max":
			return messages.NameMaxLength
		}
	case "mobile":
		if tag == "required" {
			return messages.MobileRequired
		}
		return messages.MobileInvalid
	case "email":
		if tag == "required" {
			return messages.EmailRequired
		}
		return messages.EmailInvalid
	case "message":
		switch tag {
		case "required":
			return messages.MessageRequired
		case "min":
			return messages.MessageMinLength
		case "max":
			return messages.MessageMaxLength
		}
	}
	return messages.ValidationFailed
}
