// Package messages holds the user-facing message catalog. Validators and
// handlers look text up by key, so wording can be swapped (or localized)
// without touching validation logic.
package messages

const (
	NameRequired          = "name_required"
	NameMinLength         = "name_min_length"
	NameMaxLength         = "name_max_length"
	NameInvalidCharacters = "name_invalid_characters"

	MobileRequired = "mobile_required"
	MobileInvalid  = "mobile_invalid"

	EmailRequired = "email_required"
	EmailInvalid  = "email_invalid"

	MessageRequired          = "message_required"
	MessageMinLength         = "message_min_length"
	MessageMaxLength         = "message_max_length"
	MessageInvalidCharacters = "message_invalid_characters"

	RateLimitExceeded = "rate_limit_exceeded"
	TooManyRequests   = "too_many_requests"
	ValidationFailed  = "validation_failed"
	SubmissionFailed  = "submission_failed"
	ServerError       = "server_error"
	PageNotFound      = "page_not_found"

	InquirySubmitted = "inquiry_submitted"
	ThankYou         = "thank_you"
)

type Catalog map[string]string

// Get returns the catalog text for key, or the key itself when no entry
// exists so a missing translation is still visible rather than blank.
func (c Catalog) Get(key string) string {
	if text, ok := c[key]; ok {
		return text
	}
	return key
}

func Default() Catalog {
	return Catalog{
		NameRequired:          "Name is required",
		NameMinLength:         "Name must be at least 2 characters long",
		NameMaxLength:         "Name must be less than 100 characters",
		NameInvalidCharacters: "Name contains invalid characters",

		MobileRequired: "Mobile number is required",
		MobileInvalid:  "Please enter a valid UAE mobile number (e.g. 0501234567, or +971501234567)",

		EmailRequired: "Email is required",
		EmailInvalid:  "Please enter a valid email address",

		MessageRequired:          "Message is required",
		MessageMinLength:         "Message must be at least 10 characters long",
		MessageMaxLength:         "Message must be less than 2000 characters",
		MessageInvalidCharacters: "Message contains invalid characters",

		RateLimitExceeded: "You have already submitted an inquiry today. We will get back to you within 24 hours.",
		TooManyRequests:   "Too many requests. Please try again later.",
		ValidationFailed:  "Validation failed",
		SubmissionFailed:  "Submission failed",
		ServerError:       "Internal server error. Please try again later.",
		PageNotFound:      "The page you are looking for does not exist.",

		InquirySubmitted: "Inquiry submitted successfully!",
		ThankYou:         "Thank you for reaching out to us. Your inquiry has been received and we will get back to you within 24 hours.",
	}
}
