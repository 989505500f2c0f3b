package model

import "time"

// Submission is the raw, untrusted contact form body. Every field may
// contain markup or script content.
type Submission struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SanitizedSubmission mirrors Submission after markup stripping. It is
// safe to echo back to a client and is the only thing persisted.
type SanitizedSubmission struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ValidationResult is produced fresh per submission and never persisted.
// Errors holds at most one catalog message per field.
type ValidationResult struct {
	IsValid       bool                `json:"is_valid"`
	Errors        map[string]string   `json:"errors"`
	SanitizedData SanitizedSubmission `json:"sanitized_data"`
}

// Inquiry is the persisted document, one per accepted submission.
type Inquiry struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Mobile    string    `json:"mobile" bson:"mobile"`
	Email     string    `json:"email" bson:"email"`
	Message   string    `json:"message" bson:"message"`
	IsRead    bool      `json:"is_read" bson:"is_read"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
