package models

import "strings"

// MissingFieldError names the first required stunt field that was missing or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "Missing required field: " + e.Field
}

// ValidateStunt checks the fields required on create and update, in the
// order name, cost, category, description.
func ValidateStunt(req StuntRequest) error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return &MissingFieldError{Field: "name"}
	case req.Cost.IsEmpty():
		return &MissingFieldError{Field: "cost"}
	case strings.TrimSpace(req.Category) == "":
		return &MissingFieldError{Field: "category"}
	case strings.TrimSpace(req.Description) == "":
		return &MissingFieldError{Field: "description"}
	}
	return nil
}

// Fields converts a validated request into the stored columns. A blank
// setting becomes absent.
func (req StuntRequest) Fields() StuntFields {
	return StuntFields{
		Category:    req.Category,
		Name:        req.Name,
		Cost:        req.Cost,
		Description: req.Description,
		Setting:     NormalizeSetting(req.Setting),
	}
}

// NormalizeSetting maps nil and whitespace-only settings to nil.
func NormalizeSetting(setting *string) *string {
	if setting == nil || strings.TrimSpace(*setting) == "" {
		return nil
	}
	s := *setting
	return &s
}
