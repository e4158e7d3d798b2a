package models

import (
	"errors"
	"testing"
)

func TestValidateStunt(t *testing.T) {
	valid := StuntRequest{Name: "Skirmish", Cost: "1", Category: "Combat", Description: "Move 2 yards."}

	tests := []struct {
		name      string
		mutate    func(*StuntRequest)
		wantField string
	}{
		{"valid", func(*StuntRequest) {}, ""},
		{"zero cost allowed", func(r *StuntRequest) { r.Cost = "0" }, ""},
		{"blank name", func(r *StuntRequest) { r.Name = "  " }, "name"},
		{"missing cost", func(r *StuntRequest) { r.Cost = "" }, "cost"},
		{"missing category", func(r *StuntRequest) { r.Category = "" }, "category"},
		{"missing description", func(r *StuntRequest) { r.Description = "" }, "description"},
		{"name reported first", func(r *StuntRequest) { *r = StuntRequest{} }, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := ValidateStunt(req)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}

			var missing *MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("Expected MissingFieldError, got %v", err)
			}
			if missing.Field != tt.wantField {
				t.Errorf("Expected field %s, got %s", tt.wantField, missing.Field)
			}
			if err.Error() != "Missing required field: "+tt.wantField {
				t.Errorf("Unexpected message: %s", err.Error())
			}
		})
	}
}

func TestFieldsNormalizesSetting(t *testing.T) {
	blank := "   "
	fantasy := "Fantasy"

	req := StuntRequest{Name: "A", Cost: "1", Category: "Combat", Description: "B", Setting: &blank}
	if got := req.Fields().Setting; got != nil {
		t.Errorf("Expected blank setting to become nil, got %q", *got)
	}

	req.Setting = &fantasy
	got := req.Fields().Setting
	if got == nil || *got != "Fantasy" {
		t.Fatalf("Expected Fantasy setting, got %v", got)
	}
	if got == &fantasy {
		t.Error("Expected setting to be copied")
	}
}
