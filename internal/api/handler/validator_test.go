package handler

import (
	"errors"
	"testing"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

func TestValidator_FirstViolationWins(t *testing.T) {
	v := NewValidator()

	// Both fields invalid: only the first declared field is reported.
	err := v.Validate(&signupRequest{Email: "not-an-email", Password: "short"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "email" {
		t.Fatalf("expected first field reported, got %q", ve.Field)
	}
}

func TestValidator_SnakeCaseFieldNames(t *testing.T) {
	v := NewValidator()

	req := struct {
		DueDate string `validate:"required"`
	}{}
	err := v.Validate(&req)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "due_date" {
		t.Fatalf("expected json-style field name, got %q", ve.Field)
	}
	if ve.Message != "due_date is required" {
		t.Fatalf("unexpected message: %q", ve.Message)
	}
}

func TestValidator_TagMessages(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name  string
		in    any
		field string
		msg   string
	}{
		{
			"min",
			&signupRequest{Email: "a@example.com", Password: "short"},
			"password",
			"password must be at least 8 characters",
		},
		{
			"oneof",
			&updateRoleRequest{Role: "root"},
			"role",
			"role must be one of: user, admin",
		},
		{
			"datetime",
			&createTaskRequest{Title: "ok", Status: "pending", Priority: "low", DueDate: "yesterday"},
			"due_date",
			"due_date must be a valid RFC 3339 timestamp",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.in)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field || ve.Message != tc.msg {
				t.Fatalf("got %q / %q", ve.Field, ve.Message)
			}
		})
	}
}

func TestValidator_ValidInputPasses(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(&signupRequest{Email: "a@example.com", Password: "longenough", FullName: "Alice"}); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}
