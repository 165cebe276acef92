package forms

import (
	"errors"
	"testing"
	"time"

	"github.com/talentpipe/talentpipe/pkg/models"
)

func TestCandidateRulesReportAllFailures(t *testing.T) {
	v := &models.CandidateView{
		Name:  "Ada Lovelace",
		Email: "not-an-email",
		// phone missing
	}
	err := Validate(CandidateRules(v))
	if err == nil {
		t.Fatal("expected validation errors")
	}
	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("error type = %T", err)
	}
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	if !errs.Has("email") || !errs.Has("phone") {
		t.Errorf("wrong fields: %v", errs)
	}
}

func TestCandidateRulesValid(t *testing.T) {
	v := &models.CandidateView{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "+55 (11) 98888-7777",
		LinkedIn: "https://linkedin.com/in/ada",
	}
	if err := Validate(CandidateRules(v)); err != nil {
		t.Fatalf("unexpected errors: %v", err)
	}
}

func TestCandidateLinkedInOptionalButChecked(t *testing.T) {
	v := &models.CandidateView{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "11988887777",
		LinkedIn: "linkedin.com/in/ada",
	}
	err := Validate(CandidateRules(v))
	var errs Errors
	if !errors.As(err, &errs) || !errs.Has("linkedin") {
		t.Fatalf("expected linkedin error, got %v", err)
	}
}

func TestJobRules(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	min, max := 9000.0, 5000.0
	past := now.Add(-24 * time.Hour)
	v := &models.JobView{
		Title:     "Platform Engineer",
		Company:   "Acme",
		Location:  "Remote",
		SalaryMin: &min,
		SalaryMax: &max,
		Deadline:  &past,
	}
	err := Validate(JobRules(v, now))
	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("error type = %T", err)
	}
	if len(errs) != 2 || !errs.Has("salary") || !errs.Has("deadline") {
		t.Fatalf("got %v", errs)
	}

	future := now.Add(24 * time.Hour)
	v.SalaryMin, v.SalaryMax = &max, &min
	v.Deadline = &future
	if err := Validate(JobRules(v, now)); err != nil {
		t.Fatalf("unexpected errors: %v", err)
	}
}

func TestRegisterRules(t *testing.T) {
	err := Validate(RegisterRules(Credentials{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "abc",
		Confirm:  "abcd",
	}))
	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("error type = %T", err)
	}
	if !errs.Has("password") || !errs.Has("confirm") {
		t.Fatalf("got %v", errs)
	}

	if err := Validate(RegisterRules(Credentials{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret1",
		Confirm:  "secret1",
	})); err != nil {
		t.Fatalf("unexpected errors: %v", err)
	}
}

func TestErrorsRenderStableOrder(t *testing.T) {
	errs := Errors{
		{Field: "phone", Message: "phone is required"},
		{Field: "email", Message: "invalid email address"},
	}
	want := "email: invalid email address\nphone: phone is required"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
