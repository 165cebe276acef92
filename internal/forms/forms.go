// Package forms validates user input before it is sent to the backend.
// Validation is declarative: each form declares its rules once, and Validate
// reports every failing field in one pass so the user can fix a whole form
// in one round instead of whack-a-mole.
package forms

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/talentpipe/talentpipe/pkg/models"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\d\s()+\-]{8,20}$`)
	urlRe   = regexp.MustCompile(`^https?://\S+\.\S+`)
)

// FieldError is one failed rule on one field.
type FieldError struct {
	Field   string
	Message string
}

// Errors collects every failing field of a form.
type Errors []FieldError

// Error renders every field error on its own line, fields in stable order.
func (e Errors) Error() string {
	sorted := make([]FieldError, len(e))
	copy(sorted, e)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Field < sorted[j].Field })
	lines := make([]string, 0, len(sorted))
	for _, fe := range sorted {
		lines = append(lines, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(lines, "\n")
}

// Has reports whether the named field failed.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Rule checks one field and returns a message on failure, empty on success.
type Rule struct {
	Field string
	Check func() string
}

// Validate runs every rule and returns the full set of failures, or nil when
// the form is clean.
func Validate(rules []Rule) error {
	var errs Errors
	for _, r := range rules {
		if msg := r.Check(); msg != "" {
			errs = append(errs, FieldError{Field: r.Field, Message: msg})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func required(value, label string) string {
	if strings.TrimSpace(value) == "" {
		return label + " is required"
	}
	return ""
}

// CandidateRules builds the rule set for the candidate form.
func CandidateRules(v *models.CandidateView) []Rule {
	return []Rule{
		{"name", func() string { return required(v.Name, "name") }},
		{"email", func() string {
			if msg := required(v.Email, "email"); msg != "" {
				return msg
			}
			if !emailRe.MatchString(v.Email) {
				return "invalid email address"
			}
			return ""
		}},
		{"phone", func() string {
			if msg := required(v.Phone, "phone"); msg != "" {
				return msg
			}
			if !phoneRe.MatchString(v.Phone) {
				return "invalid phone number"
			}
			return ""
		}},
		{"linkedin", func() string {
			if v.LinkedIn != "" && !urlRe.MatchString(v.LinkedIn) {
				return "invalid URL"
			}
			return ""
		}},
	}
}

// JobRules builds the rule set for the job form. now is injected so the
// deadline rule is testable.
func JobRules(v *models.JobView, now time.Time) []Rule {
	return []Rule{
		{"title", func() string { return required(v.Title, "title") }},
		{"company", func() string { return required(v.Company, "company") }},
		{"location", func() string { return required(v.Location, "location") }},
		{"salary", func() string {
			if v.SalaryMin != nil && *v.SalaryMin < 0 {
				return "minimum salary cannot be negative"
			}
			if v.SalaryMin != nil && v.SalaryMax != nil && *v.SalaryMin > *v.SalaryMax {
				return "minimum salary exceeds maximum"
			}
			return ""
		}},
		{"deadline", func() string {
			if v.Deadline != nil && !v.Deadline.After(now) {
				return "application deadline must be in the future"
			}
			return ""
		}},
	}
}

// Credentials is the login/registration form input.
type Credentials struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

// LoginRules builds the rule set for the login form.
func LoginRules(c Credentials) []Rule {
	return []Rule{
		{"email", func() string {
			if msg := required(c.Email, "email"); msg != "" {
				return msg
			}
			if !emailRe.MatchString(c.Email) {
				return "invalid email address"
			}
			return ""
		}},
		{"password", func() string { return required(c.Password, "password") }},
	}
}

// RegisterRules builds the rule set for the registration form.
func RegisterRules(c Credentials) []Rule {
	rules := []Rule{
		{"name", func() string { return required(c.Name, "name") }},
	}
	rules = append(rules, LoginRules(c)...)
	rules = append(rules,
		Rule{"password", func() string {
			if len(c.Password) > 0 && len(c.Password) < 6 {
				return "password must be at least 6 characters"
			}
			return ""
		}},
		Rule{"confirm", func() string {
			if c.Password != c.Confirm {
				return "passwords do not match"
			}
			return ""
		}},
	)
	return rules
}
