// Package validation implements the form-level validation rules for portal
// entities. Each Validate* function runs its rules in declared order and
// accumulates every violation; it never stops at the first error.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/domain"
)

// emailRe is deliberately permissive: anything without whitespace around a
// single "@" and with a dotted domain part passes.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result holds the outcome of validating one record.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

func result(errors []string) Result {
	return Result{IsValid: len(errors) == 0, Errors: errors}
}

// ShopInput holds the shop form fields subject to validation.
type ShopInput struct {
	Name        string
	Description string
	Category    string
	Floor       string
	Contact     string
}

// ValidateShop checks a shop record. Name bounds are checked on the raw
// value for the maximum but on the trimmed value for the minimum, matching
// the storefront forms.
func ValidateShop(in ShopInput) Result {
	var errors []string

	if len(strings.TrimSpace(in.Name)) < domain.ShopNameMinLen {
		errors = append(errors, fmt.Sprintf("Shop name must be at least %d characters", domain.ShopNameMinLen))
	}
	if in.Name != "" && len(in.Name) > domain.ShopNameMaxLen {
		errors = append(errors, fmt.Sprintf("Shop name must not exceed %d characters", domain.ShopNameMaxLen))
	}

	if strings.TrimSpace(in.Description) == "" {
		errors = append(errors, "Description is required")
	}
	if in.Description != "" && len(in.Description) > domain.DescriptionMaxLen {
		errors = append(errors, fmt.Sprintf("Description must not exceed %d characters", domain.DescriptionMaxLen))
	}

	if strings.TrimSpace(in.Category) == "" {
		errors = append(errors, "Category is required")
	}

	if in.Floor == "" {
		errors = append(errors, "Floor is required")
	}

	if strings.TrimSpace(in.Contact) == "" {
		errors = append(errors, "Contact information is required")
	}

	return result(errors)
}

// OfferInput holds the offer form fields subject to validation. Dates are
// ISO strings ("YYYY-MM-DD").
type OfferInput struct {
	Title       string
	Description string
	OfferType   string
	Discount    float64
	StartDate   string
	EndDate     string
}

// ValidateOffer checks an offer record. The percentage bound applies only to
// percentage-type offers; the date-order rule only runs when both dates are
// present.
func ValidateOffer(in OfferInput) Result {
	var errors []string

	if strings.TrimSpace(in.Title) == "" {
		errors = append(errors, "Offer title is required")
	}

	if strings.TrimSpace(in.Description) == "" {
		errors = append(errors, "Description is required")
	}

	if in.Discount <= 0 {
		errors = append(errors, "Valid discount is required")
	}

	if in.OfferType == domain.OfferTypePercentage && in.Discount > 100 {
		errors = append(errors, "Percentage discount cannot exceed 100%")
	}

	if in.StartDate == "" {
		errors = append(errors, "Start date is required")
	}
	if in.EndDate == "" {
		errors = append(errors, "End date is required")
	}

	// Fixed-width ISO dates order correctly under string comparison.
	if in.StartDate != "" && in.EndDate != "" && in.EndDate <= in.StartDate {
		errors = append(errors, "End date must be after start date")
	}

	return result(errors)
}

// CategoryInput holds the category form fields subject to validation.
type CategoryInput struct {
	Name        string
	Description string
}

// ValidateCategory checks a category record. Description is optional but
// length-bounded.
func ValidateCategory(in CategoryInput) Result {
	var errors []string

	if strings.TrimSpace(in.Name) == "" {
		errors = append(errors, "Category name is required")
	}

	if in.Description != "" && len(in.Description) > domain.DescriptionMaxLen {
		errors = append(errors, fmt.Sprintf("Description must not exceed %d characters", domain.DescriptionMaxLen))
	}

	return result(errors)
}

// FloorInput holds the floor form fields subject to validation. Level is a
// pointer so an absent level can be told apart from level 0 (ground floor).
type FloorInput struct {
	Name  string
	Code  string
	Level *int
}

// ValidateFloor checks a floor record.
func ValidateFloor(in FloorInput) Result {
	var errors []string

	if strings.TrimSpace(in.Name) == "" {
		errors = append(errors, "Floor name is required")
	}

	if strings.TrimSpace(in.Code) == "" {
		errors = append(errors, "Floor code is required")
	}

	if in.Level == nil {
		errors = append(errors, "Floor level is required")
	}

	return result(errors)
}

// LoginInput holds the login form fields subject to validation.
type LoginInput struct {
	Email    string
	Password string
}

// ValidateLogin checks login credentials for shape only. Password strength
// is enforced on password changes, never at login, so existing accounts can
// always sign in.
func ValidateLogin(in LoginInput) Result {
	var errors []string

	if !emailRe.MatchString(in.Email) {
		errors = append(errors, "Valid email is required")
	}

	if in.Password == "" {
		errors = append(errors, "Password is required")
	}

	return result(errors)
}

// ValidatePasswordStrength checks a new password against the account policy:
// length bounds plus at least one uppercase letter, one lowercase letter,
// and one digit. Unlike the form validators it reports only the first
// failing rule.
func ValidatePasswordStrength(password string) Result {
	if len(password) < domain.PasswordMinLen || len(password) > domain.PasswordMaxLen {
		return result([]string{fmt.Sprintf("Password must be between %d and %d characters", domain.PasswordMinLen, domain.PasswordMaxLen)})
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return result([]string{"Password must contain at least one uppercase letter"})
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		return result([]string{"Password must contain at least one lowercase letter"})
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return result([]string{"Password must contain at least one number"})
	}
	return result(nil)
}

// IsValidEmail reports whether the given address matches the portal's
// permissive email pattern.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
