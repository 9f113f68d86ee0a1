package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/inkwell-app/inkwell/internal/pkg/validator"
)

const (
	minPasswordLength = 8
	minAgeYears       = 6
	birthdateLayout   = "2006-01-02"
)

// ValidateRegister checks the registration payload and returns the parsed
// birthdate on success.
func ValidateRegister(req *RegisterRequest) (time.Time, error) {
	if strings.TrimSpace(req.Username) == "" {
		return time.Time{}, errors.New("username is required")
	}
	if validator.HasWhitespace(req.Username) {
		return time.Time{}, errors.New("username must not contain whitespace")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if !validator.IsValidEmail(req.Email) {
		return time.Time{}, errors.New("invalid email address")
	}

	if len(req.Password) < minPasswordLength {
		return time.Time{}, errors.New("password must be at least 8 characters")
	}

	if err := validateGender(req.Gender); err != nil {
		return time.Time{}, err
	}

	birthdate, err := time.Parse(birthdateLayout, req.Birthdate)
	if err != nil {
		return time.Time{}, errors.New("birthdate must be in YYYY-MM-DD format")
	}
	if age(birthdate, time.Now()) < minAgeYears {
		return time.Time{}, errors.New("user must be at least 6 years old")
	}

	return birthdate, nil
}

func validateGender(gender string) error {
	switch gender {
	case GenderMale, GenderFemale, GenderOther:
		return nil
	}
	return errors.New("gender must be one of male, female, other")
}

func age(birthdate, now time.Time) int {
	years := now.Year() - birthdate.Year()
	if birthdate.AddDate(years, 0, 0).After(now) {
		years--
	}
	return years
}
