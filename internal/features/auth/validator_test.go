package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "password123",
		Birthdate: "2000-01-01",
		Gender:    GenderFemale,
	}
}

func TestValidateRegister_OK(t *testing.T) {
	req := validRegisterRequest()
	birthdate, err := ValidateRegister(&req)
	require.NoError(t, err)
	assert.Equal(t, 2000, birthdate.Year())
}

func TestValidateRegister_NormalizesEmail(t *testing.T) {
	req := validRegisterRequest()
	req.Email = "  Alice@Example.COM "
	_, err := ValidateRegister(&req)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", req.Email)
}

func TestValidateRegister_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"whitespace in username", func(r *RegisterRequest) { r.Username = "al ice" }},
		{"empty username", func(r *RegisterRequest) { r.Username = "  " }},
		{"malformed email", func(r *RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *RegisterRequest) { r.Password = "short" }},
		{"bad gender", func(r *RegisterRequest) { r.Gender = "unknown" }},
		{"bad birthdate format", func(r *RegisterRequest) { r.Birthdate = "01/01/2000" }},
		{"underage", func(r *RegisterRequest) {
			r.Birthdate = time.Now().AddDate(-3, 0, 0).Format(birthdateLayout)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegisterRequest()
			tc.mutate(&req)
			_, err := ValidateRegister(&req)
			assert.Error(t, err)
		})
	}
}

func TestAge_BeforeAndAfterBirthday(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 6, age(time.Date(2020, 6, 14, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 5, age(time.Date(2020, 6, 16, 0, 0, 0, 0, time.UTC), now))
}

func TestAge_AcrossLeapYears(t *testing.T) {
	// born after Feb 29 of a leap year, evaluated in a non-leap year: the
	// sixth birthday itself must count as age 6
	born := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 6, age(born, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 5, age(born, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)))

	// evaluated on Feb 29 of a leap year, one day before a Mar 1 birthday
	born = time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 4, age(born, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 5, age(born, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPasswordHashing_NeverStoresPlaintext(t *testing.T) {
	const plaintext = "password123"

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	require.NoError(t, err)

	assert.NotEqual(t, plaintext, string(hashed))
	assert.NoError(t, bcrypt.CompareHashAndPassword(hashed, []byte(plaintext)))
	assert.Error(t, bcrypt.CompareHashAndPassword(hashed, []byte("wrong-password")))
}
