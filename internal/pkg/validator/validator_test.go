package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type contactForm struct {
	FirstName string `validate:"required"`
	Email     string `validate:"required,email"`
	Phone     string `validate:"required,usphone"`
}

func TestValidatePasses(t *testing.T) {
	errs := Validate(&contactForm{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Phone:     "(415) 555-1234",
	})
	assert.Nil(t, errs)
}

func TestValidateReportsFieldTags(t *testing.T) {
	errs := Validate(&contactForm{
		FirstName: "",
		Email:     "not-an-email",
		Phone:     "555-1234",
	})

	assert.Equal(t, "required", errs["FirstName"])
	assert.Equal(t, "email", errs["Email"])
	assert.Equal(t, "usphone", errs["Phone"])
}

func TestUSPhoneAcceptsAnyFormattingWithTenDigits(t *testing.T) {
	valid := []string{"4155551234", "(415) 555-1234", "415.555.1234", "415 555 1234"}
	for _, phone := range valid {
		errs := Validate(&contactForm{FirstName: "Ada", Email: "a@b.com", Phone: phone})
		assert.Nil(t, errs, "phone %q", phone)
	}

	invalid := []string{"415555123", "41555512345", "", "phone"}
	for _, phone := range invalid {
		errs := Validate(&contactForm{FirstName: "Ada", Email: "a@b.com", Phone: phone})
		assert.NotNil(t, errs, "phone %q", phone)
	}
}

func TestCountDigits(t *testing.T) {
	assert.Equal(t, 10, CountDigits("(415) 555-1234"))
	assert.Equal(t, 0, CountDigits("abc"))
}

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank("x"))
	assert.False(t, NotBlank("   "))
}
