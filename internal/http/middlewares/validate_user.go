package middlewares

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

// Registration payloads arrive as raw JSON and may carry the wrong types
// (for example a numeric username), so the fields are decoded as `any` and
// each check decides what to do with a non-string value.
type createUserPayload struct {
	Username any `json:"username"`
	Email    any `json:"email"`
	Password any `json:"password"`
}

// ValidationFailure is the terminal outcome of one failed check. Message is
// either a plain string or a list of guidance lines, exactly as the API has
// always returned them.
type ValidationFailure struct {
	Kind    string
	Message any
}

type validationCheck func(p createUserPayload) *ValidationFailure

// Ordered: the first failing check wins and later checks never run.
var createUserChecks = []validationCheck{
	checkRequiredFields,
	checkUsername,
	checkEmail,
	checkPassword,
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// ValidateCreateUser vets a registration body before the creation handler
// runs. The body is put back on the request untouched so the next handler
// can bind it again.
func ValidateCreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)

		if err == nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		}

		var p createUserPayload

		if err != nil || json.Unmarshal(raw, &p) != nil {
			// no parseable fields at all; same outcome as all missing
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "a valid email, username and password are required",
			})
			return
		}

		for _, check := range createUserChecks {
			f := check(p)

			if f != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error": f.Message,
				})
				return
			}
		}

		c.Next()
	}
}

func checkRequiredFields(p createUserPayload) *ValidationFailure {
	if p.Email == nil || p.Password == nil || p.Username == nil {
		return &ValidationFailure{
			Kind:    "MissingField",
			Message: "a valid email, username and password are required",
		}
	}

	return nil
}

func checkUsername(p createUserPayload) *ValidationFailure {
	fail := &ValidationFailure{
		Kind: "InvalidUsername",
		Message: []string{
			"username should have more than 2 characters",
			"username should not have more than 15 characters",
			"username should not be numeric",
			"example of a valid username is alpha123",
		},
	}

	s, ok := p.Username.(string)

	if !ok {
		// numeric (or otherwise non-string) usernames are rejected outright
		return fail
	}

	if n := utf8.RuneCountInString(s); n < 3 || n > 15 {
		return fail
	}

	return nil
}

func checkEmail(p createUserPayload) *ValidationFailure {
	s, ok := p.Email.(string)

	if !ok || !emailRegex.MatchString(s) {
		return &ValidationFailure{
			Kind:    "InvalidEmail",
			Message: "please enter a valid email address e.g martinez@yahoo.com",
		}
	}

	return nil
}

func checkPassword(p createUserPayload) *ValidationFailure {
	fail := &ValidationFailure{
		Kind: "InvalidPassword",
		Message: []string{
			"a valid password should not be alphanumeric",
			"a valid password should be 8 characters long",
			"an example of a valid password is alphamugerwa",
		},
	}

	s, ok := p.Password.(string)

	if !ok || !passwordIsStrong(s) {
		return fail
	}

	return nil
}

// passwordIsStrong requires at least eight characters with an uppercase
// letter, a lowercase letter, a digit and a symbol, and no whitespace.
// Underscore counts as a word character, not a symbol.
func passwordIsStrong(s string) bool {
	if utf8.RuneCountInString(s) < 8 {
		return false
	}

	var upper, lower, digit, symbol bool

	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
			return false
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case r != '_':
			symbol = true
		}
	}

	return upper && lower && digit && symbol
}
