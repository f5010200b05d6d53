package middlewares_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/alphamugerwa/authorshaven/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	wantMissingMsg = "a valid email, username and password are required"
	wantEmailMsg   = "please enter a valid email address e.g martinez@yahoo.com"
)

var wantUsernameLines = []any{
	"username should have more than 2 characters",
	"username should not have more than 15 characters",
	"username should not be numeric",
	"example of a valid username is alpha123",
}

var wantPasswordLines = []any{
	"a valid password should not be alphanumeric",
	"a valid password should be 8 characters long",
	"an example of a valid password is alphamugerwa",
}

// newValidationRouter mounts the middleware in front of a probe handler that
// records whether control was forwarded and what body it could still read.
func newValidationRouter(forwarded *bool, forwardedBody *string) *gin.Engine {
	r := gin.New()

	r.POST("/users", middlewares.ValidateCreateUser(), func(c *gin.Context) {
		*forwarded = true

		raw, _ := io.ReadAll(c.Request.Body)
		*forwardedBody = string(raw)

		c.Status(http.StatusCreated)
	})

	return r
}

func postUsers(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func errorField(t *testing.T, w *httptest.ResponseRecorder) any {
	t.Helper()

	var resp map[string]any

	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v body=%s", err, w.Body.String())
	}

	errVal, ok := resp["error"]

	if !ok {
		t.Fatalf("response has no error field: %s", w.Body.String())
	}

	return errVal
}

func TestValidateCreateUser_Failures(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError any
	}{
		{
			name:      "all fields absent",
			body:      `{}`,
			wantError: wantMissingMsg,
		},
		{
			name:      "username null",
			body:      `{"username":null,"email":"martinez@yahoo.com","password":"Alpha123!"}`,
			wantError: wantMissingMsg,
		},
		{
			name:      "password absent",
			body:      `{"username":"jdoe","email":"martinez@yahoo.com"}`,
			wantError: wantMissingMsg,
		},
		{
			name:      "unparseable body",
			body:      `{not json`,
			wantError: wantMissingMsg,
		},
		{
			name:      "missing field outranks bad username",
			body:      `{"username":"x","password":"Alpha123!"}`,
			wantError: wantMissingMsg,
		},
		{
			name:      "username too short",
			body:      `{"username":"jd","email":"martinez@yahoo.com","password":"Alpha123!"}`,
			wantError: wantUsernameLines,
		},
		{
			name:      "username empty string",
			body:      `{"username":"","email":"martinez@yahoo.com","password":"Alpha123!"}`,
			wantError: wantUsernameLines,
		},
		{
			name:      "username too long",
			body:      `{"username":"abcdefghijklmnop","email":"martinez@yahoo.com","password":"Alpha123!"}`,
			wantError: wantUsernameLines,
		},
		{
			name:      "username numeric",
			body:      `{"username":12345,"email":"martinez@yahoo.com","password":"Alpha123!"}`,
			wantError: wantUsernameLines,
		},
		{
			name:      "bad username outranks bad email",
			body:      `{"username":"jd","email":"martinez@@yahoo","password":"Alpha123!"}`,
			wantError: wantUsernameLines,
		},
		{
			name:      "email double at",
			body:      `{"username":"jdoe","email":"martinez@@yahoo","password":"Alpha123!"}`,
			wantError: wantEmailMsg,
		},
		{
			name:      "email no tld shape",
			body:      `{"username":"jdoe","email":"martinez","password":"Alpha123!"}`,
			wantError: wantEmailMsg,
		},
		{
			name:      "email numeric value",
			body:      `{"username":"jdoe","email":42,"password":"Alpha123!"}`,
			wantError: wantEmailMsg,
		},
		{
			name:      "bad email outranks bad password",
			body:      `{"username":"jdoe","email":"martinez@@yahoo","password":"weak"}`,
			wantError: wantEmailMsg,
		},
		{
			name:      "password all lowercase",
			body:      `{"username":"jdoe","email":"martinez@yahoo.com","password":"alphamugerwa"}`,
			wantError: wantPasswordLines,
		},
		{
			name:      "password too short",
			body:      `{"username":"jdoe","email":"martinez@yahoo.com","password":"Alph1!"}`,
			wantError: wantPasswordLines,
		},
		{
			name:      "password no digit",
			body:      `{"username":"jdoe","email":"martinez@yahoo.com","password":"Alphabet!"}`,
			wantError: wantPasswordLines,
		},
		{
			name:      "password no symbol",
			body:      `{"username":"jdoe","email":"martinez@yahoo.com","password":"Alpha1234"}`,
			wantError: wantPasswordLines,
		},
		{
			name:      "underscore is not a symbol",
			body:      `{"username":"jdoe","email":"martinez@yahoo.com","password":"Alpha_1234"}`,
			wantError: wantPasswordLines,
		},
		{
			name:      "password with whitespace",
			body:      `{"username":"jdoe","email":"martinez@yahoo.com","password":"Alpha 123!"}`,
			wantError: wantPasswordLines,
		},
		{
			name:      "password no uppercase",
			body:      `{"username":"jdoe","email":"martinez@yahoo.com","password":"alpha123!"}`,
			wantError: wantPasswordLines,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forwarded := false
			forwardedBody := ""

			r := newValidationRouter(&forwarded, &forwardedBody)
			w := postUsers(t, r, tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
			}

			if forwarded {
				t.Fatal("request was forwarded past a failing validation")
			}

			got := errorField(t, w)

			if !reflect.DeepEqual(got, tt.wantError) {
				t.Fatalf("got error %#v, want %#v", got, tt.wantError)
			}
		})
	}
}

func TestValidateCreateUser_PassThrough(t *testing.T) {
	body := `{"username":"jdoe","email":"martinez@yahoo.com","password":"Alpha123!"}`

	forwarded := false
	forwardedBody := ""

	r := newValidationRouter(&forwarded, &forwardedBody)
	w := postUsers(t, r, body)

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusCreated, w.Body.String())
	}

	if !forwarded {
		t.Fatal("request was not forwarded")
	}

	// the body must reach the next handler untouched

	if forwardedBody != body {
		t.Fatalf("forwarded body changed: got %q want %q", forwardedBody, body)
	}
}
