package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alphamugerwa/authorshaven/internal/domain/user"
	"github.com/alphamugerwa/authorshaven/internal/http/handlers"
	"github.com/alphamugerwa/authorshaven/internal/security"
	"github.com/gin-gonic/gin"
)

func postCreateUser(t *testing.T, store *fakeUserStore, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := handlers.NewUsersHandler(store)

	r := gin.New()
	r.POST("/users", h.CreateUser)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestCreateUser_Success(t *testing.T) {
	var created user.User

	store := &fakeUserStore{
		createFn: func(ctx context.Context, u user.User) (user.User, error) {
			created = u
			return u, nil
		},
	}

	w := postCreateUser(t, store, `{"username":"jdoe","email":"martinez@yahoo.com","password":"Alpha123!"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201, body=%s", w.Code, w.Body.String())
	}

	if created.ID == "" {
		t.Fatal("no id assigned to new user")
	}

	// the password is stored hashed, never verbatim

	if created.PasswordHash == "Alpha123!" || created.PasswordHash == "" {
		t.Fatalf("password not hashed: %q", created.PasswordHash)
	}
	if err := security.CheckPassword(created.PasswordHash, "Alpha123!"); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	var resp struct {
		Message string            `json:"message"`
		User    map[string]string `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.User["username"] != "jdoe" || resp.User["email"] != "martinez@yahoo.com" {
		t.Fatalf("unexpected created user: %s", w.Body.String())
	}
	if _, ok := resp.User["password"]; ok {
		t.Fatalf("response leaked password: %s", w.Body.String())
	}
}

func TestCreateUser_Duplicate(t *testing.T) {
	store := &fakeUserStore{
		createFn: func(ctx context.Context, u user.User) (user.User, error) {
			return user.User{}, user.ErrDuplicate
		},
	}

	w := postCreateUser(t, store, `{"username":"jdoe","email":"martinez@yahoo.com","password":"Alpha123!"}`)

	if w.Code != http.StatusConflict {
		t.Fatalf("got status %d, want 409, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != "username or email is already taken" {
		t.Fatalf("unexpected error: %q", resp.Error)
	}
}

func TestCreateUser_StoreFailure(t *testing.T) {
	store := &fakeUserStore{
		createFn: func(ctx context.Context, u user.User) (user.User, error) {
			return user.User{}, errors.New("pq: out of disk")
		},
	}

	w := postCreateUser(t, store, `{"username":"jdoe","email":"martinez@yahoo.com","password":"Alpha123!"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != "Failed to create user" {
		t.Fatalf("unexpected error: %q", resp.Error)
	}
}
