package handlers_test

import (
	"net/http"
	"testing"

	"recolecta-api/models"

	"github.com/gin-gonic/gin"
)

func TestRegisterAndLogin(t *testing.T) {
	r := setupServer(t)

	w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ana", "email": "ana@example.com", "password": "secret123", "role": "COLLECTOR",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeMap(t, w)
	if body["email"] != "ana@example.com" || body["role"] != "COLLECTOR" {
		t.Fatalf("unexpected register response: %v", body)
	}
	if body["id"] == "" || body["id"] == nil {
		t.Fatal("expected an id in register response")
	}
	if _, hasToken := body["token"]; hasToken {
		t.Fatal("register must not issue a session token")
	}

	w = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ana@example.com", "password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	login := decodeMap(t, w)
	if login["token"] == "" || login["role"] != "COLLECTOR" || login["userId"] != body["id"] {
		t.Fatalf("unexpected login response: %v", login)
	}

	token, _ := login["token"].(string)
	w = do(t, r, http.MethodGet, "/api/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterValidation(t *testing.T) {
	r := setupServer(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing name", gin.H{"email": "a@b.com", "password": "secret123", "role": "BUYER"}},
		{"missing email", gin.H{"name": "A", "password": "secret123", "role": "BUYER"}},
		{"missing password", gin.H{"name": "A", "email": "a@b.com", "role": "BUYER"}},
		{"missing role", gin.H{"name": "A", "email": "a@b.com", "password": "secret123"}},
		{"unknown role", gin.H{"name": "A", "email": "a@b.com", "password": "secret123", "role": "WIZARD"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/auth/register", "", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupServer(t)

	first := gin.H{"name": "Ana", "email": "dup@example.com", "password": "secret123", "role": "COLLECTOR"}
	if w := do(t, r, http.MethodPost, "/api/auth/register", "", first); w.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", w.Code)
	}

	// Conflict regardless of differing password and role
	second := gin.H{"name": "Eva", "email": "dup@example.com", "password": "otherpass", "role": "BUYER"}
	w := do(t, r, http.MethodPost, "/api/auth/register", "", second)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r := setupServer(t)
	signup(t, r, "Ana", "ana@example.com", models.RoleBuyer)

	unknown := do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ghost@example.com", "password": "secret123",
	})
	wrongPass := do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ana@example.com", "password": "wrong-password",
	})

	if unknown.Code != http.StatusUnauthorized || wrongPass.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", unknown.Code, wrongPass.Code)
	}
	if unknown.Body.String() != wrongPass.Body.String() {
		t.Fatalf("login failures must be indistinguishable: %q vs %q",
			unknown.Body.String(), wrongPass.Body.String())
	}
}

func TestRoleGates(t *testing.T) {
	r := setupServer(t)
	buyer := signup(t, r, "Bea", "bea@example.com", models.RoleBuyer)
	collector := signup(t, r, "Carlos", "carlos@example.com", models.RoleCollector)

	// Missing token → 401
	if w := do(t, r, http.MethodGet, "/api/recolector/products", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	// Wrong role → 403
	if w := do(t, r, http.MethodGet, "/api/recolector/products", buyer, nil); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/admin/products", collector, nil); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/api/orders", collector, gin.H{"address": "x", "items": []gin.H{}}); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestAdminListUsers(t *testing.T) {
	r := setupServer(t)
	signup(t, r, "Ana", "ana@example.com", models.RoleCollector)
	signup(t, r, "Bea", "bea@example.com", models.RoleBuyer)
	admin := signup(t, r, "Root", "root@example.com", models.RoleAdmin)

	w := do(t, r, http.MethodGet, "/api/admin/users", admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	users := decodeList(t, w)
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	for _, u := range users {
		if _, leaked := u["passwordHash"]; leaked {
			t.Fatal("password hash must never be serialized")
		}
	}

	w = do(t, r, http.MethodGet, "/api/admin/users?role=BUYER", admin, nil)
	if got := decodeList(t, w); len(got) != 1 || got[0]["email"] != "bea@example.com" {
		t.Fatalf("expected only the buyer, got %v", got)
	}
}
