package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"recolecta-api/config"
	"recolecta-api/models"
	"recolecta-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupServer wires a fresh in-memory database and a full router for
// one test. Each test gets its own database.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := config.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return m
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var l []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &l); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return l
}

// signup registers a user and logs in, returning the session token.
func signup(t *testing.T, r *gin.Engine, name, email string, role models.UserRole) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": "secret123", "role": role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", email, w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", email, w.Code, w.Body.String())
	}
	token, _ := decodeMap(t, w)["token"].(string)
	if token == "" {
		t.Fatalf("login %s: no token in response", email)
	}
	return token
}

// createProduct creates a PENDING listing and returns its id.
func createProduct(t *testing.T, r *gin.Engine, token string, fields gin.H) string {
	t.Helper()
	body := gin.H{
		"name": "Cacao", "type": "grano", "quantityKg": 50,
		"priceSoles": 120, "region": "Cusco", "photos": []string{},
	}
	for k, v := range fields {
		body[k] = v
	}
	w := do(t, r, http.MethodPost, "/api/products", token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create product: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	id, _ := decodeMap(t, w)["id"].(string)
	if id == "" {
		t.Fatal("create product: no id in response")
	}
	return id
}

func approveProduct(t *testing.T, r *gin.Engine, adminToken, id string, approved bool) {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/products/"+id+"/approve", adminToken, gin.H{"approved": approved})
	if w.Code != http.StatusOK {
		t.Fatalf("approve product: expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func publishProduct(t *testing.T, r *gin.Engine, token, id string) {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/products/"+id+"/publish", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("publish product: expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func productStatus(t *testing.T, id string) models.ProductStatus {
	t.Helper()
	var product models.Product
	if err := config.DB.First(&product, "id = ?", id).Error; err != nil {
		t.Fatalf("load product %s: %v", id, err)
	}
	return product.Status
}
