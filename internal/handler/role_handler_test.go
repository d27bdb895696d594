package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/siakadku/siakad-backend/internal/model"
	"github.com/siakadku/siakad-backend/internal/service"
)

// stubRoleStore is the minimal in-memory store the handler tests need.
type stubRoleStore struct {
	nextID      int
	roles       map[int]*model.Role
	permissions map[int][]string
}

func newStubRoleStore() *stubRoleStore {
	return &stubRoleStore{nextID: 2, roles: map[int]*model.Role{}, permissions: map[int][]string{}}
}

func (s *stubRoleStore) ListRolesWithPermissions(ctx context.Context) ([]model.RoleWithPermissions, error) {
	var out []model.RoleWithPermissions
	for id, r := range s.roles {
		out = append(out, model.RoleWithPermissions{Role: r, Permissions: s.permissions[id]})
	}
	return out, nil
}

func (s *stubRoleStore) GetRoleByID(ctx context.Context, id int) (*model.RoleWithPermissions, error) {
	r, ok := s.roles[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return &model.RoleWithPermissions{Role: r, Permissions: s.permissions[id]}, nil
}

func (s *stubRoleStore) CreateRole(ctx context.Context, name, description string) (int, error) {
	id := s.nextID
	s.nextID++
	s.roles[id] = &model.Role{ID: id, Name: name, Description: description, CreatedAt: time.Now()}
	return id, nil
}

func (s *stubRoleStore) UpdateRole(ctx context.Context, id int, name, description string) error {
	r, ok := s.roles[id]
	if !ok {
		return errors.New("no rows in result set")
	}
	r.Name = name
	r.Description = description
	return nil
}

func (s *stubRoleStore) DeleteRole(ctx context.Context, id int) error {
	delete(s.roles, id)
	delete(s.permissions, id)
	return nil
}

func (s *stubRoleStore) DeleteAllPermissionsFromRole(ctx context.Context, roleID int) error {
	s.permissions[roleID] = nil
	return nil
}

func (s *stubRoleStore) AssignPermissionsToRole(ctx context.Context, roleID int, codes []string) error {
	s.permissions[roleID] = append(s.permissions[roleID], codes...)
	return nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRoleHandler(service.NewRoleService(newStubRoleStore()))

	r := gin.New()
	r.GET("/roles", h.ListRoles)
	r.POST("/roles", h.CreateRole)
	r.GET("/permissions", h.GetPermissions)
	r.GET("/permissions/defaults/:role", h.GetDefaultPermissions)
	r.POST("/permissions/summary", h.SummarizeSelection)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRoleRejectsEmptyPermissions(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/roles", `{"name":"Librarian","permissions":[]}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "PERMISSIONS_EMPTY") {
		t.Errorf("body should carry the permissions error code: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"permissions"`) {
		t.Errorf("error should identify the failing field: %s", w.Body.String())
	}
}

func TestCreateRoleRejectsEmptyName(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/roles", `{"name":"","permissions":["view_students"]}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "ROLE_NAME_REQUIRED") {
		t.Errorf("body should carry the name error code: %s", w.Body.String())
	}
}

func TestCreateRoleSuccess(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/roles", `{"name":"Librarian","description":"Manages library","permissions":["view_students"]}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var envelope struct {
		Data model.RoleWithPermissions `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID == 0 {
		t.Error("created role should have a non-empty id")
	}
	if len(envelope.Data.Permissions) != 1 || envelope.Data.Permissions[0] != "view_students" {
		t.Errorf("permissions = %v, want [view_students]", envelope.Data.Permissions)
	}
}

func TestGetPermissionsCatalog(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/permissions", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var envelope struct {
		Data []service.CategoryPermissions `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != len(model.Categories) {
		t.Fatalf("catalog has %d categories, want %d", len(envelope.Data), len(model.Categories))
	}
	if !strings.Contains(w.Body.String(), `"Manage Fees"`) {
		t.Errorf("catalog should carry derived labels: %s", w.Body.String())
	}
}

func TestGetDefaultPermissionsUnknownRole(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/permissions/defaults/librarian", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var envelope struct {
		Data struct {
			Permissions []string `json:"permissions"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Permissions) != 0 {
		t.Errorf("unknown role should yield an empty set, got %v", envelope.Data.Permissions)
	}
}

func TestSummarizeSelection(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/permissions/summary", `{"permissions":["view_fees"]}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var envelope struct {
		Data []service.CategorySummary `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	statuses := make(map[string]string)
	for _, s := range envelope.Data {
		statuses[s.Category] = string(s.Status)
	}
	if statuses["Fees"] != "some" {
		t.Errorf("Fees status = %q, want %q", statuses["Fees"], "some")
	}
	if statuses["Dashboard"] != "none" {
		t.Errorf("Dashboard status = %q, want %q", statuses["Dashboard"], "none")
	}
}
