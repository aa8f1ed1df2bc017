package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shizuku355/suiquest-jp/internal/domain"
	"github.com/shizuku355/suiquest-jp/internal/dto"
	"github.com/shizuku355/suiquest-jp/pkg/middleware"
)

type stubAdminService struct {
	createCall *dto.MoveCall
	createErr  error
	updateCall *dto.MoveCall
	updateErr  error
}

func (s *stubAdminService) PrepareCreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.MoveCall, error) {
	return s.createCall, s.createErr
}

func (s *stubAdminService) PrepareUpdateEvent(ctx context.Context, eventID string, req *dto.UpdateEventRequest) (*dto.MoveCall, error) {
	return s.updateCall, s.updateErr
}

func adminRouter(svc *stubAdminService, admins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewAdminHandler(svc)
	group := router.Group("/api/v1/admin")
	group.Use(middleware.WalletAddress(&middleware.WalletConfig{Required: true}))
	group.Use(middleware.RequireAdmin(&middleware.AdminConfig{Addresses: admins}))
	group.POST("/events", h.CreateEvent)
	group.PUT("/events/:id", h.UpdateEvent)
	return router
}

const validCreateBody = `{"name":"Nagoya Rally","slug":"nagoya","start_ms":1000,"end_ms":2000,"cap":100}`

func TestCreateEventAsAdmin(t *testing.T) {
	svc := &stubAdminService{
		createCall: &dto.MoveCall{PackageID: "0xpkg", Module: "core", Function: "create_event"},
	}
	router := adminRouter(svc, []string{"0xadmin"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events", strings.NewReader(validCreateBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.WalletAddressHeader, "0xADMIN")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateEventRejectsNonAdmin(t *testing.T) {
	svc := &stubAdminService{}
	router := adminRouter(svc, []string{"0xadmin"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events", strings.NewReader(validCreateBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.WalletAddressHeader, "0xsomeoneelse")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestCreateEventRejectsMissingWallet(t *testing.T) {
	svc := &stubAdminService{}
	router := adminRouter(svc, []string{"0xadmin"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events", strings.NewReader(validCreateBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestCreateEventValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "start after end", body: `{"name":"X","slug":"x","start_ms":3000,"end_ms":2000,"cap":100}`},
		{name: "zero cap", body: `{"name":"X","slug":"x","start_ms":1000,"end_ms":2000,"cap":0}`},
		{name: "missing name", body: `{"slug":"x","start_ms":1000,"end_ms":2000,"cap":100}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubAdminService{}
			router := adminRouter(svc, []string{"0xadmin"})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(middleware.WalletAddressHeader, "0xadmin")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateEventDuplicateSlug(t *testing.T) {
	svc := &stubAdminService{createErr: domain.ErrSlugTaken}
	router := adminRouter(svc, []string{"0xadmin"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events", strings.NewReader(validCreateBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.WalletAddressHeader, "0xadmin")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}

	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp.Error.Code != "SLUG_TAKEN" {
		t.Errorf("expected SLUG_TAKEN, got %s", resp.Error.Code)
	}
	if resp.Error.Message != domain.ErrSlugTaken.Error() {
		t.Errorf("expected sentinel message, got %q", resp.Error.Message)
	}
}

func TestUpdateEventAsAdmin(t *testing.T) {
	svc := &stubAdminService{
		updateCall: &dto.MoveCall{PackageID: "0xpkg", Module: "core", Function: "update_event_details"},
	}
	router := adminRouter(svc, []string{"0xadmin"})

	body := strings.NewReader(`{"name":"Tokyo Rally 2025"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/events/0xa", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.WalletAddressHeader, "0xadmin")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	svc := &stubAdminService{updateErr: domain.ErrEventNotFound}
	router := adminRouter(svc, []string{"0xadmin"})

	body := strings.NewReader(`{"name":"Ghost"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/events/0xgone", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.WalletAddressHeader, "0xadmin")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
