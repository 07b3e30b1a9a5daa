package weberror

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "github.com/ezmnysniper7/portfolio/internal/platform/errors"
	platformi18n "github.com/ezmnysniper7/portfolio/internal/platform/i18n"
	_ "github.com/ezmnysniper7/portfolio/internal/platform/i18n/catalog"
	module "github.com/ezmnysniper7/portfolio/internal/services/web/module"
	apperrors "github.com/ezmnysniper7/portfolio/internal/services/web/platform/errors"
	webi18n "github.com/ezmnysniper7/portfolio/internal/services/web/platform/i18n"
)

func TestShouldRenderAppError(t *testing.T) {
	t.Parallel()

	tests := map[int]bool{
		http.StatusBadRequest:          false,
		http.StatusNotFound:            true,
		http.StatusInternalServerError: true,
		http.StatusServiceUnavailable:  true,
	}
	for status, want := range tests {
		if got := ShouldRenderAppError(status); got != want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestPublicMessageUsesLocalizationKey(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(platformi18n.SimplifiedChinese)
	err := domainerrors.New(domainerrors.CodeContactInvalidEmail, "email does not match")
	if got := PublicMessage(loc, err); got != "邮箱地址无效" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "邮箱地址无效")
	}
}

func TestPublicMessageFallsBackToStatusText(t *testing.T) {
	t.Parallel()

	if got := PublicMessage(nil, errors.New("db exploded")); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(nil, apperrors.E(apperrors.KindInvalidInput, "bad")); got != http.StatusText(http.StatusBadRequest) {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(nil, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q, want empty", got)
	}
}

func TestWriteAppErrorRendersLocalizedPage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/zh-CN/projects/missing", nil)
	req = req.WithContext(webi18n.WithLocale(req.Context(), platformi18n.SimplifiedChinese))
	rr := httptest.NewRecorder()
	WriteAppError(rr, req, http.StatusNotFound, module.Dependencies{})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if body := rr.Body.String(); !strings.Contains(body, "页面未找到") {
		t.Fatalf("body missing localized title: %q", body)
	}
}

func TestWriteAppErrorCoercesNonPageStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/en/", nil), http.StatusTeapot, module.Dependencies{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestWriteModuleErrorWritesPlainTextForClientErrors(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	err := apperrors.EK(apperrors.KindInvalidInput, "errors.contact.required", "missing")
	WriteModuleError(rr, httptest.NewRequest(http.MethodGet, "/en/", nil), err, module.Dependencies{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "All fields are required" {
		t.Fatalf("body = %q", got)
	}
}

func TestWriteJSONErrorMapsDomainErrors(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	err := domainerrors.New(domainerrors.CodeContactRelayUnconfigured, "no api key")
	WriteJSONError(rr, httptest.NewRequest(http.MethodPost, "/api/contact", nil), err)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	var payload map[string]string
	if decodeErr := json.NewDecoder(rr.Body).Decode(&payload); decodeErr != nil {
		t.Fatalf("decode body: %v", decodeErr)
	}
	if payload["error"] != "Email service not configured" {
		t.Fatalf("error = %q", payload["error"])
	}
}

func TestNotFoundHandler(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NotFound(module.Dependencies{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "Page not found") {
		t.Fatalf("body missing not-found copy")
	}
}
