package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func authRequest(t *testing.T, mw func(http.Handler) http.Handler, path, header string) *httptest.ResponseRecorder {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)
	return rr
}

func TestBearerAuth_Disabled(t *testing.T) {
	mw := BearerAuthMiddleware(nil)
	if rr := authRequest(t, mw, "/api/search", ""); rr.Code != http.StatusOK {
		t.Errorf("empty key list must disable auth, got %d", rr.Code)
	}
}

func TestBearerAuth_ValidToken(t *testing.T) {
	mw := BearerAuthMiddleware([]string{"secret-1", "secret-2"})
	if rr := authRequest(t, mw, "/api/search", "Bearer secret-2"); rr.Code != http.StatusOK {
		t.Errorf("valid token rejected: %d", rr.Code)
	}
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	mw := BearerAuthMiddleware([]string{"secret"})
	rr := authRequest(t, mw, "/api/search", "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("missing header must 401, got %d", rr.Code)
	}
	var resp map[string]string
	decode(t, rr, &resp)
	if resp["error"] == "" {
		t.Error("401 response must carry an error message")
	}
}

func TestBearerAuth_WrongScheme(t *testing.T) {
	mw := BearerAuthMiddleware([]string{"secret"})
	if rr := authRequest(t, mw, "/api/search", "Basic c2VjcmV0"); rr.Code != http.StatusUnauthorized {
		t.Errorf("non-Bearer scheme must 401, got %d", rr.Code)
	}
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	mw := BearerAuthMiddleware([]string{"secret"})
	if rr := authRequest(t, mw, "/api/search", "Bearer wrong"); rr.Code != http.StatusUnauthorized {
		t.Errorf("invalid token must 401, got %d", rr.Code)
	}
}

func TestBearerAuth_ExemptPaths(t *testing.T) {
	mw := BearerAuthMiddleware([]string{"secret"})
	for _, path := range []string{"/health", "/metrics"} {
		if rr := authRequest(t, mw, path, ""); rr.Code != http.StatusOK {
			t.Errorf("%s must bypass auth, got %d", path, rr.Code)
		}
	}
}

func TestBearerAuth_EmptyKeysFiltered(t *testing.T) {
	// Blank entries in the key list must not become valid tokens.
	mw := BearerAuthMiddleware([]string{"", "secret"})
	if rr := authRequest(t, mw, "/api/search", "Bearer "); rr.Code != http.StatusUnauthorized {
		t.Errorf("empty token must 401, got %d", rr.Code)
	}
}
