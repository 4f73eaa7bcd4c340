package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := rec.Result()
	for _, ck := range res.Cookies() {
		if ck.Name == CookieName {
			return ck
		}
	}
	t.Fatalf("no %s cookie in response", CookieName)
	return nil
}

func TestCookieManager_Attach(t *testing.T) {
	m := NewCookieManager(true, 24*time.Hour)
	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/api/login", nil))

	m.Attach(c, "tok-abc")

	ck := responseCookie(t, rec)
	if ck.Value != "tok-abc" {
		t.Fatalf("expected token value, got %q", ck.Value)
	}
	if !ck.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
	if !ck.Secure {
		t.Fatalf("cookie must be Secure when configured")
	}
	if ck.Path != "/" {
		t.Fatalf("expected path /, got %q", ck.Path)
	}
	if ck.MaxAge != int((24 * time.Hour).Seconds()) {
		t.Fatalf("expected MaxAge 86400, got %d", ck.MaxAge)
	}
	if ck.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected SameSite=Lax, got %v", ck.SameSite)
	}
}

func TestCookieManager_Attach_InsecureDev(t *testing.T) {
	m := NewCookieManager(false, time.Hour)
	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/api/login", nil))

	m.Attach(c, "tok")

	if responseCookie(t, rec).Secure {
		t.Fatalf("secure flag must follow explicit configuration")
	}
}

func TestCookieManager_Clear(t *testing.T) {
	m := NewCookieManager(true, time.Hour)
	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/api/logout", nil))

	m.Clear(c)

	ck := responseCookie(t, rec)
	if ck.Value != "" {
		t.Fatalf("expected empty value, got %q", ck.Value)
	}
	if ck.MaxAge >= 0 {
		t.Fatalf("expected negative MaxAge, got %d", ck.MaxAge)
	}
	if !ck.Expires.Before(time.Now()) {
		t.Fatalf("expected expiry in the past, got %v", ck.Expires)
	}
}

func TestCookieManager_Read(t *testing.T) {
	m := NewCookieManager(true, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tok-xyz"})
	c, _ := newContext(req)

	got, ok := m.Read(c)
	if !ok || got != "tok-xyz" {
		t.Fatalf("expected tok-xyz, got %q (ok=%v)", got, ok)
	}
}

func TestCookieManager_Read_Absent(t *testing.T) {
	m := NewCookieManager(true, time.Hour)
	c, _ := newContext(httptest.NewRequest(http.MethodGet, "/home", nil))

	if _, ok := m.Read(c); ok {
		t.Fatalf("expected no cookie")
	}
}

func TestCookieManager_Read_Empty(t *testing.T) {
	m := NewCookieManager(true, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: ""})
	c, _ := newContext(req)

	if _, ok := m.Read(c); ok {
		t.Fatalf("empty cookie must read as absent")
	}
}
