package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ai-scheduler/config"
	"ai-scheduler/internal/auth"
	"ai-scheduler/internal/middleware"
	"ai-scheduler/internal/model"
	"ai-scheduler/pkg/encrypter"
	"ai-scheduler/pkg/log"
)

type mockUseCase struct {
	callbackOut auth.CallbackOutput
	callbackErr error
	meOut       auth.MeOutput
	meErr       error
	gotInput    auth.CallbackInput
	gotScope    model.Scope
}

func (m *mockUseCase) Start(ctx context.Context) (auth.StartOutput, error) {
	return auth.StartOutput{URL: "https://accounts.example.com/auth?state=s1", State: "s1"}, nil
}

func (m *mockUseCase) Callback(ctx context.Context, input auth.CallbackInput) (auth.CallbackOutput, error) {
	m.gotInput = input
	return m.callbackOut, m.callbackErr
}

func (m *mockUseCase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	m.gotScope = sc
	return m.meOut, m.meErr
}

func newTestRouter(t *testing.T, uc auth.UseCase) (*gin.Engine, encrypter.Encrypter) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	key, _ := encrypter.GenerateKey()
	enc, err := encrypter.New(key)
	if err != nil {
		t.Fatalf("encrypter.New: %v", err)
	}
	mw := middleware.New(log.NewNop(), config.CookieConfig{Name: "user_id", MaxAge: 60, SameSite: "lax"}, enc, nil, 0)

	r := gin.New()
	RegisterRoutes(r.Group("/auth"), New(log.NewNop(), uc, mw, "http://app.local/"), mw)
	return r, enc
}

func TestStart(t *testing.T) {
	r, _ := newTestRouter(t, &mockUseCase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/start", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Data startResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(body.Data.URL, "state=s1") {
		t.Errorf("url = %q", body.Data.URL)
	}
}

func TestCallback_SetsCookieAndRedirects(t *testing.T) {
	uc := &mockUseCase{callbackOut: auth.CallbackOutput{User: model.User{ID: "user-7"}}}
	r, enc := newTestRouter(t, uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=s1", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "http://app.local/" {
		t.Errorf("Location = %q", loc)
	}
	if uc.gotInput.Code != "abc" || uc.gotInput.State != "s1" {
		t.Errorf("input = %+v", uc.gotInput)
	}

	resp := w.Result()
	var session *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "user_id" {
			session = ck
		}
	}
	if session == nil {
		t.Fatal("session cookie not set")
	}
	if !session.HttpOnly {
		t.Error("cookie should be HttpOnly")
	}
	got, err := enc.DecryptString(session.Value)
	if err != nil || got != "user-7" {
		t.Errorf("cookie decrypts to %q, %v", got, err)
	}
}

func TestCallback_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"missing code", auth.ErrMissingCode, http.StatusBadRequest},
		{"bad state", auth.ErrInvalidState, http.StatusBadRequest},
		{"exchange", auth.ErrExchangeFailed, http.StatusBadGateway},
		{"unknown", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(t, &mockUseCase{callbackErr: tt.err})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/callback?state=x", nil))
			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}

func TestMe(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		r, _ := newTestRouter(t, &mockUseCase{meErr: auth.ErrNotAuthenticated})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"authenticated":false`) {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("signed in", func(t *testing.T) {
		uc := &mockUseCase{meOut: auth.MeOutput{Email: "me@example.com"}}
		r, enc := newTestRouter(t, uc)
		sealed, _ := enc.EncryptString("user-9")

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: "user_id", Value: sealed})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if uc.gotScope.UserID != "user-9" {
			t.Errorf("scope = %+v", uc.gotScope)
		}
		var body struct {
			Data meResp `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if !body.Data.Authenticated || body.Data.Email != "me@example.com" {
			t.Errorf("data = %+v", body.Data)
		}
	})
}

func TestLogout_ExpiresCookie(t *testing.T) {
	r, _ := newTestRouter(t, &mockUseCase{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if sc := w.Header().Get("Set-Cookie"); !strings.Contains(sc, "user_id=;") || !strings.Contains(sc, "Max-Age=0") {
		t.Errorf("Set-Cookie = %q", sc)
	}
}
