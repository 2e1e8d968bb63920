package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/wanttogo/internal/logging"
	"github.com/dmitrijs2005/wanttogo/internal/server/auth"
	"github.com/dmitrijs2005/wanttogo/internal/server/catalog"
	"github.com/dmitrijs2005/wanttogo/internal/server/config"
	"github.com/dmitrijs2005/wanttogo/internal/server/models"
	"github.com/dmitrijs2005/wanttogo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/wanttogo/internal/server/services"
	"github.com/dmitrijs2005/wanttogo/internal/server/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cookieName = "wanttogo_session"

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type denyAll struct{}

func (denyAll) Allow(context.Context, string) bool { return false }

type testApp struct {
	srv     *Server
	handler http.Handler
	users   *services.UserService
	lists   *services.ListService
}

func newTestApp(t *testing.T, throttle auth.LoginThrottle, store Pinger) *testApp {
	t.Helper()
	return newTestAppWithSessions(t, throttle, store, sessions.NewMemoryStore())
}

func newTestAppWithSessions(t *testing.T, throttle auth.LoginThrottle, store Pinger, sessStore sessions.Store) *testApp {
	t.Helper()

	rm := repomanager.NewMemoryRepositoryManager()
	c, err := catalog.Default()
	require.NoError(t, err)

	sm := sessions.NewManager(sessStore, time.Hour, logging.Nop{})
	us := services.NewUserService(rm, auth.PlainHasher{}, sm, &config.Config{SecretKey: "k"}, logging.Nop{})
	ls := services.NewListService(rm, logging.Nop{})
	ds := services.NewDestinationService(c, ls, nil, logging.Nop{})

	if throttle == nil {
		throttle = auth.NewLoginThrottle(0)
	}

	srv, err := NewServer(Options{CookieName: cookieName, CookieTTL: time.Hour, RequestTimeout: time.Second},
		us, ls, ds, throttle, store, logging.Nop{})
	require.NoError(t, err)

	return &testApp{srv: srv, handler: srv.Handler(), users: us, lists: ls}
}

func (a *testApp) do(t *testing.T, method, target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	return nil
}

func (a *testApp) registerAndLogin(t *testing.T, user, pass string) *http.Cookie {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/register", url.Values{"username": {user}, "password": {pass}}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = a.do(t, http.MethodPost, "/login", url.Values{"username": {user}, "password": {pass}}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	c := sessionCookie(rec)
	require.NotNil(t, c)
	return c
}

func TestRoot_RedirectsToLogin(t *testing.T) {
	app := newTestApp(t, nil, nil)

	rec := app.do(t, http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestHealth(t *testing.T) {
	rec := newTestApp(t, nil, fakePinger{}).do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = newTestApp(t, nil, fakePinger{err: errors.New("down")}).do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
}

func TestRegister(t *testing.T) {
	app := newTestApp(t, nil, nil)

	rec := app.do(t, http.MethodGet, "/register", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/register"`)

	rec = app.do(t, http.MethodPost, "/register", url.Values{"username": {"alice"}, "password": {"pw1"}}, nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?registered=true", rec.Header().Get("Location"))

	rec = app.do(t, http.MethodPost, "/register", url.Values{"username": {"alice"}, "password": {"pw2"}}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgUsernameTaken)

	rec = app.do(t, http.MethodPost, "/register", url.Values{"username": {"  "}, "password": {"pw"}}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username and password cannot be empty")
}

func TestLoginForm_RegisteredMessage(t *testing.T) {
	app := newTestApp(t, nil, nil)

	rec := app.do(t, http.MethodGet, "/login?registered=true", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgRegistered)

	rec = app.do(t, http.MethodGet, "/login", nil, nil)
	assert.NotContains(t, rec.Body.String(), msgRegistered)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t, nil, nil)
	c := app.registerAndLogin(t, "alice", "pw1")

	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, 3600, c.MaxAge)

	rec := app.do(t, http.MethodPost, "/login", url.Values{"username": {"alice"}, "password": {"pw2"}}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
	assert.Nil(t, sessionCookie(rec))
}

func TestLogin_Throttled(t *testing.T) {
	app := newTestApp(t, denyAll{}, nil)

	rec := app.do(t, http.MethodPost, "/login", url.Values{"username": {"alice"}, "password": {"pw1"}}, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many login attempts")
}

func TestProtectedRoutes_RedirectWithoutSession(t *testing.T) {
	app := newTestApp(t, nil, nil)

	valid := app.registerAndLogin(t, "alice", "pw1")
	sess, err := app.users.ResolveToken(context.Background(), valid.Value)
	require.NoError(t, err)

	tampered := &http.Cookie{Name: cookieName, Value: valid.Value + "x"}
	bogus := &http.Cookie{Name: cookieName, Value: "not-a-token"}
	for _, c := range []*http.Cookie{nil, bogus, tampered} {
		for _, tc := range []struct{ method, target string }{
			{http.MethodGet, "/home"},
			{http.MethodGet, "/destination/paris"},
			{http.MethodGet, "/want-to-go-list"},
			{http.MethodPost, "/add-to-list"},
		} {
			var form url.Values
			if tc.method == http.MethodPost {
				form = url.Values{"destinationName": {"Paris"}}
			}
			rec := app.do(t, tc.method, tc.target, form, c)
			assert.Equal(t, http.StatusFound, rec.Code, tc.target)
			assert.Equal(t, "/login", rec.Header().Get("Location"), tc.target)
		}
	}

	list, err := app.lists.ListFor(context.Background(), sess.UserID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

// unreadableSessions accepts writes but fails every lookup.
type unreadableSessions struct{ *sessions.MemoryStore }

func (unreadableSessions) Get(context.Context, string) (*models.Session, bool, error) {
	return nil, false, errors.New("session store offline")
}

func TestProtectedRoutes_SessionStoreFailure(t *testing.T) {
	app := newTestAppWithSessions(t, nil, nil, unreadableSessions{sessions.NewMemoryStore()})
	c := app.registerAndLogin(t, "alice", "pw1")

	rec := app.do(t, http.MethodGet, "/want-to-go-list", nil, c)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Contains(t, rec.Body.String(), msgSomethingWrong)
}

func TestHome(t *testing.T) {
	app := newTestApp(t, nil, nil)
	c := app.registerAndLogin(t, "alice", "pw1")

	rec := app.do(t, http.MethodGet, "/home", nil, c)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Welcome, alice!")
	assert.Contains(t, body, `href="/destination/swiss-alps"`)
}

func TestDestination(t *testing.T) {
	app := newTestApp(t, nil, nil)
	c := app.registerAndLogin(t, "alice", "pw1")

	rec := app.do(t, http.MethodGet, "/destination/PARIS", nil, c)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Paris</h1>")
	assert.Contains(t, body, "France")
	assert.Contains(t, body, "https://www.youtube.com/embed/AQ6GmpMu5L8")
	assert.Contains(t, body, `name="destinationName" value="Paris"`)

	rec = app.do(t, http.MethodGet, "/destination/atlantis", nil, c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), msgNotFound)

	rec = app.do(t, http.MethodGet, "/destination/paris?error=already", nil, c)
	assert.Contains(t, rec.Body.String(), msgAlreadyInList)

	rec = app.do(t, http.MethodGet, "/destination/paris?success=added", nil, c)
	assert.Contains(t, rec.Body.String(), msgAdded)
}

func TestAddToList(t *testing.T) {
	app := newTestApp(t, nil, nil)
	c := app.registerAndLogin(t, "alice", "pw1")

	add := url.Values{"destinationName": {"Swiss Alps"}}

	rec := app.do(t, http.MethodPost, "/add-to-list", add, c)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/destination/swiss-alps?success=added", rec.Header().Get("Location"))

	rec = app.do(t, http.MethodPost, "/add-to-list", add, c)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/destination/swiss-alps?error=already", rec.Header().Get("Location"))

	rec = app.do(t, http.MethodGet, "/destination/swiss-alps", nil, c)
	assert.Contains(t, rec.Body.String(), "This destination is on your want-to-go list.")
	assert.NotContains(t, rec.Body.String(), `action="/add-to-list"`)

	rec = app.do(t, http.MethodPost, "/add-to-list", url.Values{"destinationName": {"Atlantis"}}, c)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodGet, "/want-to-go-list", nil, c)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 1, strings.Count(body, ">Swiss Alps</a>"))
	assert.Contains(t, body, `href="/destination/swiss-alps"`)
}

func TestWantToGoList_Empty(t *testing.T) {
	app := newTestApp(t, nil, nil)
	c := app.registerAndLogin(t, "alice", "pw1")

	rec := app.do(t, http.MethodGet, "/want-to-go-list", nil, c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your list is empty.")
}

func TestLogout(t *testing.T) {
	app := newTestApp(t, nil, nil)
	c := app.registerAndLogin(t, "alice", "pw1")

	rec := app.do(t, http.MethodPost, "/logout", nil, c)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	cleared := sessionCookie(rec)
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)

	rec = app.do(t, http.MethodGet, "/home", nil, c)
	assert.Equal(t, http.StatusFound, rec.Code)

	rec = app.do(t, http.MethodPost, "/logout", nil, nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	app := newTestApp(t, nil, nil)

	listen, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.srv.Serve(ctx, listen) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + listen.Addr().String() + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
