package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/wanttogo/internal/common"
	"github.com/dmitrijs2005/wanttogo/internal/server/sessions"
)

// requireSession lets a request through only if its cookie resolves to a
// live session, which it places in the request context. Requests without
// one are sent to the login page; store failures get the error page.
func (s *Server) requireSession(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.users.ResolveToken(r.Context(), s.sessionToken(r))
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		case err != nil:
			s.serverError(w, r, err)
			return
		}
		next(w, r.WithContext(sessions.WithSession(r.Context(), sess)))
	})
}

func (s *Server) sessionToken(r *http.Request) string {
	c, err := r.Cookie(s.cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
