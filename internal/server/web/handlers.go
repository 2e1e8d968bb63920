package web

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/wanttogo/internal/common"
	"github.com/dmitrijs2005/wanttogo/internal/server/catalog"
	"github.com/dmitrijs2005/wanttogo/internal/server/models"
	"github.com/dmitrijs2005/wanttogo/internal/server/sessions"
)

const (
	msgRegistered     = "Registration successful! Please login."
	msgUsernameTaken  = "Username already in DB"
	msgTooManyLogins  = "Too many login attempts, please wait a minute and try again."
	msgAlreadyInList  = "This destination is already in your want-to-go list!"
	msgAdded          = "Successfully added to your want-to-go list!"
	msgNotFound       = "Destination not found"
	msgSomethingWrong = "Something went wrong, please try again later."
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status, code := "ok", http.StatusOK
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			s.logger.Warn(r.Context(), "health check failed", "error", err)
			status, code = "unavailable", http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "register", pageData{Title: "Register"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	username, password := r.PostFormValue("username"), r.PostFormValue("password")

	_, err := s.users.Register(r.Context(), username, password)
	if err != nil {
		data := pageData{Title: "Register", Form: formValues{UserName: username}}
		switch {
		case errors.Is(err, common.ErrorValidation):
			data.Error = "Username and password cannot be empty"
		case errors.Is(err, common.ErrorUsernameTaken):
			data.Error = msgUsernameTaken
		default:
			s.serverError(w, r, err)
			return
		}
		s.render(w, r, http.StatusOK, "register", data)
		return
	}

	http.Redirect(w, r, "/login?registered=true", http.StatusSeeOther)
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Login"}
	if r.URL.Query().Get("registered") == "true" {
		data.Success = msgRegistered
	}
	s.render(w, r, http.StatusOK, "login", data)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.throttle.Allow(r.Context(), clientKey(r)) {
		s.logger.Warn(r.Context(), "login throttled", "remote_addr", r.RemoteAddr)
		s.render(w, r, http.StatusTooManyRequests, "login", pageData{Title: "Login", Error: msgTooManyLogins})
		return
	}

	res, err := s.users.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			s.render(w, r, http.StatusOK, "login", pageData{Title: "Login", Error: "Invalid username or password"})
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.setSessionCookie(w, res.Token)
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Logout(r.Context(), s.sessionToken(r)); err != nil {
		s.logger.Warn(r.Context(), "logout", "error", err)
	}
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessions.FromContext(r.Context())
	s.render(w, r, http.StatusOK, "home", pageData{
		Title:        "Home",
		UserName:     sess.UserName,
		Destinations: s.destinations.Catalog(),
	})
}

func (s *Server) handleDestination(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessions.FromContext(r.Context())

	view, err := s.destinations.View(r.Context(), sess.UserID, r.PathValue("name"))
	if err != nil {
		if errors.Is(err, common.ErrorDestinationNotFound) {
			s.notFound(w, r, sess)
			return
		}
		s.serverError(w, r, err)
		return
	}

	data := pageData{Title: view.Destination.Name, UserName: sess.UserName, View: view}
	q := r.URL.Query()
	if q.Get("error") == "already" {
		data.Error = msgAlreadyInList
	}
	if q.Get("success") == "added" {
		data.Success = msgAdded
	}
	s.render(w, r, http.StatusOK, "destination", data)
}

func (s *Server) handleAddToList(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessions.FromContext(r.Context())

	d, outcome, err := s.destinations.AddToList(r.Context(), sess.UserID, r.PostFormValue("destinationName"))
	if err != nil {
		if errors.Is(err, common.ErrorDestinationNotFound) {
			s.notFound(w, r, sess)
			return
		}
		s.serverError(w, r, err)
		return
	}

	target := "/destination/" + url.PathEscape(catalog.Slug(d.Name))
	switch outcome {
	case models.Added:
		target += "?success=added"
	case models.AlreadyPresent:
		target += "?error=already"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessions.FromContext(r.Context())

	list, err := s.lists.ListFor(r.Context(), sess.UserID)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "list", pageData{Title: "My want-to-go list", UserName: sess.UserName, List: list})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	if err := s.pages.render(w, status, page, data); err != nil {
		s.logger.Error(r.Context(), "render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	s.render(w, r, http.StatusNotFound, "error", pageData{Title: msgNotFound, UserName: sess.UserName})
}

// serverError hides err from the client. The service layer has already
// logged store failures; this adds the request id.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "request failed", "request_id", GetRequestID(r.Context()), "error", err)
	s.render(w, r, http.StatusInternalServerError, "error", pageData{Title: msgSomethingWrong})
}

// clientKey identifies the caller for login throttling.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
