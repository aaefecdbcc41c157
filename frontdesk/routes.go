// Common routes and pages
package frontdesk

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hoteldesk/frontdesk/frontdesk/db"
	"github.com/hoteldesk/frontdesk/frontdesk/guard"
	"github.com/hoteldesk/frontdesk/frontdesk/web"
	"github.com/hoteldesk/frontdesk/templates"
)

// Messages shown to the user.
const (
	AccessDenied       = "Access Denied. Please log in to view this page."
	InvalidCredentials = "Invalid Credentials."
	AuthUnavailable    = "Sign-in is temporarily unavailable. Please try again later."
	LoggedOut          = "You have been logged out."
)

const timefmt = "15:04:05 Mon Jan 2 2006"

// authedHandler is a handler that requires an authenticated user
type authedHandler func(w http.ResponseWriter, r *http.Request, sess *db.Session)

// reqLoginHandler acts as middleware to check if the user is logged in.
// Returns a function that matches 'authedHandler()'.
// Missing, unknown and expired sessions are sent to the login page.
func (srv *Service) reqLoginHandler(handler authedHandler) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := srv.currentSession(r)
		if sess == nil {
			web.SetFlash(w, srv.Config.CookieName, web.FlashError, AccessDenied)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		handler(w, r, sess)
	}
}

// currentSession returns the valid session named by the request cookie, or
// nil.  Expired sessions are deleted.
func (srv *Service) currentSession(r *http.Request) *db.Session {
	cookie, err := r.Cookie(srv.Config.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	sess, err := srv.db.GetSession(cookie.Value)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			srv.log.Printf("Failed to read session: %v", err)
		}
		return nil
	}
	if sess.Expired(srv.Config.SessionTTL) {
		if err := srv.db.DeleteSession(sess.ID); err != nil {
			srv.log.Printf("Failed to delete expired session: %v", err)
		}
		return nil
	}
	return sess
}

// setupWebRoutes sets up the routes of the service.
//
// Index, Login, Logout, Hotels, and sign-in log pages
func (srv *Service) setupWebRoutes() {
	router := srv.web.Router
	router.StrictSlash(true)

	router.HandleFunc("/", srv.renderIndex).Methods("GET")
	router.HandleFunc("/login", srv.renderLoginPage).Methods("GET")
	router.HandleFunc("/login", srv.userLoginPost).Methods("POST")
	router.HandleFunc("/logout", srv.userLogout).Methods("GET")

	router.HandleFunc("/hotels", srv.reqLoginHandler(srv.renderHotels)).Methods("GET")
	router.HandleFunc("/log", srv.reqLoginHandler(srv.renderLog)).Methods("GET")
	router.HandleFunc("/log/{id:[0-9]+}", srv.reqLoginHandler(srv.showAttempt)).Methods("GET")

	router.PathPrefix("/assets/").Handler(http.StripPrefix("/assets/", http.FileServer(http.Dir(srv.Config.AssetsDir))))
}

// pageData returns the template data shared by every page: the signed in
// user, if any, and the pending flash message.
func (srv *Service) pageData(w http.ResponseWriter, r *http.Request, sess *db.Session) map[string]interface{} {
	data := make(map[string]interface{})
	if sess != nil {
		data["user"] = sess.UserName
	}
	if kind, msg := web.PopFlash(w, r, srv.Config.CookieName); msg != "" {
		data["flash"] = msg
		data["flash_kind"] = kind
	}
	return data
}

func (srv *Service) renderIndex(w http.ResponseWriter, r *http.Request) {
	hotels, err := srv.db.AllHotels()
	if err != nil {
		srv.web.ErrorResponse(w, http.StatusInternalServerError, "Error reading hotels from DB")
		return
	}
	data := srv.pageData(w, r, srv.currentSession(r))
	data["hotels"] = hotels
	srv.web.Render(w, http.StatusOK, templates.Hotels, data)
}

func (srv *Service) renderLoginPage(w http.ResponseWriter, r *http.Request) {
	srv.renderLogin(w, r, http.StatusOK, "", guard.Cleared, nil)
}

// renderLogin renders the login form with the error region in the given
// state.  Values refill non-password fields.
func (srv *Service) renderLogin(w http.ResponseWriter, r *http.Request, status int, message string, state guard.State, values map[string]string) {
	data := srv.pageData(w, r, srv.currentSession(r))
	data["form"] = srv.form.WithValues(values)
	data["error"] = message
	data["error_style"] = template.CSS(guard.StyleFor(state).CSS())
	srv.web.Render(w, status, templates.Login, data)
}

// userLoginPost applies the same check as the login guard before
// authenticating, so that clients without the guard get the same error.
// The username is trimmed; the password is used as submitted.
func (srv *Service) userLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		srv.web.ErrorResponse(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	password := r.PostForm.Get("password")
	verdict := guard.Check(r.PostForm.Get("username"), password)
	values := map[string]string{"username": verdict.Username}

	attempt := &db.Attempt{UserName: verdict.Username, RemoteAddr: r.RemoteAddr}
	if !verdict.Valid {
		attempt.Outcome = db.Blocked
		attempt.Message = "empty field"
		srv.worker.Enqueue(attempt)
		srv.renderLogin(w, r, http.StatusBadRequest, verdict.Message, verdict.State(), values)
		return
	}

	id, err := srv.auth.Authenticate(r.Context(), verdict.Username, password)
	if err != nil {
		attempt.Outcome = db.Rejected
		attempt.Message = err.Error()
		srv.worker.Enqueue(attempt)
		if !errors.Is(err, ErrInvalidCredentials) {
			srv.log.Printf("Authentication of %q failed: %v", verdict.Username, err)
			srv.web.ErrorResponse(w, http.StatusServiceUnavailable, AuthUnavailable)
			return
		}
		srv.renderLogin(w, r, http.StatusUnauthorized, InvalidCredentials, guard.ShowingError, values)
		return
	}

	sess := db.NewSession(id.Username, id.Role)
	sess.Token = id.Token
	if err := srv.db.InsertSession(sess); err != nil {
		srv.web.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	attempt.Outcome = db.Accepted
	srv.worker.Enqueue(attempt)

	cookie := http.Cookie{
		Name:     srv.Config.CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   srv.Config.SecureCookie,
	}
	if ttl := srv.Config.SessionTTL; ttl > 0 {
		cookie.Expires = sess.Created.Add(ttl)
	}
	http.SetCookie(w, &cookie)
	web.SetFlash(w, srv.Config.CookieName, web.FlashSuccess, "Login successful. Welcome, "+id.Role+".")
	http.Redirect(w, r, "/hotels", http.StatusFound)
}

func (srv *Service) userLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(srv.Config.CookieName); err == nil && cookie.Value != "" {
		if err := srv.db.DeleteSession(cookie.Value); err != nil {
			srv.log.Printf("Failed to delete session: %v", err)
		}
	}
	http.SetCookie(w, &http.Cookie{Name: srv.Config.CookieName, Path: "/", MaxAge: -1})
	web.SetFlash(w, srv.Config.CookieName, web.FlashSuccess, LoggedOut)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (srv *Service) renderHotels(w http.ResponseWriter, r *http.Request, sess *db.Session) {
	hotels, err := srv.db.AllHotels()
	if err != nil {
		srv.web.ErrorResponse(w, http.StatusInternalServerError, "Error reading hotels from DB")
		return
	}
	data := srv.pageData(w, r, sess)
	data["hotels"] = hotels
	data["manage"] = true
	srv.web.Render(w, http.StatusOK, templates.Hotels, data)
}

func (srv *Service) renderLog(w http.ResponseWriter, r *http.Request, sess *db.Session) {
	attempts, err := srv.db.AllAttempts()
	if err != nil {
		srv.web.ErrorResponse(w, http.StatusInternalServerError, "Error reading sign-in attempts from DB")
		return
	}
	data := srv.pageData(w, r, sess)
	data["attempts"] = attempts
	srv.web.Render(w, http.StatusOK, templates.LogView, data)
}

func (srv *Service) showAttempt(w http.ResponseWriter, r *http.Request, sess *db.Session) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		srv.web.ErrorResponse(w, http.StatusBadRequest, "Invalid ID")
		return
	}
	attempt, err := srv.db.GetAttempt(id)
	if err != nil {
		srv.web.ErrorResponse(w, http.StatusNotFound, "No such sign-in attempt")
		return
	}

	data := srv.pageData(w, r, sess)
	data["attempt"] = attempt
	data["submit_time"] = attempt.SubmitTime.Format(timefmt)
	if attempt.IsFinished() {
		data["end_time"] = attempt.EndTime.Format(timefmt)
	}
	srv.web.Render(w, http.StatusOK, templates.AttemptView, data)
}
