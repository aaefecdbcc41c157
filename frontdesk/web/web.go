package web

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/hoteldesk/frontdesk/templates"
)

// Server implements the web server for the front desk service.
type Server struct {
	*http.Server
	Router *mux.Router
	log    *log.Logger
}

// New returns a web Server with an initialised mux.Router and http.Server
// listening on the given port.
func New(port uint16) *Server {
	srv := new(Server)
	srv.Router = new(mux.Router)
	httpsrv := new(http.Server)
	httpsrv.Handler = srv.Router

	httpsrv.Addr = fmt.Sprintf(":%d", port)
	httpsrv.WriteTimeout = time.Second * 15
	httpsrv.ReadTimeout = time.Second * 15
	httpsrv.IdleTimeout = time.Second * 60
	srv.Server = httpsrv
	srv.log = log.New(os.Stderr, "", log.LstdFlags)
	return srv
}

// SetLogger sets the logger for the web server.
func (ws *Server) SetLogger(l *log.Logger) {
	ws.log = l
	ws.Server.ErrorLog = l
}

// Render executes the layout template with the given content template and
// data.  Rendering errors are logged; the status has already been written.
func (ws *Server) Render(w http.ResponseWriter, status int, content string, data map[string]interface{}) {
	tmpl := template.New("layout")
	tmpl, err := tmpl.Parse(templates.Layout)
	if err != nil {
		ws.log.Printf("Failed to parse layout: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	tmpl, err = tmpl.Parse(content)
	if err != nil {
		ws.log.Printf("Failed to parse page: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.Execute(w, data); err != nil {
		ws.log.Printf("Failed to render page: %v", err)
	}
}

// ErrorResponse logs an error and renders an error page with the given message,
// returning the given status code to the user.
func (ws *Server) ErrorResponse(w http.ResponseWriter, status int, message string) {
	ws.log.Printf("%d %s: %s", status, http.StatusText(status), message)
	ws.Render(w, status, templates.Fail, map[string]interface{}{
		"status_code": status,
		"status_text": http.StatusText(status),
		"message":     message,
	})
}

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// SetFlash stores a one-shot message for the next rendered page.
func SetFlash(w http.ResponseWriter, cookieName, kind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName + "-flash",
		Value:    url.QueryEscape(kind + ":" + message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns and clears the pending flash message, if any.
func PopFlash(w http.ResponseWriter, r *http.Request, cookieName string) (kind, message string) {
	cookie, err := r.Cookie(cookieName + "-flash")
	if err != nil || cookie.Value == "" {
		return "", ""
	}
	http.SetCookie(w, &http.Cookie{Name: cookieName + "-flash", Path: "/", MaxAge: -1})
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return "", ""
	}
	if kind, message, ok := strings.Cut(value, ":"); ok {
		return kind, message
	}
	return FlashSuccess, value
}

// Start starts the embedded web server's ListenAndServe method in a goroutine
// and returns.  This method does not block. Use WaitForInterrupt() or
// implement your own blocking function to wait for any other stop condition.
func (ws *Server) Start() {
	go func() {
		if err := ws.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			ws.log.Println(err)
		}
	}()
}

// Stop gracefully stops the web service.
func (ws *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	// Gracefully shut down, waiting for the timeout deadline for connections to close.
	if err := ws.Shutdown(ctx); err != nil {
		ws.log.Printf("Error shutting down web server: %v", err)
	}
}
