package web

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestWebPlain(t *testing.T) {
	srv := New(4242)

	srv.Start()
	defer srv.Stop()
}

func TestWebWithRoutes(t *testing.T) {
	srv := New(4242)

	router := srv.Router
	router.StrictSlash(true)

	testget := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("(get) hello"))
	}

	testpost := func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseForm()
		if err != nil {
			t.Errorf("Post request handler failed to read form data: %v", err.Error())
		}
		resp := r.PostForm.Get("response")
		w.Write([]byte(fmt.Sprintf("(post) hello: %s", resp)))
	}

	router.HandleFunc("/test", testget).Methods("GET")
	router.HandleFunc("/test", testpost).Methods("POST")

	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	if resp, err := http.Get(ts.URL + "/test"); err != nil {
		t.Fatalf("Error testing get request: %v", err.Error())
	} else if b, err := io.ReadAll(resp.Body); err != nil {
		t.Fatalf("Error reading get request body: %v", err.Error())
	} else if string(b) != "(get) hello" {
		t.Fatalf("Got unexpected response from get request: %s", string(b))
	}

	if resp, err := http.PostForm(ts.URL+"/test", url.Values{"response": {"formvalue"}}); err != nil {
		t.Fatalf("Error testing post request: %v", err.Error())
	} else if b, err := io.ReadAll(resp.Body); err != nil {
		t.Fatalf("Error reading post request body: %v", err.Error())
	} else if string(b) != "(post) hello: formvalue" {
		t.Fatalf("Got unexpected response from post request: %s", string(b))
	}
}

func TestErrorResponse(t *testing.T) {
	srv := New(4242)

	expresp := "TESTING:UNAUTHORISED"
	srv.Router.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		srv.ErrorResponse(w, http.StatusUnauthorized, expresp)
	}).Methods("GET")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)
	srv.Handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("Unexpected status: %d", rr.Code)
	}
	if body := rr.Body.String(); !strings.Contains(body, expresp) || !strings.Contains(body, "401: Unauthorized") {
		t.Fatalf("Got unexpected response from get request: %s", body)
	}
}

func TestFlash(t *testing.T) {
	rr := httptest.NewRecorder()
	SetFlash(rr, "test-cookie", FlashError, "Access Denied: log in")

	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}

	rr = httptest.NewRecorder()
	kind, msg := PopFlash(rr, req, "test-cookie")
	if kind != FlashError || msg != "Access Denied: log in" {
		t.Fatalf("Unexpected flash: %q %q", kind, msg)
	}

	cleared := false
	for _, c := range rr.Result().Cookies() {
		if c.Name == "test-cookie-flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("Flash cookie not cleared after pop")
	}

	if kind, msg := PopFlash(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil), "test-cookie"); kind != "" || msg != "" {
		t.Fatalf("Unexpected flash without cookie: %q %q", kind, msg)
	}
}
