package frontdesk

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/hoteldesk/frontdesk/frontdesk/db"
	"github.com/hoteldesk/frontdesk/frontdesk/form"
	"github.com/hoteldesk/frontdesk/frontdesk/web"
	"github.com/hoteldesk/frontdesk/frontdesk/worker"
)

// Service represents the full front desk: a web server, a database for
// sessions, accounts and sign-in attempts, and a worker that audits the
// attempts.
type Service struct {
	web    *web.Server
	db     *db.Connection
	worker *worker.Worker
	log    *log.Logger
	auth   Authenticator
	form   form.Form
	Config *Config
}

// NewService opens the database, seeds it if configured and sets up the web
// routes.  Zero values in cfg fall back to DefaultConfig.
func NewService(cfg Config) (*Service, error) {
	cfg = cfg.withDefaults()
	srv := new(Service)
	srv.Config = &cfg
	srv.log = log.New(os.Stderr, "", log.LstdFlags)

	srv.log.Print("Initialising database")
	conn, err := db.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", cfg.DBPath, err)
	}
	srv.db = conn
	if cfg.SeedDemoData {
		if err := conn.Seed(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("seeding database: %w", err)
		}
	}

	srv.worker = worker.New(srv.db, cfg.QueueLength)
	srv.worker.Action = srv.auditAttempt

	if cfg.GINServer != "" {
		srv.auth = NewGINAuth(cfg.GINServer)
	} else {
		srv.auth = NewLocalAuth(srv.db)
	}

	srv.form = form.Login()
	srv.web = web.New(cfg.Port)
	srv.setupWebRoutes()
	return srv, nil
}

// SetLogger sets the logger for the service and its web server and worker.
func (srv *Service) SetLogger(l *log.Logger) {
	srv.log = l
	srv.web.SetLogger(l)
	srv.worker.SetLogger(l)
}

// SetAuthenticator can be used to override how credentials are checked.
func (srv *Service) SetAuthenticator(a Authenticator) {
	srv.auth = a
}

// SetAuditAction sets the action the worker runs for every sign-in attempt.
func (srv *Service) SetAuditAction(f worker.AttemptAction) {
	srv.worker.Action = f
}

// auditAttempt is the default audit action.  Failed attempts get the number
// of failures for the user since their last accepted sign-in appended to
// their message.
func (srv *Service) auditAttempt(a db.Attempt) (string, error) {
	if a.Outcome == db.Accepted {
		return "", nil
	}
	attempts, err := srv.db.GetUserAttempts(a.UserName)
	if err != nil {
		return "", fmt.Errorf("reading attempts for %q: %w", a.UserName, err)
	}
	failures := 0
	for _, prev := range attempts {
		if prev.ID > a.ID {
			break
		}
		if prev.Outcome == db.Accepted {
			failures = 0
			continue
		}
		failures++
	}
	msg := fmt.Sprintf("failure %d since last sign-in", failures)
	if a.Message != "" {
		msg = a.Message + "; " + msg
	}
	return msg, nil
}

// Handler returns the HTTP handler serving all routes.
func (srv *Service) Handler() http.Handler {
	return srv.web.Handler
}

// Start the service (worker and web server).  Expired sessions are removed
// before the web server starts.
func (srv *Service) Start() error {
	if srv.auth == nil {
		return fmt.Errorf("nil authenticator is invalid")
	}
	if ttl := srv.Config.SessionTTL; ttl > 0 {
		n, err := srv.db.PurgeSessions(time.Now().Add(-ttl))
		if err != nil {
			return fmt.Errorf("purging expired sessions: %w", err)
		}
		if n > 0 {
			srv.log.Printf("Removed %d expired sessions", n)
		}
	}

	srv.log.Print("Starting worker")
	srv.worker.Start()
	srv.log.Print("Worker started")

	srv.log.Print("Starting web service")
	srv.web.Start()
	srv.log.Print("Web server started")
	return nil
}

// WaitForInterrupt blocks until the service receives an interrupt signal (SIGINT).
func (srv *Service) WaitForInterrupt() {
	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, os.Interrupt)
	<-sigchan
}

// Stop the service by gracefully shutting down the web service, stopping the
// worker, and closing the database connection, in that order.
func (srv *Service) Stop() {
	srv.log.Print("Stopping web service")
	srv.web.Stop()

	srv.log.Print("Stopping worker queue")
	srv.worker.Stop()

	srv.log.Print("Closing database connection")
	if err := srv.db.Close(); err != nil {
		srv.log.Printf("Error closing database: %v", err)
	}
	srv.log.Print("Service stopped")
}
