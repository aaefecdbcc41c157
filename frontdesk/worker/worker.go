package worker

import (
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hoteldesk/frontdesk/frontdesk/db"
)

// AttemptAction runs after an attempt has been stored.  The returned message
// is saved with the attempt; a non-nil error is saved in its place.
type AttemptAction func(a db.Attempt) (string, error)

// Worker with queue for auditing sign-in attempts asynchronously.
type Worker struct {
	queue    chan *db.Attempt
	stop     chan struct{}
	stopOnce sync.Once
	started  atomic.Bool
	done     chan struct{}
	Action   AttemptAction
	db       *db.Connection
	log      *log.Logger
}

// New returns a Worker storing attempts in dbconn.  A queue length of zero
// or less uses a default of 100.
func New(dbconn *db.Connection, queueLen int) *Worker {
	if queueLen <= 0 {
		queueLen = 100
	}
	w := new(Worker)
	w.queue = make(chan *db.Attempt, queueLen)
	w.stop = make(chan struct{})
	w.done = make(chan struct{})
	w.db = dbconn
	w.log = log.New(os.Stderr, "", log.LstdFlags)
	return w
}

// SetLogger sets the logger for the worker.
func (w *Worker) SetLogger(l *log.Logger) {
	w.log = l
}

// Enqueue stores the attempt in the database and adds it to the queue.  If
// the queue is full the attempt is stored but not audited further.
func (w *Worker) Enqueue(a *db.Attempt) {
	a.SubmitTime = time.Now()
	if err := w.db.InsertAttempt(a); err != nil {
		w.log.Printf("Error inserting attempt %+v into db: %v", a, err)
		return
	}
	select {
	case w.queue <- a:
	default:
		w.log.Printf("Attempt queue full; [A%d] not audited", a.ID)
	}
}

// Stop the worker loop and wait for it to exit.  Queued attempts that have
// not started are left unfinished.  Stopping a worker that was never started,
// or stopping twice, returns immediately.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	if w.started.Load() {
		<-w.done
	}
}

func (w *Worker) run(a *db.Attempt) {
	defer func() {
		if err := w.db.UpdateAttempt(a); err != nil {
			w.log.Printf("Error updating attempt [A%d]: %v", a.ID, err)
		}
	}()
	var msg string
	var err error
	if w.Action != nil {
		msg, err = w.Action(*a)
	}
	a.EndTime = time.Now()
	if err != nil {
		w.log.Printf("Audit of attempt [A%d] %s failed: %s", a.ID, a.UserName, err)
		a.Message = err.Error()
		return
	}
	if msg != "" {
		a.Message = msg
	}
}

// Start the worker loop in a goroutine.  Only the first call has an effect.
func (w *Worker) Start() {
	if !w.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer close(w.done)
		for {
			select {
			case a := <-w.queue:
				w.run(a)
			case <-w.stop:
				return
			}
		}
	}()
}
