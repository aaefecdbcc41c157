package frontdesk

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gogs/go-gogs-client"
	"github.com/hoteldesk/frontdesk/frontdesk/db"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by an Authenticator when the username
// or password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity of an authenticated user.
type Identity struct {
	Username string
	Role     string
	// Token is an access token for the backing server, if any.
	Token string
}

// Authenticator checks a username and password pair.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*Identity, error)
}

// LocalAuth authenticates against the account table.
type LocalAuth struct {
	db *db.Connection
}

// NewLocalAuth returns an Authenticator backed by the accounts in conn.
func NewLocalAuth(conn *db.Connection) *LocalAuth {
	return &LocalAuth{db: conn}
}

// Authenticate looks up the account and compares the bcrypt hash.
func (a *LocalAuth) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	acc, err := a.db.GetAccount(username)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, fmt.Errorf("looking up account %q: %w", username, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &Identity{Username: acc.Username, Role: acc.Role}, nil
}

// GINRole is the role given to users signed in through a GIN server.
const GINRole = "GIN"

// GINAuth authenticates against a GIN (Gogs) server by requesting one of
// the user's access tokens.  A token named TokenName is created if the user
// has none.
type GINAuth struct {
	Server    string
	TokenName string
	// Transport for requests to the server; nil uses http.DefaultTransport.
	Transport http.RoundTripper
}

// NewGINAuth returns an Authenticator for the GIN server at the given URL.
func NewGINAuth(server string) *GINAuth {
	return &GINAuth{Server: server, TokenName: "frontdesk"}
}

// statusTransport binds requests to ctx and remembers the status of the last
// response, which the gogs client does not expose in its errors.
type statusTransport struct {
	ctx    context.Context
	next   http.RoundTripper
	status int
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.status = 0
	resp, err := t.next.RoundTrip(req.WithContext(t.ctx))
	if resp != nil {
		t.status = resp.StatusCode
	}
	return resp, err
}

// Authenticate returns the user's first access token, creating one if
// needed.  Only 401 and 403 answers are reported as ErrInvalidCredentials;
// other failures mean the server could not be asked.
func (a *GINAuth) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	next := a.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	transport := &statusTransport{ctx: ctx, next: next}
	client := gogs.NewClient(a.Server, "")
	client.SetHTTPClient(&http.Client{Transport: transport})

	tokens, err := client.ListAccessTokens(username, password)
	if err != nil {
		return nil, ginError(transport.status, "listing access tokens", err)
	}

	var token *gogs.AccessToken
	if len(tokens) > 0 {
		token = tokens[0]
	} else {
		token, err = client.CreateAccessToken(username, password, gogs.CreateAccessTokenOption{Name: a.TokenName})
		if err != nil {
			return nil, ginError(transport.status, "creating access token", err)
		}
	}
	return &Identity{Username: username, Role: GINRole, Token: token.Sha1}, nil
}

func ginError(status int, op string, err error) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	if status != 0 {
		return fmt.Errorf("GIN server %s: status %d: %w", op, status, err)
	}
	return fmt.Errorf("GIN server %s: %w", op, err)
}
