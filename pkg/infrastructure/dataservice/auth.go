package dataservice

import (
	"context"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"

	"storefront/pkg/domain/model"
)

type sessionPayload struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (p sessionPayload) session() *model.Session {
	if p.AccessToken == "" {
		return nil
	}
	return &model.Session{
		UserID:      p.User.ID,
		Email:       p.User.Email,
		AccessToken: p.AccessToken,
	}
}

// CurrentSession returns the locally tracked session without a network call.
func (c *Client) CurrentSession(_ context.Context) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session, nil
}

// OnSessionChange registers a subscriber invoked with the new session (or
// nil) after every change. The returned function unsubscribes it.
func (c *Client) OnSessionChange(fn func(*model.Session)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	query := url.Values{"grant_type": {"password"}}
	body := map[string]string{"email": email, "password": password}

	var payload sessionPayload
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token", query, nil, body, &payload); err != nil {
		return nil, err
	}

	session := payload.session()
	c.setSession(session)
	return session, nil
}

// SignUp registers a new account, passing the full name as a user attribute
// the backend copies into the profiles table.
func (c *Client) SignUp(ctx context.Context, email, password, fullName string) (*model.Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": fullName},
	}

	var payload sessionPayload
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", nil, nil, body, &payload); err != nil {
		return nil, err
	}

	// Without auto-confirm the response carries no token and the caller
	// stays signed out until the address is verified.
	session := payload.session()
	if session != nil {
		c.setSession(session)
	}
	return session, nil
}

// SignOut revokes the session remotely and always clears it locally, so the
// process never keeps using a token the user asked to drop.
func (c *Client) SignOut(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/v1/logout", nil, nil, nil, nil)
	if err != nil {
		log.WithError(err).Warn("Remote sign-out failed, clearing local session anyway")
	}
	c.setSession(nil)
	return err
}

// setSession swaps the tracked session and notifies subscribers. Delivery is
// synchronous; subscribers defer their own follow-up work.
func (c *Client) setSession(session *model.Session) {
	c.mu.Lock()
	c.session = session
	subs := make([]func(*model.Session), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(session)
	}
}
