package hotelapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/me/hotelx/pkg/model"
)

// IdentityClient talks to the identity account endpoints. Successful login
// and registration commit the issued token pair to the session; logout clears
// it.
type IdentityClient struct {
	base    *baseClient
	session *Session
}

// NewIdentityClient builds an identity client bound to the given session.
func NewIdentityClient(cfg Config, session *Session, logger *slog.Logger) *IdentityClient {
	return &IdentityClient{
		base:    newBaseClient(cfg, ResourceIdentity, logger),
		session: session,
	}
}

// Register creates a new account. The registration data is validated locally
// first; on success the issued token pair is committed to the session.
func (c *IdentityClient) Register(ctx context.Context, data model.RegisterData) Result[model.TokenPair] {
	if err := data.Validate(); err != nil {
		return validationResult[model.TokenPair](err)
	}
	res := c.postPair(ctx, "register", data)
	if res.OK() {
		c.session.Set(res.Data)
	}
	return res
}

// Login authenticates with email and password; on success the issued token
// pair is committed to the session.
func (c *IdentityClient) Login(ctx context.Context, data model.LoginData) Result[model.TokenPair] {
	if err := data.Validate(); err != nil {
		return validationResult[model.TokenPair](err)
	}
	res := c.postPair(ctx, "login", data)
	if res.OK() {
		c.session.Set(res.Data)
	}
	return res
}

// RefreshToken exchanges a stale token pair for a fresh one. It does not
// touch the session; committing the new pair is the caller's responsibility
// (the 401 recovery path does this via the session's serialized refresh).
func (c *IdentityClient) RefreshToken(ctx context.Context, stale model.TokenPair) Result[model.TokenPair] {
	return c.postPair(ctx, "refreshtoken", stale)
}

// Logout invalidates the current token pair on the server and clears the
// session. The local session is cleared even when the server call fails, so
// a broken backend cannot leave the client stuck logged in.
//
// Unlike the other authenticated calls, Logout does not refresh and retry on
// a 401: with an expired access token the server-side logout fails and the
// refresh token stays valid on the server, while the local session is still
// cleared.
func (c *IdentityClient) Logout(ctx context.Context) Result[bool] {
	pair, ok := c.session.Pair()
	if !ok {
		return failResult[bool](msgNotLoggedIn)
	}
	defer c.session.Clear()

	resp, raw, err := c.base.do(ctx, http.MethodPost, "logout", nil, pair, pair.JWT)
	if err != nil {
		return normalizeError[bool](err)
	}
	if resp.StatusCode >= 300 {
		return normalizeError[bool](statusError(resp, raw))
	}
	data, err := decodeInto[bool](raw)
	if err != nil {
		return failResult[bool](err.Error())
	}
	return okResult(data)
}

func (c *IdentityClient) postPair(ctx context.Context, path string, body any) Result[model.TokenPair] {
	resp, raw, err := c.base.do(ctx, http.MethodPost, path, nil, body, "")
	if err != nil {
		return normalizeError[model.TokenPair](err)
	}
	if resp.StatusCode >= 300 {
		return normalizeError[model.TokenPair](statusError(resp, raw))
	}
	pair, err := decodeInto[model.TokenPair](raw)
	if err != nil {
		return failResult[model.TokenPair](err.Error())
	}
	return okResult(pair)
}
