package middleware

import (
	"context"
	"errors"

	"headgate/internal/auth"
	"headgate/internal/http/message"
)

const IdentityHeader = "X-Auth-Identity"

var ErrUnauthorized = errors.New("request did not pass authentication")

// Gate lets a request through only when its pass yields an identity, and
// records that identity in IdentityHeader, replacing whatever the client sent.
type Gate struct {
	pass auth.Pass
}

func NewGate(pass auth.Pass) *Gate {
	return &Gate{pass: pass}
}

func (g *Gate) HandleRequest(ctx context.Context, req message.Message) (message.Message, error) {
	id, ok, err := g.pass.Enter(ctx, req)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnauthorized
	}
	return message.ReplaceHeader(req, IdentityHeader, id.URN())
}
