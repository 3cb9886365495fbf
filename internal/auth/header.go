package auth

import (
	"context"

	"headgate/internal/http/header"
	"headgate/internal/http/message"
)

type headerPass struct {
	name string
}

// HeaderPass trusts the value of the named request header as the identity
// URN. It is meant to sit behind a proxy that has already authenticated the
// caller.
func HeaderPass(name string) Pass {
	return &headerPass{name: name}
}

func (h *headerPass) Enter(_ context.Context, req message.Message) (Identity, bool, error) {
	urn, err := header.NewSmart(req).SingleOr(h.name, "")
	if err != nil {
		return nil, false, err
	}
	if urn == "" {
		return nil, false, nil
	}
	return NewIdentity(urn, map[string]string{"header": header.Canonical(h.name)}), true, nil
}

func (h *headerPass) Exit(resp message.Message, id Identity) (message.Message, error) {
	return message.ReplaceHeader(resp, h.name, id.URN())
}
