package auth

import (
	"context"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"headgate/internal/http/header"
	"headgate/internal/http/message"
)

type basicPass struct {
	users map[string][]byte
}

// BasicPass checks HTTP Basic credentials against bcrypt hashes keyed by
// user name.
func BasicPass(users map[string]string) Pass {
	u := make(map[string][]byte, len(users))
	for name, hash := range users {
		u[name] = []byte(hash)
	}
	return &basicPass{users: u}
}

func (b *basicPass) Enter(_ context.Context, req message.Message) (Identity, bool, error) {
	authz, err := header.NewSmart(req).SingleOr("Authorization", "")
	if err != nil {
		return nil, false, err
	}

	scheme, encoded, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return nil, false, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, false, nil
	}
	user, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return nil, false, nil
	}

	hash, ok := b.users[user]
	if !ok {
		return nil, false, nil
	}
	if err = bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, false, nil
	}
	return NewIdentity("urn:basic:"+user, map[string]string{"login": user}), true, nil
}

func (b *basicPass) Exit(resp message.Message, _ Identity) (message.Message, error) {
	return resp, nil
}
