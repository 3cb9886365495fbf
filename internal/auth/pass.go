package auth

import (
	"context"
	"fmt"

	"headgate/internal/http/message"
)

// Pass is a single authentication check. Enter reports false when the
// request carries no identity this pass recognises.
type Pass interface {
	Enter(ctx context.Context, req message.Message) (Identity, bool, error)
	Exit(resp message.Message, id Identity) (message.Message, error)
}

// AllPass lets a request in only when every pass does, and then takes the
// identity of the pass at index.
type AllPass struct {
	passes []Pass
	index  int
}

func All(passes []Pass, index int) (*AllPass, error) {
	if index < 0 {
		return nil, fmt.Errorf("index %d must be >= 0", index)
	}
	if index >= len(passes) {
		return nil, fmt.Errorf("trying to return index %d from a list of %d passes", index, len(passes))
	}

	p := make([]Pass, len(passes))
	copy(p, passes)
	return &AllPass{passes: p, index: index}, nil
}

func (a *AllPass) Enter(ctx context.Context, req message.Message) (Identity, bool, error) {
	for _, p := range a.passes {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		_, ok, err := p.Enter(ctx, req)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
	}
	return a.passes[a.index].Enter(ctx, req)
}

func (a *AllPass) Exit(resp message.Message, id Identity) (message.Message, error) {
	return a.passes[a.index].Exit(resp, id)
}

type fixed struct {
	id Identity
}

// Fixed always lets the request in as id.
func Fixed(id Identity) Pass {
	return &fixed{id: id}
}

func (f *fixed) Enter(_ context.Context, _ message.Message) (Identity, bool, error) {
	return f.id, true, nil
}

func (f *fixed) Exit(resp message.Message, _ Identity) (message.Message, error) {
	return resp, nil
}
