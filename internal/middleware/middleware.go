package middleware

import (
	"context"
	"log"

	"headgate/internal/http/message"
)

type RequestMiddleware interface {
	HandleRequest(ctx context.Context, req message.Message) (message.Message, error)
}

// Chain runs the middlewares in order, each one seeing the request returned
// by the previous. The first error stops the chain.
func Chain(ctx context.Context, req message.Message, mws ...RequestMiddleware) (message.Message, error) {
	for _, m := range mws {
		next, err := m.HandleRequest(ctx, req)
		if err != nil {
			log.Printf("Error when applying request middleware: %v", err)
			return nil, err
		}
		req = next
	}
	return req, nil
}
