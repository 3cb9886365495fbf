package middleware

import (
	"context"
	"testing"

	"headgate/internal/auth"
	"headgate/internal/http/header"
	"headgate/internal/http/message"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMiddleware struct {
	mock.Mock
}

func (m *mockMiddleware) HandleRequest(ctx context.Context, req message.Message) (message.Message, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(message.Message)
	return out, args.Error(1)
}

func TestGate(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name      string
		head      []string
		expectErr error
		expectURN string
	}{
		{
			name:      "identity header added",
			head:      []string{"GET / HTTP/1.1", "X-User: urn:test:1", "X-Role: admin"},
			expectURN: "urn:test:1",
		},
		{
			name:      "client supplied identity is replaced",
			head:      []string{"GET / HTTP/1.1", "X-Auth-Identity: urn:test:admin", "X-User: urn:test:1", "x-auth-identity: urn:test:root", "X-Role: admin"},
			expectURN: "urn:test:1",
		},
		{
			name:      "one pass refuses",
			head:      []string{"GET / HTTP/1.1", "X-User: urn:test:1"},
			expectErr: ErrUnauthorized,
		},
		{
			name:      "malformed head",
			head:      []string{"GET / HTTP/1.1", "bad line"},
			expectErr: header.ErrMalformedHeaderLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pass, err := auth.All([]auth.Pass{auth.HeaderPass("X-User"), auth.HeaderPass("X-Role")}, 0)
			require.NoError(t, err)

			out, err := NewGate(pass).HandleRequest(ctx, message.New(tt.head, nil))
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)
			vals, err := header.New(out).Values(IdentityHeader)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.expectURN}, vals.All())
		})
	}
}

func TestChain(t *testing.T) {
	ctx := context.Background()
	req := message.New([]string{"GET / HTTP/1.1"}, nil)
	mid := message.New([]string{"GET / HTTP/1.1", "A: 1"}, nil)
	last := message.New([]string{"GET / HTTP/1.1", "A: 1", "B: 2"}, nil)

	t.Run("passes request along", func(t *testing.T) {
		first := new(mockMiddleware)
		first.On("HandleRequest", ctx, req).Return(mid, nil)
		second := new(mockMiddleware)
		second.On("HandleRequest", ctx, mid).Return(last, nil)

		out, err := Chain(ctx, req, first, second)
		assert.NoError(t, err)
		assert.Equal(t, last, out)
		first.AssertExpectations(t)
		second.AssertExpectations(t)
	})

	t.Run("stops on error", func(t *testing.T) {
		first := new(mockMiddleware)
		first.On("HandleRequest", ctx, req).Return(nil, assert.AnError)
		second := new(mockMiddleware)

		out, err := Chain(ctx, req, first, second)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, out)
		second.AssertNotCalled(t, "HandleRequest", mock.Anything, mock.Anything)
	})

	t.Run("no middlewares", func(t *testing.T) {
		out, err := Chain(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, req, out)
	})
}
