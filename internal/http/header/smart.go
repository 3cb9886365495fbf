package header

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"headgate/internal/http/message"
)

// Smart adds single-value lookups on top of a View.
type Smart struct {
	View
}

func NewSmart(msg message.Message) *Smart {
	return &Smart{View: New(msg)}
}

func Wrap(v View) *Smart {
	if s, ok := v.(*Smart); ok {
		return s
	}
	return &Smart{View: v}
}

// Single returns the first value of a header that must be present.
func (s *Smart) Single(name string) (string, error) {
	vals, err := s.Values(name)
	if err != nil {
		return "", err
	}
	if first, ok := vals.First(); ok {
		return first, nil
	}

	names, err := s.Names()
	if err != nil {
		return "", err
	}
	return "", missingMandatory(name, names)
}

// SingleOr returns the first value of name, or def when the header is absent.
func (s *Smart) SingleOr(name, def string) (string, error) {
	vals, err := s.Values(name)
	if err != nil {
		return "", err
	}
	if first, ok := vals.First(); ok {
		return first, nil
	}
	return def, nil
}

// Time parses the first value of a mandatory date header such as Date,
// Expires or Last-Modified.
func (s *Smart) Time(name string) (time.Time, error) {
	raw, err := s.Single(name)
	if err != nil {
		return time.Time{}, err
	}
	t, err := dateparse.ParseStrict(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("header %q: %w", name, err)
	}
	return t, nil
}
