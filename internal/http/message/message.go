package message

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoStartLine    = errors.New("invalid message: no CRLF found in start line")
	ErrInvalidHeader  = errors.New("invalid header")
	ErrMissingMethod  = errors.New("invalid start line: missing method")
	ErrMissingVersion = errors.New("invalid start line: missing version")
)

// Message is an HTTP request or response whose head is available as lines.
// Head may return a fresh slice on every call.
type Message interface {
	Head() ([]string, error)
	Body() []byte
}

type message struct {
	head []string
	body []byte
}

func New(head []string, body []byte) Message {
	h := make([]string, len(head))
	copy(h, head)
	return &message{head: h, body: body}
}

func (m *message) Head() ([]string, error) {
	h := make([]string, len(m.head))
	copy(h, m.head)
	return h, nil
}

func (m *message) Body() []byte {
	return m.body
}

func Parse(data []byte) (Message, error) {
	lineEnd := bytes.Index(data, []byte("\r\n"))
	if lineEnd == -1 {
		return nil, ErrNoStartLine
	}

	head := []string{string(data[:lineEnd])}
	remaining := data[lineEnd+2:]

	for len(remaining) > 0 {
		lineEnd = bytes.Index(remaining, []byte("\r\n"))
		if lineEnd == -1 {
			head = append(head, string(remaining))
			remaining = nil
			break
		}

		line := remaining[:lineEnd]
		remaining = remaining[lineEnd+2:]
		if len(line) == 0 {
			break
		}
		head = append(head, string(line))
	}

	return &message{head: head, body: remaining}, nil
}

func Read(br *bufio.Reader) (Message, error) {
	var head []string
	for {
		lineBytes, err := br.ReadBytes('\n')
		if err != nil {
			return nil, err
		}

		lineBytes = bytes.TrimRight(lineBytes, "\r\n")
		if len(lineBytes) == 0 {
			break
		}
		head = append(head, string(lineBytes))
	}
	return &message{head: head}, nil
}

func Bytes(msg Message) ([]byte, error) {
	head, err := msg.Head()
	if err != nil {
		return nil, err
	}

	body := msg.Body()
	size := 2 + len(body)
	for _, line := range head {
		size += len(line) + 2
	}

	buf := make([]byte, 0, size)
	for _, line := range head {
		buf = append(buf, line...)
		buf = append(buf, '\r', '\n')
	}
	buf = append(buf, '\r', '\n')
	buf = append(buf, body...)
	return buf, nil
}

// WithHeader returns a copy of msg with one more header line at the end of
// its head.
func WithHeader(msg Message, name, value string) (Message, error) {
	if err := validHeader(name, value); err != nil {
		return nil, err
	}

	head, err := msg.Head()
	if err != nil {
		return nil, err
	}
	head = append(head, name+": "+value)
	return &message{head: head, body: msg.Body()}, nil
}

// ReplaceHeader returns a copy of msg where every header line named name,
// compared case-insensitively, is dropped and a single name: value line is
// appended. Lines without a colon are left for the header parser to reject.
func ReplaceHeader(msg Message, name, value string) (Message, error) {
	if err := validHeader(name, value); err != nil {
		return nil, err
	}

	head, err := msg.Head()
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(head)+1)
	for i, line := range head {
		if i > 0 {
			key, _, found := strings.Cut(line, ":")
			if found && strings.EqualFold(strings.TrimSpace(key), strings.TrimSpace(name)) {
				continue
			}
		}
		kept = append(kept, line)
	}
	kept = append(kept, name+": "+value)
	return &message{head: kept, body: msg.Body()}, nil
}

func validHeader(name, value string) error {
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, "\r\n:") || strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: %q: %q", ErrInvalidHeader, name, value)
	}
	return nil
}

func ParseRequestLine(line string) (method, path, version string, err error) {
	firstSpace := strings.IndexByte(line, ' ')
	if firstSpace == -1 {
		return "", "", "", ErrMissingMethod
	}

	secondSpace := strings.IndexByte(line[firstSpace+1:], ' ')
	if secondSpace == -1 {
		return "", "", "", ErrMissingVersion
	}
	secondSpace += firstSpace + 1

	return line[:firstSpace], line[firstSpace+1 : secondSpace], line[secondSpace+1:], nil
}
