package header

import (
	"fmt"
	"sync"

	"headgate/internal/http/message"
)

type View interface {
	Names() ([]string, error)
	Values(name string) (Values, error)
}

// Values is the ordered list of values found for one header name, with a
// note describing the lookup. The note is informational only.
type Values struct {
	list []string
	note string
}

func (v Values) All() []string {
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out
}

func (v Values) Len() int { return len(v.list) }

func (v Values) Empty() bool { return len(v.list) == 0 }

// First returns the first value, or "" and false when there is none.
func (v Values) First() (string, bool) {
	if len(v.list) == 0 {
		return "", false
	}
	return v.list[0], true
}

func (v Values) Note() string { return v.note }

type view struct {
	msg   message.Message
	once  sync.Once
	table Table
	err   error
}

// New returns a View over the head of msg. The head is parsed on the first
// query and the result, table or error, is kept for later ones.
func New(msg message.Message) View {
	return &view{msg: msg}
}

// FromTable returns a View over an already parsed table.
func FromTable(t Table) View {
	v := &view{table: t}
	v.once.Do(func() {})
	return v
}

func (v *view) load() (Table, error) {
	v.once.Do(func() {
		head, err := v.msg.Head()
		if err != nil {
			v.err = err
			return
		}
		v.table, v.err = Parse(head)
	})
	return v.table, v.err
}

func (v *view) Names() ([]string, error) {
	t, err := v.load()
	if err != nil {
		return nil, err
	}
	return t.Names(), nil
}

func (v *view) Values(name string) (Values, error) {
	t, err := v.load()
	if err != nil {
		return Values{}, err
	}

	list := t.Get(name)
	if len(list) == 0 {
		return Values{
			list: list,
			note: fmt.Sprintf(
				"there are no headers by name \"%s\" among %d others: %s",
				name, t.Len(), formatNames(t.Names()),
			),
		}, nil
	}
	return Values{
		list: list,
		note: fmt.Sprintf("there are only %d headers by name \"%s\"", len(list), name),
	}, nil
}
