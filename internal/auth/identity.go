package auth

const AnonymousURN = "urn:anonymous"

type Identity interface {
	URN() string
	Properties() map[string]string
}

type identity struct {
	urn   string
	props map[string]string
}

func NewIdentity(urn string, props map[string]string) Identity {
	p := make(map[string]string, len(props))
	for k, v := range props {
		p[k] = v
	}
	return &identity{urn: urn, props: p}
}

var Anonymous Identity = NewIdentity(AnonymousURN, nil)

func (i *identity) URN() string { return i.urn }

func (i *identity) Properties() map[string]string {
	p := make(map[string]string, len(i.props))
	for k, v := range i.props {
		p[k] = v
	}
	return p
}
