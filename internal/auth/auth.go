// Package auth resolves the current principal for a request. Handlers only
// see the narrow Resolver contract; the engine never sees authentication.
package auth

// Principal identifies an authenticated user.
type Principal struct {
	UserID string
	Name   string
}

// Resolver maps a bearer token to a principal, reporting false when the
// token is unknown or empty.
type Resolver interface {
	Resolve(token string) (Principal, bool)
}

// StaticResolver resolves tokens from a fixed map, typically loaded from
// configuration.
type StaticResolver struct {
	tokens map[string]Principal
}

func NewStaticResolver(tokens map[string]Principal) *StaticResolver {
	if tokens == nil {
		tokens = map[string]Principal{}
	}
	return &StaticResolver{tokens: tokens}
}

func (r *StaticResolver) Resolve(token string) (Principal, bool) {
	if token == "" {
		return Principal{}, false
	}
	p, ok := r.tokens[token]
	return p, ok
}
