package dialer

import (
	"fmt"
	"os"
)

// Resolver resolves the simulator's address.
type Resolver interface {
	// Resolve returns an address, or "" if this resolver has no opinion.
	Resolve() (string, error)
}

// ConstantResolver always returns the same value
type ConstantResolver struct {
	s string
}

func NewConstantResolver(s string) *ConstantResolver {
	return &ConstantResolver{s: s}
}

func (r *ConstantResolver) Resolve() (string, error) {
	return r.s, nil
}

func (r *ConstantResolver) String() string {
	return fmt.Sprintf("constant(%q)", r.s)
}

// EnvResolver resolves by looking for a key in the OS Environment
type EnvResolver struct {
	key string
}

func NewEnvResolver(key string) *EnvResolver {
	return &EnvResolver{key: key}
}

func (r *EnvResolver) Resolve() (string, error) {
	return os.Getenv(r.key), nil
}

func (r *EnvResolver) String() string {
	return fmt.Sprintf("env(%s)", r.key)
}

// CompositeResolver resolves via delegates, in order, returning the first
// non-empty address or error.
type CompositeResolver struct {
	dels []Resolver
}

func NewCompositeResolver(dels ...Resolver) *CompositeResolver {
	return &CompositeResolver{dels: dels}
}

func (r *CompositeResolver) Resolve() (string, error) {
	for _, d := range r.dels {
		if s, err := d.Resolve(); s != "" || err != nil {
			return s, err
		}
	}
	return "", fmt.Errorf("could not resolve: no delegate resolved: %v", r.dels)
}
