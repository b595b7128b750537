// Package keynaming maps the logical keys used by application code to the
// physical keys sent to Redis.
//
// A Policy must be pure and deterministic: the same logical key always maps
// to the same physical key for the life of the process, and distinct logical
// keys never map to the same physical key. Policies do not validate keys.
package keynaming

import (
	"github.com/KirkDiggler/redisx/internal/errors"
)

//go:generate mockgen -destination=mock/mock_policy.go -package=keynamingmock github.com/KirkDiggler/redisx/internal/keynaming Policy

// DefaultSeparator joins a namespace and a logical key.
const DefaultSeparator = ":"

// Kind names a policy implementation in configuration.
type Kind string

const (
	KindPrefix   Kind = "prefix"
	KindHashTag  Kind = "hashtag"
	KindIdentity Kind = "identity"
)

// Kinds lists every configurable policy kind.
func Kinds() []string {
	return []string{string(KindPrefix), string(KindHashTag), string(KindIdentity)}
}

// Policy maps logical keys to physical keys.
type Policy interface {
	// Name returns the physical key for one logical key.
	Name(key string) string

	// Names maps keys in order. The result has the same length as keys and
	// Names(keys)[i] == Name(keys[i]).
	Names(keys []string) []string
}

// New builds a policy from configuration values.
func New(kind Kind, namespace, separator string) (Policy, error) {
	cfg := &PrefixConfig{Namespace: namespace, Separator: separator}

	switch kind {
	case KindPrefix:
		p, err := NewPrefix(cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	case KindHashTag:
		h, err := NewHashTag(cfg)
		if err != nil {
			return nil, err
		}
		return h, nil
	case KindIdentity:
		return Identity{}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown key naming policy %q", kind)
	}
}

// mapNames applies name to every key, always returning a non-nil slice.
func mapNames(keys []string, name func(string) string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = name(k)
	}
	return out
}

// Identity leaves keys unchanged.
type Identity struct{}

// Name returns key.
func (Identity) Name(key string) string { return key }

// Names returns a copy of keys.
func (Identity) Names(keys []string) []string {
	return mapNames(keys, func(k string) string { return k })
}

// Func adapts an ordinary function to Policy. The function must be
// deterministic and injective.
type Func func(key string) string

// Name calls f(key).
func (f Func) Name(key string) string { return f(key) }

// Names calls f for every key.
func (f Func) Names(keys []string) []string { return mapNames(keys, f) }
