package keynaming

import (
	"strings"

	"github.com/KirkDiggler/redisx/internal/errors"
)

// PrefixConfig configures the namespacing policies.
type PrefixConfig struct {
	Namespace string
	// Separator defaults to DefaultSeparator when empty.
	Separator string
}

// globChars are special in KEYS/SCAN patterns. A prefix holding one would let
// a namespaced pattern match keys outside the namespace.
const globChars = `*?[]\`

// Validate ensures a namespace is present and that neither the namespace nor
// the separator contains glob characters.
func (c *PrefixConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("namespace", c.Namespace, vb)
	if strings.ContainsAny(c.Namespace, globChars) {
		vb.Fieldf("namespace", "cannot contain any of %s", globChars)
	}
	if strings.ContainsAny(c.Separator, globChars) {
		vb.Fieldf("separator", "cannot contain any of %s", globChars)
	}
	return vb.Build()
}

func (c *PrefixConfig) separator() string {
	if c.Separator == "" {
		return DefaultSeparator
	}
	return c.Separator
}

// Prefix stores every key as namespace + separator + key, e.g. "app:session:42".
type Prefix struct {
	prefix string
}

// NewPrefix creates a prefix policy
func NewPrefix(cfg *PrefixConfig) (*Prefix, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid prefix policy config")
	}
	return &Prefix{prefix: cfg.Namespace + cfg.separator()}, nil
}

// Name prepends the namespace prefix.
func (p *Prefix) Name(key string) string {
	return p.prefix + key
}

// Names prepends the namespace prefix to every key.
func (p *Prefix) Names(keys []string) []string {
	return mapNames(keys, p.Name)
}

// Prefix returns the full prefix including the separator.
func (p *Prefix) Prefix() string {
	return p.prefix
}

// HashTag stores every key as "{namespace}" + separator + key. Redis Cluster
// hashes only the tag, so every key of a namespace lands in one slot and
// multi-key commands (SUNIONSTORE, ZINTERSTORE, PFMERGE) keep working.
type HashTag struct {
	prefix string
}

// NewHashTag creates a hash-tag policy. The namespace may not contain braces.
func NewHashTag(cfg *PrefixConfig) (*HashTag, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid hash tag policy config")
	}
	if strings.ContainsAny(cfg.Namespace, "{}") {
		return nil, errors.InvalidArgumentf("namespace %q cannot contain braces", cfg.Namespace)
	}
	return &HashTag{prefix: "{" + cfg.Namespace + "}" + cfg.separator()}, nil
}

// Name prepends the hash-tagged namespace.
func (h *HashTag) Name(key string) string {
	return h.prefix + key
}

// Names prepends the hash-tagged namespace to every key.
func (h *HashTag) Names(keys []string) []string {
	return mapNames(keys, h.Name)
}

var (
	_ Policy = Identity{}
	_ Policy = Func(nil)
	_ Policy = (*Prefix)(nil)
	_ Policy = (*HashTag)(nil)
)
