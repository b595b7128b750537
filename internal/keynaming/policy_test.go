package keynaming_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/redisx/internal/errors"
	"github.com/KirkDiggler/redisx/internal/keynaming"
)

type PolicyTestSuite struct {
	suite.Suite
}

func TestPolicySuite(t *testing.T) {
	suite.Run(t, new(PolicyTestSuite))
}

func (s *PolicyTestSuite) policies() map[string]keynaming.Policy {
	prefix, err := keynaming.NewPrefix(&keynaming.PrefixConfig{Namespace: "app"})
	s.Require().NoError(err)
	hashTag, err := keynaming.NewHashTag(&keynaming.PrefixConfig{Namespace: "app", Separator: "/"})
	s.Require().NoError(err)

	return map[string]keynaming.Policy{
		"prefix":   prefix,
		"hashtag":  hashTag,
		"identity": keynaming.Identity{},
		"func":     keynaming.Func(strings.ToUpper),
	}
}

func (s *PolicyTestSuite) TestName() {
	testCases := []struct {
		policy   string
		key      string
		expected string
	}{
		{policy: "prefix", key: "session:42", expected: "app:session:42"},
		{policy: "prefix", key: "", expected: "app:"},
		{policy: "hashtag", key: "tags", expected: "{app}/tags"},
		{policy: "identity", key: "tags", expected: "tags"},
		{policy: "func", key: "tags", expected: "TAGS"},
	}

	policies := s.policies()
	for _, tc := range testCases {
		s.Run(tc.policy+"/"+tc.key, func() {
			p := policies[tc.policy]
			s.Equal(tc.expected, p.Name(tc.key))
			s.Equal(p.Name(tc.key), p.Name(tc.key))
		})
	}
}

func (s *PolicyTestSuite) TestNamesMatchesName() {
	keys := []string{"b", "a", "b", "session:42", ""}

	for name, p := range s.policies() {
		s.Run(name, func() {
			out := p.Names(keys)
			s.Require().Len(out, len(keys))
			for i, k := range keys {
				s.Equal(p.Name(k), out[i])
			}
		})
	}
}

func (s *PolicyTestSuite) TestNamesDoesNotAliasInput() {
	keys := []string{"a", "b"}
	out := keynaming.Identity{}.Names(keys)
	out[0] = "changed"
	s.Equal("a", keys[0])
}

func (s *PolicyTestSuite) TestNamesEmpty() {
	for name, p := range s.policies() {
		s.Run(name, func() {
			s.NotNil(p.Names(nil))
			s.Empty(p.Names(nil))
		})
	}
}

func (s *PolicyTestSuite) TestDistinctKeysDoNotCollide() {
	prefix, err := keynaming.NewPrefix(&keynaming.PrefixConfig{Namespace: "app"})
	s.Require().NoError(err)

	keys := []string{"a", "b", "a:b", "ab", ":a", "app:a"}
	seen := make(map[string]string)
	for _, k := range keys {
		physical := prefix.Name(k)
		if other, ok := seen[physical]; ok {
			s.Failf("collision", "%q and %q both map to %q", k, other, physical)
		}
		seen[physical] = k
	}
	s.Equal("app:", prefix.Prefix())
}

func (s *PolicyTestSuite) TestConstructorErrors() {
	_, err := keynaming.NewPrefix(nil)
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = keynaming.NewPrefix(&keynaming.PrefixConfig{Namespace: " "})
	s.Error(err)
	s.Contains(err.Error(), "namespace")

	_, err = keynaming.NewHashTag(&keynaming.PrefixConfig{Namespace: "a{b}"})
	s.Error(err)
	s.Contains(err.Error(), "braces")
}

func (s *PolicyTestSuite) TestGlobCharactersRejected() {
	testCases := []struct {
		name   string
		config *keynaming.PrefixConfig
		field  string
	}{
		{name: "star namespace", config: &keynaming.PrefixConfig{Namespace: "app*"}, field: "namespace"},
		{name: "question namespace", config: &keynaming.PrefixConfig{Namespace: "a?p"}, field: "namespace"},
		{name: "class namespace", config: &keynaming.PrefixConfig{Namespace: "[ab]"}, field: "namespace"},
		{name: "escape namespace", config: &keynaming.PrefixConfig{Namespace: `a\p`}, field: "namespace"},
		{name: "star separator", config: &keynaming.PrefixConfig{Namespace: "app", Separator: "*"}, field: "separator"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := keynaming.NewPrefix(tc.config)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)

			_, err = keynaming.NewHashTag(tc.config)
			s.Error(err)
		})
	}
}

func (s *PolicyTestSuite) TestNew() {
	testCases := []struct {
		kind     keynaming.Kind
		expected string
		wantErr  bool
	}{
		{kind: keynaming.KindPrefix, expected: "svc.k"},
		{kind: keynaming.KindHashTag, expected: "{svc}.k"},
		{kind: keynaming.KindIdentity, expected: "k"},
		{kind: keynaming.Kind("md5"), wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(string(tc.kind), func() {
			p, err := keynaming.New(tc.kind, "svc", ".")
			if tc.wantErr {
				s.Error(err)
				s.Nil(p)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.expected, p.Name("k"))
		})
	}

	s.Equal([]string{"prefix", "hashtag", "identity"}, keynaming.Kinds())
}
