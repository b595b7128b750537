package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
)

type CLITestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
}

func (s *CLITestSuite) execute(args ...string) (string, error) {
	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--redis-url", "redis://" + s.mr.Addr(), "--namespace", "app"}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CLITestSuite) lines(out string) []string {
	return strings.Split(strings.TrimSpace(out), "\n")
}

func (s *CLITestSuite) TestSetAndGet() {
	out, err := s.execute("set", "session:42", "v")
	s.Require().NoError(err)
	s.Equal("OK\n", out)

	stored, err := s.mr.Get("app:session:42")
	s.Require().NoError(err)
	s.Equal("v", stored)

	out, err = s.execute("get", "session:42")
	s.Require().NoError(err)
	s.Equal("v\n", out)
}

func (s *CLITestSuite) TestGetMissing() {
	out, err := s.execute("get", "missing")
	s.Require().NoError(err)
	s.Equal("(nil)\n", out)
}

func (s *CLITestSuite) TestSetWithTTL() {
	_, err := s.execute("set", "token", "t", "--ttl", "1m")
	s.Require().NoError(err)
	s.Equal(time.Minute, s.mr.TTL("app:token"))

	out, err := s.execute("ttl", "token")
	s.Require().NoError(err)
	s.Equal("1m0s\n", out)

	out, err = s.execute("ttl", "nope")
	s.Require().NoError(err)
	s.Equal("-2\n", out)
}

func (s *CLITestSuite) TestIncrAndDel() {
	out, err := s.execute("incr", "hits")
	s.Require().NoError(err)
	s.Equal("1\n", out)

	out, err = s.execute("incr", "hits", "--by", "5")
	s.Require().NoError(err)
	s.Equal("6\n", out)

	out, err = s.execute("del", "hits", "missing")
	s.Require().NoError(err)
	s.Equal("1\n", out)
	s.False(s.mr.Exists("app:hits"))
}

func (s *CLITestSuite) TestKeysPrintsPhysicalKeys() {
	s.Require().NoError(s.mr.Set("app:user:1", "a"))
	s.Require().NoError(s.mr.Set("other:user:2", "b"))

	out, err := s.execute("keys", "user:*")
	s.Require().NoError(err)
	s.Equal("app:user:1\n", out)
}

func (s *CLITestSuite) TestList() {
	out, err := s.execute("lpush", "queue", "a", "b")
	s.Require().NoError(err)
	s.Equal("2\n", out)

	out, err = s.execute("lrange", "queue", "0", "-1")
	s.Require().NoError(err)
	s.Equal([]string{"b", "a"}, s.lines(out))

	out, err = s.execute("lrange", "queue", "-1", "-1")
	s.Require().NoError(err)
	s.Equal("a\n", out)

	out, err = s.execute("--timeout", "2s", "lrange", "queue", "-2", "-1")
	s.Require().NoError(err)
	s.Equal([]string{"b", "a"}, s.lines(out))

	_, err = s.execute("lrange", "queue", "zero", "-1")
	s.Error(err)
}

func (s *CLITestSuite) TestSet() {
	out, err := s.execute("sadd", "tags", "go", "redis", "go")
	s.Require().NoError(err)
	s.Equal("2\n", out)

	members, err := s.mr.Members("app:tags")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"go", "redis"}, members)

	out, err = s.execute("smembers", "tags")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"go", "redis"}, s.lines(out))
}

func (s *CLITestSuite) TestHash() {
	out, err := s.execute("hset", "user:1", "name", "ann", "age", "30")
	s.Require().NoError(err)
	s.Equal("2\n", out)

	out, err = s.execute("hgetall", "user:1")
	s.Require().NoError(err)
	s.Equal("age=30\nname=ann\n", out)

	_, err = s.execute("hset", "user:1", "dangling")
	s.Error(err)
}

func (s *CLITestSuite) TestZSet() {
	out, err := s.execute("zadd", "board", "2", "bob", "1", "ann")
	s.Require().NoError(err)
	s.Equal("2\n", out)

	out, err = s.execute("zrange", "--withscores", "board", "0", "-1")
	s.Require().NoError(err)
	s.Equal("ann 1\nbob 2\n", out)

	out, err = s.execute("zadd", "board", "-1.5", "cat")
	s.Require().NoError(err)
	s.Equal("1\n", out)

	out, err = s.execute("zrange", "board", "0", "-1")
	s.Require().NoError(err)
	s.Equal([]string{"cat", "ann", "bob"}, s.lines(out))

	_, err = s.execute("zadd", "board", "high", "carl")
	s.Error(err)
}

func (s *CLITestSuite) TestHyperLogLog() {
	_, err := s.execute("pfadd", "visits", "u1", "u2", "u3")
	s.Require().NoError(err)
	s.True(s.mr.Exists("app:visits"))

	out, err := s.execute("pfcount", "visits")
	s.Require().NoError(err)
	s.Equal("3\n", out)
}

func (s *CLITestSuite) TestIdentityPolicy() {
	_, err := s.execute("--policy", "identity", "set", "raw", "v")
	s.Require().NoError(err)
	s.True(s.mr.Exists("raw"))
}

func (s *CLITestSuite) TestInvalidPolicy() {
	_, err := s.execute("--policy", "reverse", "get", "k")
	s.Error(err)
}
