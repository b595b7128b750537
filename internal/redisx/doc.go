// Package redisx wraps go-redis with a key naming policy.
//
// Application code works with logical keys ("session:42"); every facade in
// this package rewrites each key-typed argument through a keynaming.Policy
// before the command reaches Redis ("app:session:42"). Non-key arguments
// are passed through untouched, and results come back exactly as go-redis
// returned them.
//
// # Families
//
// A Template hands out one facade per Redis data type:
//
//	tmpl, err := redisx.NewTemplate(&redisx.Config{Client: client, Policy: policy})
//	tmpl.OpsForValue().Set(ctx, "session:42", "v", time.Hour)
//	tmpl.OpsForSet().SAdd(ctx, "tags", "go", "redis")
//	tmpl.OpsForZSet().ZAdd(ctx, "scores", redis.Z{Score: 1, Member: "alice"})
//
// Each OpsForX method returns the same instance on every call. Facades hold
// only the client and the policy, so they are safe for concurrent use when
// the client is.
//
// # Bound facades
//
// A bound facade names its key once, when it is created, and reuses the
// physical key for every call:
//
//	tags := tmpl.BoundSetOps("tags")
//	tags.Add(ctx, "x")
//	tags.Members(ctx)
//
// # Results are not translated
//
// Keys that appear in results (KEYS, SCAN, BLPOP, cluster slot listings) are
// physical keys. The facades never strip the namespace back off.
//
// # Errors
//
// Store errors, including redis.Nil, reach the caller verbatim through the
// returned command. The facades add no retries and no wrapping.
package redisx
