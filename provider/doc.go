// Package provider resolves, caches and composes data providers.
//
// A DataProvider reads and writes one data.Key on data holders. Several
// providers may serve the same key; the Registry keeps them in
// registration order and resolves them per holder type:
//
//   - no applicable provider resolves to an empty provider that reports
//     every value as absent and refuses offers,
//   - one provider resolves to itself,
//   - several resolve to a delegate that tries them in order.
//
// Resolutions are memoized until the next Register call.
//
// # Usage
//
//	reg := provider.Default()
//	reg.MustRegister(provider.For[*Player](HealthKey).
//	    HolderType(PlayerType).
//	    Get(func(p *Player) (float64, bool) { return p.Health, true }).
//	    Build())
//
//	lookup := reg.Lookup(PlayerType)
//	health, ok, err := provider.GetValue(ctx, lookup, player, HealthKey)
//
// # Middleware
//
// Middleware wraps providers at registration time:
//
//	reg := provider.NewRegistry(provider.WithMiddleware(
//	    provider.WithTracing("game"),
//	    provider.WithMetrics(metrics),
//	    provider.WithLogging(log),
//	))
//
// NewFromConfig builds the same from a Config section.
package provider
