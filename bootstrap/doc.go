// Package bootstrap orchestrates the application lifecycle around a data
// provider registry.
//
// NewApp applies configuration defaults, validates them, initializes the
// logger, optionally starts OpenTelemetry export and builds the provider
// registry from the provider section. Providers are registered in
// OnConfigure callbacks.
//
// # Quick Start
//
//	cfg, err := bootstrap.Load("game-data")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app, err := bootstrap.NewApp(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app.OnConfigure(func(ctx context.Context, a *bootstrap.App) error {
//	    return a.Providers.Register(healthProvider)
//	})
//	if err := app.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Components start in registration order and stop in reverse on SIGINT,
// SIGTERM or context cancellation.
package bootstrap
