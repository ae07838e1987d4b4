// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

/*
Package supervisor runs StyleMate's long-lived services under a suture v4
supervisor tree.

	stylemate
	├── data-layer
	│   └── CatalogWatcherService (if catalog.watch or catalog.reload_interval)
	└── api-layer
	    └── HTTPServerService

Each layer restarts its children independently with exponential backoff.
Supervisor events are logged through sutureslog, which main wires to the
zerolog-backed slog adapter from internal/logging.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logging.Logger()), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewCatalogWatcherService(...))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Service implementations live in the services subpackage.
*/
package supervisor
