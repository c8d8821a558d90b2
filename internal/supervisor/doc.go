// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package supervisor provides process supervision for CineMatch using suture v4.

# Overview

Long-running services are organized into a two-layer tree:

	RootSupervisor ("cinematch")
	├── DataSupervisor ("data-layer")
	│   └── CacheJanitorService (when the rank cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The catalog load, TF-IDF fit and similarity matrix build happen in main
before the tree starts. They are one-shot computations, not services, and a
failure there produces an unavailable recommend.Service rather than a crash
loop.

# Usage Example

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddDataService(services.NewCacheJanitorService(svc, cfg.Cache.CleanupInterval, zl))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, zl))

	errCh := tree.ServeBackground(ctx)
	<-errCh

# Failure Handling

Each failure increments a counter that decays over FailureDecay seconds.
When the counter exceeds FailureThreshold the supervisor waits
FailureBackoff before the next restart.

Return behavior of a service:
  - error: crashed, will be restarted
  - suture.ErrDoNotRestart: removed from the tree
  - context error after cancellation: shutdown requested

# Debugging Shutdown Issues

	report, err := tree.UnstoppedServiceReport()

lists services that ignored cancellation past ShutdownTimeout.
*/
package supervisor
