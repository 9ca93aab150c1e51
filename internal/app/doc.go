// Package app provides the orchestration layer for tagdeck.
//
// # Overview
//
// This package wires together configuration, logging, the links client, the
// shared state store and a front end. It is the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
// Every front end starts from Bootstrap:
//
//  1. Load ~/.config/tagdeck/config.toml (or the given path)
//  2. Apply CLI overrides and validate the endpoint
//  3. Create the links HTTP client
//  4. Open the logger (file for the TUI, a caller writer otherwise)
//  5. Create the shared state.Store and the Loader
//
// Run, Serve and Fetch then attach the terminal UI, the web shell or a
// one-shot load respectively.
//
// # Components
//
//   - app.go: Bootstrap plus the Run, Serve and Fetch entry points
//   - loader.go: Loader, which moves fetch results into the store
//
// # Data Flow
//
//	┌──────────────┐
//	│ Bootstrap()  │ Initialize core
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read tagdeck config
//	       ├─────> links.NewClient()  Create HTTP client
//	       ├─────> logging.OpenFile() File logger
//	       └─────> NewLoader()        Store + singleflight
//
//	Reload:
//	┌─────────────────────────────────────────┐
//	│ Loader.Reload(ctx)                      │
//	│  ├─> store.Begin()      (Loading)       │
//	│  ├─> client.Load()                      │
//	│  └─> store.Replace() or store.Fail()    │
//	│      └─> renderers read Snapshot()      │
//	└─────────────────────────────────────────┘
//
// # Reload Behavior
//
// There is no polling. A load happens on start and whenever the user asks
// for a retry. Overlapping reloads are collapsed with singleflight: a retry
// pressed while a fetch is in flight waits for that fetch rather than racing
// a second result into the store.
//
// # Error Handling
//
// Fatal errors (returned from Run/Serve):
//   - Configuration file invalid or endpoint missing
//   - Client or logger initialization failure
//
// Recoverable errors (shown as the error screen, retry on demand):
//   - Transport failures and non-2xx statuses
//   - Undecodable bodies and success=false envelopes
//
// Install worker registration failures are logged and otherwise ignored.
//
// # Usage Example
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		log.Fatalf("tagdeck failed: %v", err)
//	}
package app
