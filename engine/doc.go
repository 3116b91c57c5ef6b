// SPDX-License-Identifier: MIT

// Package engine is the load/query boundary of neuronet.
//
// An Engine owns at most one immutable Snapshot (graph, degree index and
// statistics). Load parses an edge list, builds a new snapshot off to the
// side and publishes it atomically; queries read whichever snapshot is
// current without taking a lock, so they never block on a load and never
// observe a half-built graph. A failed load leaves the previous snapshot in
// place.
//
// Loads are serialised by a mutex. BFSMany fans traversals out over one
// snapshot with a bounded errgroup.
//
// Every load and query is traced and measured through the global
// OpenTelemetry providers (see package telemetry) and logged through slog.
package engine
