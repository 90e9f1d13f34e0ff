// Package metrics holds the Prometheus collectors for affinity builds and
// recommendation requests.
//
// A *Collector is registered on the Registerer passed to New. All methods are
// nil-safe: components accept a nil *Collector and simply record nothing,
// which keeps metrics optional for library callers and tests.
//
// SPDX-License-Identifier: MIT
package metrics
