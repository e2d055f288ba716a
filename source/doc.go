// SPDX-License-Identifier: MIT

// Package source defines the tabular data contract shared by every lvdata
// component, together with the in-memory root Table and change notification.
//
// What is a Source?
//
//	A Source is a 2D grid of float64 cells addressed by (column, row).
//	Every row has the same width. Consumers read cells by index and
//	subscribe to "data changed" events; there is no delta payload, a
//	listener simply re-reads what it needs.
//
// Push-based recomputation:
//
//	Table ──notify──▶ Convolution ──notify──▶ Median ──notify──▶ Histogram
//
//	A mutation on the root Table synchronously rebuilds every downstream
//	derived source, depth-first and in listener registration order, before
//	the mutating call returns.
//
// Lifecycle:
//
//   - Listeners are non-owning references. A derived component stays
//     subscribed until it calls its Detach method.
//   - Cycles (a derived source that is transitively its own upstream) are a
//     caller error and are not detected.
//
// Concurrency:
//
//	Sources are not safe for concurrent use. All recomputation happens on
//	the goroutine that performed the mutation.
package source
