// SPDX-License-Identifier: MIT

// Package statistics keeps descriptive statistics of a source.Source
// current. It subscribes to the source on construction and recomputes
// everything, per column, per row and in total, on each change notification.
//
// Usage:
//
//	s := statistics.New(tbl)
//	mean := s.Get(0, statistics.Mean)
//	spread := s.Get(0, statistics.Variance) // raw centered sum, not divided by N
//
// See statistics.go for the exact moment definitions.
package statistics
