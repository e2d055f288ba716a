// SPDX-License-Identifier: MIT

// Package lvdata is an in-memory engine for live tabular numeric data:
// tables that notify dependants when they change, filters that re-derive
// their output on every change, and consumers that keep statistics and
// histograms of whatever they observe current.
//
// What is in the box?
//
//	source/       Source and Listener contracts, the Notifier registry,
//	              the mutable Table and the Series column view
//	kernel/       offset-indexed convolution kernels and their arithmetic,
//	              plus Uniform, Binomial and Gaussian factories
//	selection/    randomized quickselect for order statistics and medians
//	filter/       boundary Modes, the shared Filter machinery,
//	              Convolution and Median filters
//	statistics/   moments, extrema and quartiles per column, per row and
//	              in total
//	histogram/    equal-width or explicit-break histograms per column
//
// Every derived object is itself a source.Source, so filters stack:
//
//	tbl ─▶ Median ─▶ Convolution ─▶ Statistics
//	                             └─▶ Histogram
//
// Propagation is synchronous and depth-first: when Table.Add returns, every
// dependant in the chain has already been rebuilt.
//
// Nothing here is safe for concurrent mutation; confine a pipeline to one
// goroutine or guard it externally.
//
// See examples/ for a runnable sensor-smoothing pipeline.
package lvdata
