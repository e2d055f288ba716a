// SPDX-License-Identifier: MIT

// Package filter derives new tabular sources from existing ones by applying
// per-column windowed transformations.
//
// What is a Filter?
//
//	A Filter subscribes to an upstream source.Source, keeps a cache of
//	filtered rows and republishes them through the same Source contract.
//	Whenever the upstream notifies a change (or a local setter changes the
//	output), the cache is rebuilt from scratch and the filter notifies its
//	own listeners. Filters chain:
//
//	table ─▶ Convolution ─▶ Median ─▶ statistics / histogram
//
// Filters in this package:
//   - Convolution: weighted running sum over a kernel.Kernel.
//   - Median: sliding-window median using package selection.
//
// Boundary handling:
//
//	Windows near the first and last row read rows that do not exist. Mode
//	decides what such reads return:
//
//	  Omit     → NaN ("no data"; poisons the window)
//	  Zero     → 0
//	  Repeat   → nearest edge row
//	  Mirror   → reflection off the edges
//	  Circular → |row| modulo the row count
//
// Columns:
//
//	Only the configured columns are filtered; an empty column set filters
//	every column. Other columns are copied through unchanged. Both filters
//	preserve row correspondence, so output shape equals upstream shape
//	(except Median with a non-positive window, which produces no rows).
//
// Lifecycle:
//
//	A filter is attached on construction and stays subscribed until Detach.
//	Filters are not safe for concurrent use.
package filter
