// Package cache implements a fixed-capacity, single-process LRU cache
// keyed and valued by integers.
//
// Goals for this package:
//   - Make the core data structures explicit (index map + slot-based recency list)
//   - Provide O(1) Get/Put via map lookup and prev/next splicing
//   - Never hand out references into the cache; callers only see values
//   - Fail at construction, not later: a valid Cache never errors
//
// A Cache is not safe for concurrent use. Give each goroutine its own.
package cache
