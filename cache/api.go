// Package cache exposes the configuration of the package-level
// layout cache used by ptex nine-patches.
package cache

import "github.com/tinne26/ptex/internal"

// Default cache size value, in bytes.
const DefaultSize = 256*1024 // 256 KiB

// Approximate size of a single cached layout, in bytes.
const EntrySize = internal.LayoutEntryByteSize

// cache size constant verification
func init() {
	if DefaultSize != internal.DefaultCacheSize {
		panic("DefaultSize != internal.DefaultCacheSize")
	}
}

// Returns the current cache capacity. It's either [DefaultSize] or
// the last value set by the user through [SetCapacity]().
func GetCapacity() int {
	return internal.DefaultCache.Capacity()
}

// Sets the maximum cache size, in bytes. The default value is [DefaultSize].
// Values above 64MiB are not allowed.
// 
// Setting the capacity to zero clears the cache and disables memoization
// until the capacity is raised again. Nine-patches behave exactly the same
// with or without the cache; only construction costs change.
func SetCapacity(bytes int) {
	internal.DefaultCache.SetCapacity(bytes)
}

// Returns an approximation of the number of bytes taken by the layouts
// currently stored in the cache.
func GetCurrentSize() int {
	return internal.DefaultCache.CurrentSize()
}

// Returns an approximation of the maximum amount of bytes that the cache
// has been filled with at any point of its life.
func GetPeakSize() int {
	return int(internal.DefaultCache.PeakSize())
}

// Returns the number of nine-patch layouts currently cached. Each distinct
// descriptor geometry takes one entry, no matter how many nine-patches
// are created from it.
func GetNumEntries() int {
	return internal.DefaultCache.NumEntries()
}
