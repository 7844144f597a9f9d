package internal

import "fmt"
import "image"
import "sync"

// Default layout cache size value, in bytes.
const DefaultCacheSize = 256*1024 // 256 KiB

// Approximate memory taken by a cached layout: nine rectangles, the
// key, the map slot and the linking pointers.
const LayoutEntryByteSize = 9*4*8 + 8*8 + 48

// Package level cache for nine-patch layouts. Deriving the nine slices
// of a descriptor is cheap, but panels are often created in large
// numbers from a handful of descriptors (one per button, per dialog,
// per tooltip...), so memoizing them is still worth it.
var DefaultCache *Cache = NewCache(DefaultCacheSize)

// The geometry of a nine-patch descriptor: top-left x, y, w, h
// followed by bottom-right x, y, w, h.
type LayoutKey [8]int

type cachedLayoutEntry struct {
	key LayoutKey
	slices [9]image.Rectangle // read-only
	older *cachedLayoutEntry // towards lru
	newer *cachedLayoutEntry // towards mru
}

// An LRU cache of derived nine-patch slices, bounded by an
// approximate byte capacity. Safe for concurrent use.
type Cache struct {
	entries map[LayoutKey]*cachedLayoutEntry
	mru *cachedLayoutEntry
	lru *cachedLayoutEntry

	mutex sync.Mutex
	capacity uint64
	currentSize uint64
	peakSize uint64 // (max ever size)
}

func NewCache(capacity int) *Cache {
	const maxCapacity = 64*1024*1024 // 64 MiB

	if capacity < 0 { panic("can't create cache with negative capacity") }
	if capacity > maxCapacity {
		capacity = maxCapacity
		Logger().Warn("ptex: excessive layout cache capacity requested, limited to 64MiB")
	}
	return &Cache{
		capacity: uint64(capacity),
		entries: make(map[LayoutKey]*cachedLayoutEntry, 16),
	}
}

func (self *Cache) Capacity() int {
	self.mutex.Lock()
	capacity := self.capacity
	self.mutex.Unlock()
	return int(capacity)
}

func (self *Cache) SetCapacity(bytes int) {
	if bytes < 0 { panic("can't cache.SetCapacity(bytes) with bytes < 0") }
	self.mutex.Lock()
	if bytes == 0 {
		clear(self.entries)
		self.mru, self.lru = nil, nil
		self.currentSize = 0
	} else {
		for self.currentSize > uint64(bytes) {
			self.removeOldestEntry()
		}
	}
	self.capacity = uint64(bytes)
	self.mutex.Unlock()
}

func (self *Cache) CurrentSize() int {
	self.mutex.Lock()
	currentSize := self.currentSize
	self.mutex.Unlock()
	return int(currentSize)
}

func (self *Cache) PeakSize() uint64 {
	self.mutex.Lock()
	peakSize := self.peakSize
	self.mutex.Unlock()
	return peakSize
}

// Returns the number of layouts currently in the cache.
func (self *Cache) NumEntries() int {
	self.mutex.Lock()
	numEntries := len(self.entries)
	self.mutex.Unlock()
	return numEntries
}

// Returns the cached slices for the given key, if any, and marks
// the entry as the most recently used.
func (self *Cache) GetLayout(key LayoutKey) ([9]image.Rectangle, bool) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	entry, found := self.entries[key]
	if !found { return [9]image.Rectangle{}, false }
	self.bump(entry)
	return entry.slices, true
}

func (self *Cache) SetLayout(key LayoutKey, slices [9]image.Rectangle) {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	// update existing entry case
	entry, found := self.entries[key]
	if found {
		entry.slices = slices
		self.bump(entry)
		return
	}

	// ensure free space
	if LayoutEntryByteSize > self.capacity { return } // can't fit layout into cache
	for self.currentSize + LayoutEntryByteSize > self.capacity {
		self.removeOldestEntry()
	}

	// create new entry and set it as mru
	entry = &cachedLayoutEntry{ key: key, slices: slices }
	self.entries[key] = entry
	self.currentSize += LayoutEntryByteSize
	self.pushNewest(entry)

	// update peak size if necessary
	if self.currentSize > self.peakSize {
		self.peakSize = self.currentSize
	}
}

// precondition: must be called with the cache locked
func (self *Cache) bump(entry *cachedLayoutEntry) {
	if entry == self.mru { return }
	self.unlink(entry)
	self.pushNewest(entry)
}

// precondition: must be called with the cache locked
func (self *Cache) pushNewest(entry *cachedLayoutEntry) {
	entry.newer = nil
	entry.older = self.mru
	if self.mru != nil { self.mru.newer = entry }
	self.mru = entry
	if self.lru == nil { self.lru = entry }
}

// precondition: must be called with the cache locked
func (self *Cache) unlink(entry *cachedLayoutEntry) {
	if entry.older != nil {
		entry.older.newer = entry.newer
	} else {
		self.lru = entry.newer
	}
	if entry.newer != nil {
		entry.newer.older = entry.older
	} else {
		self.mru = entry.older
	}
	entry.older, entry.newer = nil, nil
}

// Precondition: the cache is locked and not empty.
// If there's nothing to remove, this method will panic.
func (self *Cache) removeOldestEntry() {
	if self.lru == nil { panic("broken code") }
	oldest := self.lru
	if _, found := self.entries[oldest.key]; !found {
		panic(fmt.Sprintf("broken code: lru entry %v not indexed", oldest.key))
	}
	self.unlink(oldest)
	delete(self.entries, oldest.key)
	self.currentSize -= LayoutEntryByteSize
}
