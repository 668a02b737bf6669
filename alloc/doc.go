// Package alloc provides the allocator façades layered on top of pool:
// RecycleAllocator recycles memory only, AggressiveRecycleAllocator
// recycles memory and element state. Both route through the same typed
// pool for a given (T, A) pair; they differ only in what Construct and
// Destroy do and in which recycling flavour Allocate requests.
package alloc
