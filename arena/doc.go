// Package arena provides allocation and release of buffers exchanged with a host.
//
// An Arena owns a set of contiguous byte buffers with caller-managed
// lifetimes: a buffer is created by an explicit Alloc call, used through its
// Handle, and destroyed by an explicit Release call. There is no implicit
// reclamation.
//
// Handles carry a generation counter in addition to a slot index. Releasing
// a handle bumps the slot's generation, so any later use of that handle
// (a read, a write view, or a second release) fails with ErrBadHandle
// instead of silently touching memory that has been handed to someone else.
//
// # Usage
//
//	a := arena.New(0) // no capacity limit
//	h, err := a.Alloc(n * 4)
//	if err != nil {
//	    return err
//	}
//	buf, _ := a.Float32(h)
//	copy(buf, input)
//	// ... invoke compute entry points against h ...
//	if err := a.Release(h); err != nil {
//	    return err
//	}
//
// A capacity limit can be set at construction; allocations beyond it fail
// with ErrOutOfMemory, which callers must check just as a host checks a null
// allocation result.
//
// An Arena is not safe for concurrent use from multiple callers. Hosts
// running independent workers should create one arena per worker.
package arena
