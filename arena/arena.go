// Package arena provides a generation-checked buffer arena for the host boundary.
package arena

import (
	"errors"
	"unsafe"
)

var (
	// ErrOutOfMemory indicates an allocation would exceed the arena's
	// configured byte capacity.
	ErrOutOfMemory = errors.New("arena: allocation exceeds capacity limit")

	// ErrBadHandle indicates a handle that was never issued, has already
	// been released, or is stale from a previous slot generation.
	ErrBadHandle = errors.New("arena: invalid or released handle")

	// ErrBadSize indicates a non-positive allocation size.
	ErrBadSize = errors.New("arena: size must be positive")
)

// Handle identifies a live buffer in an Arena. Handles are index+generation
// pairs rather than raw pointers: using a handle after its buffer has been
// released is a detectable error, not memory corruption. The zero Handle is
// never valid.
type Handle struct {
	index uint32
	gen   uint32
}

type slot struct {
	data []byte
	gen  uint32
	live bool
}

// Arena owns a set of explicitly allocated, explicitly released byte buffers.
// An Arena is not safe for concurrent use; give each concurrent caller its
// own instance or serialize access.
type Arena struct {
	slots []slot
	free  []uint32
	inUse int
	limit int
}

// New creates an arena. A limit of zero or less means no byte capacity limit.
func New(limit int) *Arena {
	return &Arena{limit: limit}
}

// Alloc reserves size bytes and returns a handle to the zeroed buffer.
func (a *Arena) Alloc(size int) (Handle, error) {
	if size <= 0 {
		return Handle{}, ErrBadSize
	}
	if a.limit > 0 && a.inUse+size > a.limit {
		return Handle{}, ErrOutOfMemory
	}

	var idx uint32
	if len(a.free) > 0 {
		idx = a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
	} else {
		a.slots = append(a.slots, slot{})
		idx = uint32(len(a.slots) - 1)
	}

	s := &a.slots[idx]
	s.data = make([]byte, size)
	s.gen++
	s.live = true
	a.inUse += size

	return Handle{index: idx, gen: s.gen}, nil
}

// Release returns a buffer to the arena. Releasing a handle twice, or a
// handle the arena never issued, returns ErrBadHandle.
func (a *Arena) Release(h Handle) error {
	s, err := a.lookup(h)
	if err != nil {
		return err
	}
	a.inUse -= len(s.data)
	s.data = nil
	s.live = false
	a.free = append(a.free, h.index)
	return nil
}

// Bytes returns the raw byte buffer for a live handle.
func (a *Arena) Bytes(h Handle) ([]byte, error) {
	s, err := a.lookup(h)
	if err != nil {
		return nil, err
	}
	return s.data, nil
}

// Float32 returns the buffer viewed as float32 elements. The view aliases
// the underlying bytes, so writes through it are visible to later reads.
// Trailing bytes that do not fill a whole element are not included.
func (a *Arena) Float32(h Handle) ([]float32, error) {
	s, err := a.lookup(h)
	if err != nil {
		return nil, err
	}
	n := len(s.data) / 4
	if n == 0 {
		return []float32{}, nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&s.data[0])), n), nil
}

// Outstanding returns the number of live buffers.
func (a *Arena) Outstanding() int {
	return len(a.slots) - len(a.free)
}

// InUse returns the number of live bytes.
func (a *Arena) InUse() int {
	return a.inUse
}

// Limit returns the configured byte capacity, or zero if unlimited.
func (a *Arena) Limit() int {
	return a.limit
}

func (a *Arena) lookup(h Handle) (*slot, error) {
	if int(h.index) >= len(a.slots) {
		return nil, ErrBadHandle
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, ErrBadHandle
	}
	return s, nil
}
