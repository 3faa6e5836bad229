package splitter

import "fmt"

// minBufferCap is the smallest capacity a growing buffer allocates, so that
// growth from an empty buffer terminates in one step instead of creeping up
// element by element.
const minBufferCap = 8

// IntBuffer is a growable buffer of int32 values.
//
// It exists for accumulation when the final element count is unknown up
// front: appends grow the backing storage by at-least-doubling, and Reset
// keeps the allocated capacity so one buffer can be reused across many Split
// calls without reallocation.
//
// An IntBuffer is not safe for concurrent use.
type IntBuffer struct {
	elts []int32
}

// NewIntBuffer returns a buffer with the given capacity hint.
// A hint of 0 allocates lazily on first insert.
func NewIntBuffer(hint int) *IntBuffer {
	b := &IntBuffer{}
	if hint > 0 {
		b.elts = make([]int32, 0, hint)
	}
	return b
}

// Len returns the number of logically valid elements.
func (b *IntBuffer) Len() int {
	return len(b.elts)
}

// Cap returns the current allocated capacity.
func (b *IntBuffer) Cap() int {
	return cap(b.elts)
}

// Reset sets the logical element count to 0. Allocated capacity is retained.
func (b *IntBuffer) Reset() {
	b.elts = b.elts[:0]
}

// At returns the element at index i. It panics if i is out of range.
func (b *IntBuffer) At(i int) int32 {
	return b.elts[i]
}

// Append adds v after the last element, growing capacity if needed.
func (b *IntBuffer) Append(v int32) {
	b.InsertAt(len(b.elts), v)
}

// InsertAt inserts v at index i, shifting later elements right.
// i must satisfy 0 <= i <= Len(); InsertAt panics otherwise.
//
// Inserting may reallocate the backing storage, so callers must not retain
// slices previously returned by Materialize as views into the buffer (they
// are copies and remain valid, but the buffer's own storage may move).
func (b *IntBuffer) InsertAt(i int, v int32) {
	if i < 0 || i > len(b.elts) {
		panic(fmt.Sprintf("splitter: IntBuffer.InsertAt index %d out of range [0,%d]", i, len(b.elts)))
	}
	if len(b.elts) == cap(b.elts) {
		b.grow()
	}
	b.elts = b.elts[:len(b.elts)+1]
	copy(b.elts[i+1:], b.elts[i:])
	b.elts[i] = v
}

// grow reallocates the backing storage at double the current capacity,
// with minBufferCap as the floor.
func (b *IntBuffer) grow() {
	newCap := 2 * cap(b.elts)
	if newCap < minBufferCap {
		newCap = minBufferCap
	}
	next := make([]int32, len(b.elts), newCap)
	copy(next, b.elts)
	b.elts = next
}

// Materialize returns a copy of the buffer's logical contents in insertion
// order, independent of spare capacity. The buffer remains usable afterward.
// An empty buffer materializes to an empty, non-nil slice.
func (b *IntBuffer) Materialize() []int32 {
	out := make([]int32, len(b.elts))
	copy(out, b.elts)
	return out
}
