// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

package core

import "fmt"

// Magic is the default sentinel written into every Allocation Header and
// checked at free. A custom value may be supplied via Engine.SetMagic,
// mainly for tests that want to exercise the corrupt-pointer path.
const Magic uint64 = 1234567

// Region is the contiguous, writable byte range an Engine manages. Base
// is its address, used as the zero point for all buddy arithmetic; Bytes
// is a Go view over the same memory, kept alive for the Engine's lifetime
// so the backing storage is never collected out from under live pointers.
type Region struct {
	Base  uintptr
	Bytes []byte
}

// Acquirer supplies the contiguous region an Engine lazily initializes
// itself over. It is the core-facing half of region.Provider; the root
// package adapts a region.Provider to it, since region.Provider returns
// region.Region rather than this package's Region.
type Acquirer interface {
	Acquire(hint uintptr, length int) (Region, error)
}

// Block describes one free block as reported by Traverse: its address and
// its Free Node size field.
type Block struct {
	Addr uintptr
	Size int
}

// Engine is the binary-buddy allocator state: the immutable arena base and
// length, the mutable free-list head, and the provider used to acquire the
// arena on first use. It is not safe for concurrent use — callers
// serialize access to a given Engine externally.
type Engine struct {
	provider Acquirer
	hint     uintptr
	bytes    int
	magic    uint64

	acquired bool
	region   Region
	head     uintptr // 0 == nil
}

// NewEngine returns an Engine that will lazily acquire a region of
// arenaBytes from provider, hinted at baseHint, the first time Allocate is
// called.
func NewEngine(provider Acquirer, arenaBytes int, baseHint uintptr) *Engine {
	return &Engine{
		provider: provider,
		hint:     baseHint,
		bytes:    arenaBytes,
		magic:    Magic,
	}
}

// SetMagic overrides the sentinel value written into Allocation Headers.
// Intended for tests exercising the corrupt-pointer free path; production
// callers should leave it at the default.
func (e *Engine) SetMagic(m uint64) { e.magic = m }

// ensureAcquired performs the lazy region acquisition and writes the
// initial whole-arena Free Node the first time it's called. A failure to
// acquire the region is an external precondition violation, not a
// recoverable allocator error, so it panics rather than propagating an
// error through every subsequent call.
func (e *Engine) ensureAcquired() {
	if e.acquired {
		return
	}
	reg, err := e.provider.Acquire(e.hint, e.bytes)
	if err != nil {
		panic(fmt.Errorf("%w: %v", ErrRegionAcquire, err))
	}
	e.region = reg
	e.head = reg.Base
	root := nodeAt(reg.Base)
	root.size = uint64(e.bytes) - uint64(sizeofNode)
	root.next = 0
	e.acquired = true
}

// Allocate runs a first-fit scan of the free list, splits the winning
// block down to size, writes its in-band header, and returns the payload
// address. It returns ErrOutOfMemory (and leaves the free list unchanged)
// if no block is large enough.
func (e *Engine) Allocate(requestBytes int) (uintptr, error) {
	e.ensureAcquired()

	needed := uint64(requestBytes) + uint64(sizeofHeader)

	var prev uintptr
	cur := e.head
	for cur != 0 {
		curNode := nodeAt(cur)
		if curNode.size >= needed {
			target := e.split(cur, needed)
			return e.place(target, prev), nil
		}
		prev = cur
		cur = curNode.next
	}

	return 0, ErrOutOfMemory
}

// split repeatedly halves the block at addr while doing so would still
// leave enough room for needed bytes, and returns the (possibly
// unchanged) address of the left-hand survivor.
//
// The comparison (size-sizeofNode)/2 > needed, not size/2 >= needed, is
// deliberate: every split consumes one additional node preamble for the
// new right child, so the halving ladder is not an exact power-of-two
// progression of payload bytes. Reproducing the arithmetic verbatim is
// what keeps buddy addresses consistent with layout.go.
func (e *Engine) split(addr uintptr, needed uint64) uintptr {
	for {
		n := nodeAt(addr)
		if (n.size-uint64(sizeofNode))/2 <= needed {
			return addr
		}

		splitable := n.size - uint64(sizeofNode)
		next := n.next
		half := splitable / 2

		childAddr := addr + sizeofNode + uintptr(half)
		child := nodeAt(childAddr)

		n.size = half
		n.next = childAddr

		child.size = half
		child.next = next

		Logger().Debug("core: split", "addr", addr, "child", childAddr, "size", half)
	}
}

// place writes the Allocation Header for the block at target, marks it
// allocated, and re-links the list around it.
func (e *Engine) place(target, prev uintptr) uintptr {
	targetNode := nodeAt(target)
	headerAddr := target + sizeofNode

	h := headerAt(headerAddr)
	h.size = uint32(targetNode.size - uint64(sizeofHeader))
	h.magic = uint32(e.magic)

	payload := headerAddr + sizeofHeader

	// targetNode.next is left untouched: it already points at whatever
	// followed this block in the list (set either by split, or unchanged
	// if no split was needed), and that chain entry is how free() later
	// finds its way back into a consistent list without re-inserting.
	targetNode.size = 0

	if prev == 0 {
		e.head = target
	} else {
		nodeAt(prev).next = target
	}

	return payload
}

// Free resurrects the block at ptr's header back into the free list and
// coalesces it with its buddy where possible. If ptr does not carry the
// expected magic sentinel the call is a silent no-op: the free list is
// left completely unchanged.
func (e *Engine) Free(ptr uintptr) {
	headerAddr := ptr - sizeofHeader
	h := headerAt(headerAddr)
	if uint64(h.magic) != e.magic {
		Logger().Warn("core: free called with bad magic, ignoring", "ptr", ptr)
		return
	}

	size := uint64(h.size)
	freed := headerAddr - sizeofNode

	// next is deliberately not written here: the bytes at this address
	// were never touched while the block was allocated (payload starts
	// strictly after the header), so whatever successor was in place at
	// allocation time is still there, and the list is already consistent
	// without an explicit re-link.
	nodeAt(freed).size = size + uint64(sizeofHeader)

	e.coalesce(freed)
}

// coalesce merges addr's block with its buddy for as long as the buddy is
// free and the same size, climbing upward until a mismatch stops the loop
// or the whole arena is reconstituted as a single block.
func (e *Engine) coalesce(addr uintptr) {
	wholeArena := uint64(e.bytes) - uint64(sizeofNode)

	for {
		n := nodeAt(addr)
		if n.size == wholeArena {
			return
		}

		ext := extent(n.size)
		buddy := buddyAddr(e.region.Base, addr, ext)
		buddyNode := nodeAt(buddy)

		if buddyNode.size != n.size {
			return
		}

		left, right := addr, buddy
		if buddy < addr {
			left, right = buddy, addr
		}
		leftNode, rightNode := nodeAt(left), nodeAt(right)

		leftNode.size = n.size + buddyNode.size + uint64(sizeofNode)
		leftNode.next = rightNode.next
		rightNode.next = 0

		Logger().Debug("core: coalesce", "left", left, "right", right, "size", leftNode.size)

		addr = left
	}
}

// Traverse walks the free list from head, emitting the address and size
// of every block that is currently free. Blocks marked allocated (size ==
// 0, see node.go) remain threaded into the list but are not emitted.
// Traverse never mutates state.
func (e *Engine) Traverse() []Block {
	if !e.acquired {
		return nil
	}

	var out []Block
	for cur := e.head; cur != 0; {
		n := nodeAt(cur)
		if n.size != 0 {
			out = append(out, Block{Addr: cur, Size: int(n.size)})
		}
		cur = n.next
	}
	return out
}
