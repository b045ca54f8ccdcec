// Package mystring is a string that owns its byte buffer and makes every
// copy and every ownership transfer an explicit call.
//
//	a := mystring.FromText("Hello")
//	b := a.Clone()    // copy: b gets its own buffer
//	c := a.Take()     // move: c owns a's buffer, a is now empty
//	b.MoveAssign(c)   // b releases its buffer and takes c's
//	b.Release()       // exactly one release per buffer
//
// Release is the destructor. A String dropped without it still gets its
// buffer back to the heap once the garbage collector finds it unreachable,
// but only Release makes that happen at a known point.
package mystring

import (
	"fmt"
	"io"
)

// String owns a byte buffer drawn from a Heap. The zero value is an empty
// string on the default heap.
type String struct {
	buf  *buffer
	heap *Heap
}

// Option configures a String at construction.
type Option func(*String)

// WithHeap draws the buffer from h instead of the default heap.
func WithHeap(h *Heap) Option {
	return func(s *String) {
		s.heap = h
	}
}

// New returns an empty string that owns nothing.
func New(opts ...Option) *String {
	s := &String{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromText duplicates text into a freshly allocated buffer.
func FromText(text string, opts ...Option) *String {
	s := New(opts...)
	s.buf = s.h().alloc(len(text))
	copy(s.buf.data, text)
	return s
}

// Clone returns an independent copy with its own buffer on the same heap.
func (s *String) Clone() *String {
	c := &String{heap: s.heap}
	c.buf = c.dup(s.buf)
	return c
}

// Take moves the buffer into a new String and leaves s empty.
func (s *String) Take() *String {
	m := &String{buf: s.buf, heap: s.heap}
	s.buf = nil
	return m
}

// CopyAssign releases the current buffer and duplicates src's.
// Assigning a string to itself does nothing.
func (s *String) CopyAssign(src *String) *String {
	if s == src {
		return s
	}
	s.Release()
	s.buf = s.dup(src.buf)
	return s
}

// MoveAssign releases the current buffer, takes src's and leaves src empty.
// Assigning a string to itself does nothing.
func (s *String) MoveAssign(src *String) *String {
	if s == src {
		return s
	}
	s.Release()
	s.buf, s.heap = src.buf, src.heap
	src.buf = nil
	return s
}

// Release gives the buffer back to its heap. Calling it again, or on a
// moved-from string, releases nothing.
func (s *String) Release() {
	if s.buf == nil {
		return
	}
	s.buf.rel.free()
	s.buf = nil
}

// Len is the number of bytes in the string.
func (s *String) Len() int { return len(s.bytes()) }

// Empty reports whether the string holds no bytes.
func (s *String) Empty() bool { return s.Len() == 0 }

// Text returns a copy of the contents as a Go string.
func (s *String) Text() string { return string(s.bytes()) }

// Bytes exposes the owned buffer. Writes through it change s.
func (s *String) Bytes() []byte { return s.bytes() }

// Owns reports whether s currently holds a buffer.
func (s *String) Owns() bool { return s.buf != nil }

// Display writes "text : len".
func (s *String) Display(w io.Writer) {
	fmt.Fprintf(w, "%s : %d\n", s.bytes(), s.Len())
}

func (s *String) String() string { return s.Text() }

func (s *String) h() *Heap {
	if s.heap == nil {
		return defaultHeap
	}
	return s.heap
}

func (s *String) bytes() []byte {
	if s.buf == nil {
		return nil
	}
	return s.buf.data
}

func (s *String) dup(src *buffer) *buffer {
	if src == nil {
		return nil
	}
	buf := s.h().alloc(len(src.data))
	copy(buf.data, src.data)
	return buf
}
