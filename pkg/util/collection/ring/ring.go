// Copyright Genomesim Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ring

import (
	"fmt"
	"strings"

	"github.com/genomesim/go-transposon/pkg/util/collection/iter"
)

// Link is a single element of a circular list.  Every link belongs to exactly
// one list, and remains valid for as long as that list exists (links are never
// unspliced).
type Link[T any] struct {
	value T
	// Raw neighbours, including the sentinel.
	prev, next *Link[T]
	// Owning list, required to skip the sentinel during traversal.
	list *List[T]
}

// Value returns the value held by this link.
func (l *Link[T]) Value() T {
	return l.value
}

// SetValue overwrites the value held by this link.
func (l *Link[T]) SetValue(value T) {
	l.value = value
}

// Next returns the following link, treating the list as circular.  That is,
// the link after the last is the first.  Calling this on the anchor of an
// empty list returns the anchor itself.
func (l *Link[T]) Next() *Link[T] {
	n := l.next
	if n == &l.list.root {
		n = n.next
	}
	//
	return n
}

// Prev returns the preceding link, treating the list as circular.  That is,
// the link before the first is the last.
func (l *Link[T]) Prev() *Link[T] {
	p := l.prev
	if p == &l.list.root {
		p = p.prev
	}
	//
	return p
}

// List is a circular doubly-linked list built around a sentinel link owned by
// the list itself.  The sentinel never holds a value and is invisible to
// iteration; it exists so that every real link (including the first) has a
// well-defined predecessor to splice after.
type List[T any] struct {
	root Link[T]
	// Cached element count, maintained on insertion.
	size uint
}

// New constructs an empty circular list.
func New[T any]() *List[T] {
	var l List[T]
	//
	l.root.prev = &l.root
	l.root.next = &l.root
	l.root.list = &l
	//
	return &l
}

// FromSlice constructs a circular list holding the given values in order.
func FromSlice[T any](values []T) *List[T] {
	l := New[T]()
	ref := &l.root
	//
	for _, v := range values {
		ref = l.InsertAfter(ref, v)
	}
	//
	return l
}

// Len returns the number of (real) elements in this list.
func (l *List[T]) Len() uint {
	return l.size
}

// Anchor returns the sentinel link.  It holds no value, but can be passed to
// InsertAfter in order to splice new elements in front of the first element.
func (l *List[T]) Anchor() *Link[T] {
	return &l.root
}

// Position returns the kth link (1-based) counting from the first element, or
// nil when k is zero or exceeds the list length.  This requires walking the
// list, hence costs O(k).
func (l *List[T]) Position(k uint) *Link[T] {
	if k == 0 || k > l.size {
		return nil
	}
	//
	link := l.root.next
	for ; k > 1; k-- {
		link = link.next
	}
	//
	return link
}

// InsertAfter splices a new link holding the given value immediately after
// ref, which must belong to this list.  Links other than ref and its old
// successor are unaffected.  This costs O(1).
func (l *List[T]) InsertAfter(ref *Link[T], value T) *Link[T] {
	link := &Link[T]{value: value, prev: ref, next: ref.next, list: l}
	ref.next.prev = link
	ref.next = link
	l.size++
	//
	return link
}

// Iter returns a fresh iterator over the values of this list in logical
// order, starting from the first element.  Each call yields an independent
// iterator, so iteration is restartable.
func (l *List[T]) Iter() iter.Iterator[T] {
	return &ringIterator[T]{l.root.next, &l.root}
}

func (l *List[T]) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, link := uint(0), l.root.next; i < l.size; i, link = i+1, link.next {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprintf("%v", link.value))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

// ===============================================================
// Iterator
// ===============================================================

type ringIterator[T any] struct {
	// Next link to visit.
	link *Link[T]
	// Sentinel of the originating list, marking end of iteration.
	root *Link[T]
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *ringIterator[T]) HasNext() bool {
	return p.link != p.root
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *ringIterator[T]) Next() T {
	next := p.link.value
	p.link = p.link.next

	return next
}

// Append another iterator onto the end of this iterator.  Thus, when all
// items are visited in this iterator, iteration continues into the other.
//
//nolint:revive
func (p *ringIterator[T]) Append(other iter.Iterator[T]) iter.Iterator[T] {
	return iter.NewAppendIterator[T](p, other)
}

// Clone creates a copy of this iterator at the given cursor position.
// Modifying the clone (i.e. by calling Next) iterator will not modify the
// original.
//
//nolint:revive
func (p *ringIterator[T]) Clone() iter.Iterator[T] {
	return &ringIterator[T]{p.link, p.root}
}

// Collect allocates a new array containing all items of this iterator.
// This drains the iterator.
//
//nolint:revive
func (p *ringIterator[T]) Collect() []T {
	return iter.Collect[T](p)
}

// Count returns the number of items left in the iterator
//
//nolint:revive
func (p *ringIterator[T]) Count() uint {
	return iter.Count[T](p.Clone())
}

// Find returns the index of the first match for a given predicate, or
// return false if no match is found.
//
//nolint:revive
func (p *ringIterator[T]) Find(predicate iter.Predicate[T]) (uint, bool) {
	return iter.Find[T](p, predicate)
}

// Nth returns the nth item in this iterator
//
//nolint:revive
func (p *ringIterator[T]) Nth(n uint) T {
	return iter.Nth[T](p, n)
}
