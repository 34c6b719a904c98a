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
package iter

import (
	"slices"
	"testing"
)

func Test_ArrayIterator_01(t *testing.T) {
	items := []uint{1, 2, 3}
	checkIterator(t, NewArrayIterator(items), items)
}

func Test_ArrayIterator_02(t *testing.T) {
	checkIterator(t, NewArrayIterator([]uint{}), []uint{})
}

func Test_ArrayIterator_03(t *testing.T) {
	it := NewArrayIterator([]uint{4, 5, 6})
	//
	if n, ok := it.Find(func(item uint) bool { return item == 5 }); !ok || n != 1 {
		t.Errorf("expected index 1, got (%d, %v)", n, ok)
	}
}

func Test_ArrayIterator_04(t *testing.T) {
	it := NewArrayIterator([]uint{4, 5, 6})
	//
	if nth := it.Nth(2); nth != 6 {
		t.Errorf("expected 6, got %d", nth)
	}
}

func Test_AppendIterator_01(t *testing.T) {
	it := NewArrayIterator([]uint{1, 2}).Append(NewArrayIterator([]uint{3, 4}))
	checkIterator(t, it, []uint{1, 2, 3, 4})
}

func Test_AppendIterator_02(t *testing.T) {
	it := NewArrayIterator([]uint{}).Append(NewArrayIterator([]uint{3, 4}))
	checkIterator(t, it, []uint{3, 4})
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkIterator[T comparable](t *testing.T, it Iterator[T], expected []T) {
	if count := it.Count(); count != uint(len(expected)) {
		t.Errorf("expected %d items, got %d", len(expected), count)
	}
	// Clone before draining, then check the clone is unaffected.
	clone := it.Clone()
	//
	if items := it.Collect(); !slices.Equal(items, expected) {
		t.Errorf("expected %v, got %v", expected, items)
	}
	//
	if items := clone.Collect(); !slices.Equal(items, expected) {
		t.Errorf("expected %v from clone, got %v", expected, items)
	}
}
