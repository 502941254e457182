// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/flist"
)

func TestEqualEmpties(t *testing.T) {
	if !flist.Equal(flist.Empty[int](), flist.New[int]()) {
		t.Fatal("two empty lists should be equal")
	}
}

func TestEqualEmptyVsNonEmpty(t *testing.T) {
	if flist.Equal(flist.Empty[int](), flist.New(1)) {
		t.Fatal("empty and non-empty should not be equal")
	}
	if flist.Equal(flist.New(1), flist.Empty[int]()) {
		t.Fatal("non-empty and empty should not be equal")
	}
}

func TestEqualValueBased(t *testing.T) {
	// Independently constructed lists with the same elements are equal;
	// identity of nodes plays no part.
	a := flist.New(1, 2, 3)
	b := flist.Empty[int]().Cons(3).Cons(2).Cons(1)
	if !flist.Equal(a, b) {
		t.Fatalf("%v should equal %v", a, b)
	}
}

func TestEqualOrderSensitive(t *testing.T) {
	if flist.Equal(flist.New(1, 2, 3), flist.New(3, 2, 1)) {
		t.Fatal("element order should matter")
	}
}

func TestEqualLengthMismatch(t *testing.T) {
	if flist.Equal(flist.New(1, 2), flist.New(1, 2, 3)) {
		t.Fatal("lists of different length should not be equal")
	}
}

func TestEqualSharedSuffix(t *testing.T) {
	base := flist.New(2, 3, 4)
	a := base.Cons(1)
	b := base.Cons(1)
	if !flist.Equal(a, b) {
		t.Fatalf("%v should equal %v", a, b)
	}
}

func TestEqualFuncAcrossTypes(t *testing.T) {
	nums := flist.New(1, 2, 3)
	strs := flist.New("1", "2", "3")
	eq := func(n int, s string) bool { return strconv.Itoa(n) == s }
	if !flist.EqualFunc(nums, strs, eq) {
		t.Fatalf("%v should match %v under Itoa", nums, strs)
	}
	if flist.EqualFunc(nums, flist.New("1", "2", "4"), eq) {
		t.Fatal("mismatched element should fail")
	}
}

func TestEqualFuncNonComparableElements(t *testing.T) {
	a := flist.New([]int{1}, []int{2})
	b := flist.New([]int{1}, []int{2})
	eq := func(x, y []int) bool {
		return len(x) == len(y) && (len(x) == 0 || x[0] == y[0])
	}
	if !flist.EqualFunc(a, b, eq) {
		t.Fatal("slice-element lists should compare equal under eq")
	}
}
