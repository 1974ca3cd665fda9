package util_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"hbsc-go/packages/compiler/src/util"
)

func TestOptionalList(t *testing.T) {
	t.Run("should be empty for a nil or empty slice", func(t *testing.T) {
		for _, items := range [][]int{nil, {}} {
			list := util.NewOptionalList(items)
			if list.IsPresent() || !list.IsEmpty() || list.Items() != nil {
				t.Errorf("NewOptionalList(%#v) = %#v, want Empty", items, list)
			}
		}
	})

	t.Run("should copy its input", func(t *testing.T) {
		items := []int{1, 2}
		list := util.NewOptionalList(items)
		items[0] = 9
		if diff := cmp.Diff([]int{1, 2}, list.Items()); diff != "" {
			t.Errorf("Items() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should become empty when filtered to nothing", func(t *testing.T) {
		list := util.NewOptionalList([]int{1, 3}).Filter(func(v int) bool { return v%2 == 0 })
		if !list.IsEmpty() {
			t.Errorf("Filter() = %v, want Empty", list.Items())
		}
	})

	t.Run("should map items", func(t *testing.T) {
		got := util.MapList(util.NewOptionalList([]int{1, 2}), func(v int) int { return v * 10 }).Items()
		if diff := cmp.Diff([]int{10, 20}, got); diff != "" {
			t.Errorf("MapList() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should index items", func(t *testing.T) {
		list := util.NewOptionalList([]string{"a"})
		if v, ok := list.Nth(0); !ok || v != "a" {
			t.Errorf("Nth(0) = %q, %v", v, ok)
		}
		if _, ok := list.Nth(1); ok {
			t.Errorf("Nth(1) ok = true, want false")
		}
	})
}
