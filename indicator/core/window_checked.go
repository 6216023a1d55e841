//go:build !unchecked

package core

import "fmt"

// Checked reports whether precondition checks are compiled in.
const Checked = true

func checkPush(capacity int) {
	if capacity == 0 {
		panic("core: Push on a zero-capacity window")
	}
}

func checkIndex(i, capacity int) {
	if i < 0 || i >= capacity {
		panic(fmt.Sprintf("core: window index %d out of range [0, %d)", i, capacity))
	}
}
