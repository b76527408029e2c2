// SPDX-License-Identifier: MIT

// Package builder provides the vertex naming schemes used by topology methods.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to a key. It must be pure and
// injective over the indices a topology uses, or distinct indices collapse
// into one vertex.
type IDFn[K comparable] func(idx int) K

// IntIDs uses the index itself as the key.
func IntIDs(idx int) int {
	return idx
}

// DecimalIDs returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalIDs(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDs returns a scheme producing prefix+decimal, e.g. PrefixIDs("v")(3) → "v3".
func PrefixIDs(prefix string) IDFn[string] {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnIDs returns the spreadsheet column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(log₂₆ idx).
// Panics if idx < 0.
func ExcelColumnIDs(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDs: idx must be ≥ 0, got %d", idx))
	}
	// letters come out least significant first
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
		runes[l], runes[r] = runes[r], runes[l]
	}

	return string(runes)
}
