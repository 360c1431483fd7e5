// Package builder provides label schemes that name nodes created by fixtures
// and models. A label is stored as the node property LabelProperty.
package builder

import (
	"fmt"
	"strconv"
)

// LabelFn renders a node label from its zero-based creation index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
// Panics in implementations indicate programmer error in configuration.
type LabelFn func(idx int) string

// DecimalLabelFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DecimalLabelFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnLabelFn returns the "Excel-style" column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(k) time where k ≈ log₍₂₆₎(idx), O(1) extra space.
// Panics if idx < 0.
func ExcelColumnLabelFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnLabelFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexLabelFn returns the lowercase hexadecimal representation of idx,
// e.g. 0→"0", 10→"a", 255→"ff". Panics if idx < 0.
func HexLabelFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexLabelFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// PrefixLabelFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func PrefixLabelFn(prefix string) LabelFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixLabelFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithDecimalLabels labels nodes "0","1",...
func WithDecimalLabels() Option {
	return WithLabelFn(DecimalLabelFn)
}

// WithExcelLabels labels nodes "A","B",...,"AA",...
func WithExcelLabels() Option {
	return WithLabelFn(ExcelColumnLabelFn)
}

// WithHexLabels labels nodes in lowercase hexadecimal.
func WithHexLabels() Option {
	return WithLabelFn(HexLabelFn)
}

// WithPrefixLabels labels nodes prefix+index.
func WithPrefixLabels(prefix string) Option {
	return WithLabelFn(PrefixLabelFn(prefix))
}
