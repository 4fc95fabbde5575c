// SPDX-License-Identifier: MIT

package scalar

import "math"

// Real is the constraint satisfied by every scalar type usable as a
// measurement. Named types whose underlying type is float32 or float64 are
// accepted as well.
type Real interface {
	~float32 | ~float64
}

// Sum adds nums left to right. Sum() is zero.
// Complexity: O(n).
func Sum[R Real](nums ...R) R {
	var total R
	for _, x := range nums {
		total += x
	}

	return total
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[R Real](x R) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Inf returns +Inf if sign >= 0 and -Inf otherwise, converted to R.
func Inf[R Real](sign int) R {
	return R(math.Inf(sign))
}

// ApproxEqual reports whether |a-b| <= eps. Two infinities of the same sign
// compare equal; NaN never does.
func ApproxEqual[R Real](a, b, eps R) bool {
	if a == b {
		return true
	}
	if !IsFinite(a) || !IsFinite(b) {
		return false
	}
	d := a - b
	if d < 0 {
		d = -d
	}

	return d <= eps
}

// Normalize rescales nums in place so that it sums to one.
//
// Implementation:
//   - Stage 1: sum the weights and take the reciprocal.
//   - Stage 2: if the sum is zero or not finite, or the reciprocal is not
//     finite, return ErrNotNormalizable without touching nums.
//   - Stage 3: multiply every element by the reciprocal.
//
// An empty slice has sum zero and therefore fails.
//
// Complexity: O(n) time, O(1) space.
func Normalize[R Real](nums []R) error {
	total := Sum(nums...)
	if total == 0 || !IsFinite(total) {
		return ErrNotNormalizable
	}
	factor := 1 / total
	if !IsFinite(factor) {
		return ErrNotNormalizable
	}
	for i := range nums {
		nums[i] *= factor
	}

	return nil
}

// Normalized is the copying form of Normalize: it leaves its arguments alone
// and returns a fresh normalized slice of the same length.
// Complexity: O(n) time, O(n) space.
func Normalized[R Real](nums ...R) ([]R, error) {
	out := make([]R, len(nums))
	copy(out, nums)
	if err := Normalize(out); err != nil {
		return nil, err
	}

	return out, nil
}
