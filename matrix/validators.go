// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for the shape/symmetry checks used by the graph
//     model and the algorithm packages.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry is exact equality (+Inf == +Inf), scanned over the upper triangle.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// IsSymmetric reports whether m[i][j] == m[j][i] for every i, j.
//
// Comparison is exact: two +Inf entries are equal, a finite weight and +Inf
// are not. NaN is never equal to anything, so a matrix holding NaN off the
// diagonal is asymmetric.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(n²) time, O(1) space; stops at the first mismatch.
func IsSymmetric(m *Dense) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, validatorErrorf("IsSymmetric", err)
	}
	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports whether a and b have the same shape and identical entries.
// +Inf == +Inf; NaN never compares equal. Nil matrices are equal only to nil.
// Complexity: O(r*c).
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// AllClose reports whether a and b agree entrywise within |a-b| <= atol.
// Infinite entries must match exactly (same sign).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func AllClose(a, b *Dense, atol float64) (bool, error) {
	if a == nil || b == nil {
		return false, validatorErrorf("AllClose", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return false, validatorErrorf("AllClose", ErrDimensionMismatch)
	}
	var x, y float64
	for i := range a.data {
		x, y = a.data[i], b.data[i]
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			if x != y {
				return false, nil
			}
			continue
		}
		if math.Abs(x-y) > atol {
			return false, nil
		}
	}

	return true, nil
}
