// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep Apply/IsComplete minimal by delegating nil/shape/index checks here.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape → Index).

package matrix

import (
	"fmt"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed nil *Dense.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateAugmented ensures m is non-nil and size×(size+1) with size in [MinSize, MaxSize].
// Complexity: O(1).
func ValidateAugmented(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	n := m.Rows()
	if n < MinSize || n > MaxSize {
		return validatorErrorf("ValidateAugmented: Rows", ErrBadShape)
	}
	if m.Cols() != n+1 {
		return validatorErrorf("ValidateAugmented: Columns", ErrBadShape)
	}

	return nil
}

// ValidateRowIndex ensures 0 ≤ row < size.
func ValidateRowIndex(row, size int) error {
	if row < 0 || row >= size {
		return fmt.Errorf("ValidateRowIndex(%d) size=%d: %w", row, size, ErrInvalidRowIndex)
	}

	return nil
}

// validateRowPair checks both indices and that they differ.
func validateRowPair(a, b, size int) error {
	if err := ValidateRowIndex(a, size); err != nil {
		return err
	}
	if err := ValidateRowIndex(b, size); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("rows %d and %d: %w", a, b, ErrSameRow)
	}

	return nil
}
