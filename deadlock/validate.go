package deadlock

import "fmt"

// Validate checks a snapshot against its declared dimensions before any
// detection logic runs. It is a pure function and may be called on its own;
// Detect must only be invoked on input that passed Validate.
//
// Checks run in a fixed order and stop at the first failure:
//  1. allocation has exactly n rows of length m  → ShapeError{"allocation"}
//  2. request has exactly n rows of length m     → ShapeError{"request"}
//  3. available has exactly m elements           → ShapeError{"available"}
//  4. every allocation/request entry is ≥ 0      → ErrNegativeValue
//  5. every available entry is ≥ 0               → ErrNegativeValue
//
// Negative-value errors wrap ErrNegativeValue and name the exact entry, so
// callers can both match the kind and surface the position.
//
// Time:   O(n·m).
// Memory: O(1).
func Validate(n, m int, allocation, request [][]int, available []int) error {
	// 1–2. Row counts and row lengths for both matrices.
	if err := validateShape("allocation", n, m, allocation); err != nil {
		return err
	}
	if err := validateShape("request", n, m, request); err != nil {
		return err
	}

	// 3. Available vector length.
	if len(available) != m {
		return ShapeError{Field: "available"}
	}

	// 4. Non-negativity of both matrices.
	if err := validateNonNegative("allocation", allocation); err != nil {
		return err
	}
	if err := validateNonNegative("request", request); err != nil {
		return err
	}

	// 5. Non-negativity of the available vector.
	for j, v := range available {
		if v < 0 {
			return fmt.Errorf("deadlock: available[%d] = %d: %w", j, v, ErrNegativeValue)
		}
	}

	return nil
}

// validateShape checks that mat has exactly n rows, each of length m.
func validateShape(field string, n, m int, mat [][]int) error {
	if len(mat) != n {
		return ShapeError{Field: field}
	}
	for _, row := range mat {
		if len(row) != m {
			return ShapeError{Field: field}
		}
	}

	return nil
}

// validateNonNegative checks every entry of mat for v ≥ 0, scanning rows in
// ascending order so the first reported violation is deterministic.
func validateNonNegative(field string, mat [][]int) error {
	for i, row := range mat {
		for j, v := range row {
			if v < 0 {
				return fmt.Errorf("deadlock: %s[%d][%d] = %d: %w", field, i, j, v, ErrNegativeValue)
			}
		}
	}

	return nil
}
