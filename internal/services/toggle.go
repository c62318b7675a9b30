package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ToggleResult is the outcome of one membership toggle: whether the user
// ends up in the set, and how the cached counter moves.
type ToggleResult struct {
	Member     bool
	CountDelta int
}

// MembershipToggle resolves a delete-then-insert toggle attempt.
//
//	removed  — the delete found and removed an existing row
//	inserted — the insert created a new row (false when it lost the race
//	           to a concurrent insert on the unique index)
//
// Applying two toggles in a row restores the starting membership and nets
// the counter to zero.
func MembershipToggle(removed, inserted bool) ToggleResult {
	if removed {
		return ToggleResult{Member: false, CountDelta: -1}
	}
	if !inserted {
		// Lost the insert race; membership already holds and the winner
		// moved the counter.
		return ToggleResult{Member: true, CountDelta: 0}
	}
	return ToggleResult{Member: true, CountDelta: 1}
}

// CounterExpr builds the store expression applying a toggle's counter move
// to a cached count column. Decrements floor at zero so a drifted counter
// can never go negative.
func CounterExpr(column string, delta int) clause.Expr {
	if delta < 0 {
		return gorm.Expr("GREATEST(" + column + " - 1, 0)")
	}
	return gorm.Expr(column + " + 1")
}
