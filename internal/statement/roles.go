package statement

// role is a semantic slot a statement column can fill. Exports from
// different banks order and name their columns differently, so roles are
// re-inferred for every row from cell content plus positional fallbacks.
type role int

const (
	roleDate role = iota
	roleDescription
	roleType
	roleAmount
)

// roleRule binds one role to a cell predicate and an optional positional
// fallback. Rules run in order; earlier rules claim columns that later
// predicates may need to exclude.
type roleRule struct {
	role     role
	required bool

	// match reports whether the cell at column col can fill this role,
	// given the columns already claimed by earlier rules.
	match func(cell string, col int, claimed map[role]int) bool

	// fallback picks a column purely by position when no cell matched.
	// Returns -1 when the row is too short to guess. Nil for roles that
	// have no positional last resort.
	fallback func(row []string) int
}

// roleRules is the ordered inference pipeline. Date goes first so the
// description rule can exclude its column; type is optional and defaults
// to debit downstream.
var roleRules = []roleRule{
	{
		role:     roleDate,
		required: true,
		match: func(cell string, _ int, _ map[role]int) bool {
			return isDateLike(cell)
		},
	},
	{
		role:     roleDescription,
		required: true,
		match: func(cell string, col int, claimed map[role]int) bool {
			if dateCol, ok := claimed[roleDate]; ok && col == dateCol {
				return false
			}

			return isDescriptionLike(cell)
		},
		// Some banks keep narration short enough to fail the length test;
		// in every such layout seen so far it sits next to the trailing
		// amount column.
		fallback: func(row []string) int {
			if len(row) < 2 {
				return -1
			}

			return len(row) - 2
		},
	},
	{
		role: roleType,
		match: func(cell string, _ int, _ map[role]int) bool {
			_, ok := parseTypeMarker(cell)
			return ok
		},
	},
	{
		role:     roleAmount,
		required: true,
		match: func(cell string, _ int, _ map[role]int) bool {
			return isAmountLike(cell)
		},
		fallback: func(row []string) int {
			if len(row) == 0 {
				return -1
			}

			return len(row) - 1
		},
	},
}

// resolveRoles maps each role to a column index for one row. The second
// return value names the first required role that could not be resolved,
// or -1 when all required roles were.
func resolveRoles(row []string) (map[role]int, role) {
	claimed := make(map[role]int, len(roleRules))

	for _, rule := range roleRules {
		col := -1

		for i, cell := range row {
			if rule.match(cell, i, claimed) {
				col = i
				break
			}
		}

		if col == -1 && rule.fallback != nil {
			col = rule.fallback(row)
		}

		if col == -1 {
			if rule.required {
				return nil, rule.role
			}

			continue
		}

		claimed[rule.role] = col
	}

	return claimed, -1
}
