package solver

// Interrupt bounds a search with a user-defined condition tree evaluated once
// per iteration. Disabled by default; there is no other timeout primitive.
type Interrupt struct {
	Enabled      bool `yaml:"enabled"`
	ConditionSet Rule `yaml:"condition_set"`
}

// Rule is one node of the condition tree. A node with Logic set is a group
// whose Conditions combine under AND/OR; otherwise it is a
// (variable, operator, value) leaf.
type Rule struct {
	Logic      string  `yaml:"logic,omitempty"`
	Conditions []Rule  `yaml:"conditions,omitempty"`
	Variable   string  `yaml:"variable,omitempty"`
	Operator   string  `yaml:"operator,omitempty"`
	Value      float64 `yaml:"value,omitempty"`
}

// metrics are the named solver values a Rule leaf may reference.
type metrics struct {
	iteration   int
	openSetSize int
	bestGCost   int
	elapsedSecs float64
}

func (m metrics) lookup(variable string) (float64, bool) {
	switch variable {
	case "iteration":
		return float64(m.iteration), true
	case "open_set_size":
		return float64(m.openSetSize), true
	case "best_g_cost":
		return float64(m.bestGCost), true
	case "elapsed_time":
		return m.elapsedSecs, true
	}
	return 0, false
}

// eval evaluates the tree. Malformed nodes evaluate to false rather than
// aborting the search loop: a leaf with an unknown variable or operator, a
// group with unknown logic, and a group with no conditions (a vacuously true
// AND would halt the search at iteration 1).
func (r Rule) eval(m metrics) bool {
	if r.Logic != "" || len(r.Conditions) > 0 {
		if len(r.Conditions) == 0 {
			return false
		}
		and := true
		switch r.Logic {
		case "AND", "and", "And":
		case "OR", "or", "Or":
			and = false
		default:
			return false
		}
		for _, c := range r.Conditions {
			got := c.eval(m)
			if and && !got {
				return false
			}
			if !and && got {
				return true
			}
		}
		return and
	}
	v, ok := m.lookup(r.Variable)
	if !ok {
		return false
	}
	switch r.Operator {
	case ">":
		return v > r.Value
	case "<":
		return v < r.Value
	case "==":
		return v == r.Value
	case "!=":
		return v != r.Value
	case ">=":
		return v >= r.Value
	case "<=":
		return v <= r.Value
	}
	return false
}

// fires reports whether the interrupt policy triggers for the given metrics.
func (it Interrupt) fires(m metrics) bool {
	return it.Enabled && it.ConditionSet.eval(m)
}
