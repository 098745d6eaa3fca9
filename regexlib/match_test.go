package regexlib

// Test-only ε-closure simulation. The shipped library builds and exports
// automata but never runs them; the acceptance tests below need to.

func closure(a *Automaton, set map[StateID]struct{}) {
	stack := make([]StateID, 0, len(set))
	for s := range set {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range a.EpsilonTargets(s) {
			if _, ok := set[t]; !ok {
				set[t] = struct{}{}
				stack = append(stack, t)
			}
		}
	}
}

func accepts(a *Automaton, input string) bool {
	curr := map[StateID]struct{}{a.Start: {}}
	closure(a, curr)
	for _, r := range input {
		next := map[StateID]struct{}{}
		for s := range curr {
			for _, t := range a.Targets(s, r) {
				next[t] = struct{}{}
			}
		}
		if len(next) == 0 {
			return false
		}
		closure(a, next)
		curr = next
	}
	_, ok := curr[a.Final]
	return ok
}
