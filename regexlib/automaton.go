package regexlib

import "sort"

// StateID is an index into the automaton's state arena. Identity is the
// index: two states with identical transition sets are still distinct,
// and the builder never deduplicates states.
type StateID int

type state struct {
	symbols []rune // symbols in first-use order, keeps traversal deterministic
	trans   map[rune][]StateID
	eps     []StateID
}

// Automaton is a Thompson NFA: a state arena plus designated start and
// final states. Every state in the arena is reachable from Start. Once
// handed to an exporter the automaton is traversed read-only.
type Automaton struct {
	states []*state
	Start  StateID
	Final  StateID
}

func (a *Automaton) newState() StateID {
	a.states = append(a.states, &state{trans: map[rune][]StateID{}})
	return StateID(len(a.states) - 1)
}

func (a *Automaton) addTransition(from StateID, symbol rune, to StateID) {
	s := a.states[from]
	if _, ok := s.trans[symbol]; !ok {
		s.symbols = append(s.symbols, symbol)
	}
	s.trans[symbol] = append(s.trans[symbol], to)
}

func (a *Automaton) addEpsilon(from, to StateID) {
	a.states[from].eps = append(a.states[from].eps, to)
}

// NumStates reports the size of the state arena.
func (a *Automaton) NumStates() int { return len(a.states) }

// IsFinal reports whether id is the accepting state.
func (a *Automaton) IsFinal(id StateID) bool { return id == a.Final }

// Targets returns the states reachable from id by consuming symbol, in
// insertion order.
func (a *Automaton) Targets(id StateID, symbol rune) []StateID {
	return a.states[id].trans[symbol]
}

// EpsilonTargets returns the states reachable from id without consuming
// input, in insertion order.
func (a *Automaton) EpsilonTargets(id StateID) []StateID {
	return a.states[id].eps
}

// SymbolsAt returns the symbols with at least one outgoing edge from id,
// in insertion order.
func (a *Automaton) SymbolsAt(id StateID) []rune {
	return a.states[id].symbols
}

// Symbols returns every distinct transition symbol of the automaton,
// sorted ascending. ε transitions are not symbols and are not included.
func (a *Automaton) Symbols() []rune {
	seen := map[rune]struct{}{}
	var out []rune
	for _, s := range a.states {
		for _, r := range s.symbols {
			if _, ok := seen[r]; !ok {
				seen[r] = struct{}{}
				out = append(out, r)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// StateOrder enumerates the states reachable from Start. The order is a
// depth-first walk over a LIFO stack, with symbol edges pushed before ε
// edges, so the same automaton always enumerates identically. Start is
// always first.
func (a *Automaton) StateOrder() []StateID {
	order := make([]StateID, 0, len(a.states))
	seen := make([]bool, len(a.states))
	stack := []StateID{a.Start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true
		order = append(order, id)
		st := a.states[id]
		for _, r := range st.symbols {
			for _, t := range st.trans[r] {
				if !seen[t] {
					stack = append(stack, t)
				}
			}
		}
		for _, t := range st.eps {
			if !seen[t] {
				stack = append(stack, t)
			}
		}
	}
	return order
}
