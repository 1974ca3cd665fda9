package syntax

import (
	"fmt"
)

// ScopeID indexes a scope record in a SymbolTable
type ScopeID int

const (
	// ProgramScopeID is the root scope of every SymbolTable
	ProgramScopeID ScopeID = 0
	noScope        ScopeID = -1
)

// ThisSlot is the slot `this` occupies in every program
const ThisSlot = 0

type scopeRecord struct {
	parent ScopeID
	locals []string
	slots  []int
}

// SymbolTable holds every scope of one template compile as an arena of
// records linked by parent index. Slots come from a single pool owned by the
// program scope, so they form one flat namespace while lookup is lexical.
// Slots are appended, never removed or renumbered.
type SymbolTable struct {
	scopes  []scopeRecord
	symbols []string
	upvars  []string
	named   map[string]int
	blocks  map[string]int
	targets []string
	hasEval bool
}

// NewProgramSymbolTable creates a table holding only the program scope.
// Slot 0 is reserved for `this`.
func NewProgramSymbolTable() *SymbolTable {
	return &SymbolTable{
		scopes: []scopeRecord{{parent: noScope}},
		named:  make(map[string]int),
		blocks: make(map[string]int),
	}
}

// Program returns the root scope
func (t *SymbolTable) Program() Scope {
	return Scope{table: t, id: ProgramScopeID}
}

// Symbols returns the program symbol names; Symbols()[i] occupies slot i+1
func (t *SymbolTable) Symbols() []string {
	out := make([]string, len(t.symbols))
	copy(out, t.symbols)
	return out
}

// Upvars returns the free-variable names in first-use order
func (t *SymbolTable) Upvars() []string {
	out := make([]string, len(t.upvars))
	copy(out, t.upvars)
	return out
}

// HasEval reports whether a debugger or partial statement was seen
func (t *SymbolTable) HasEval() bool {
	return t.hasEval
}

// BlockTargets returns the named blocks allocated so far, in allocation order
func (t *SymbolTable) BlockTargets() []string {
	out := make([]string, len(t.targets))
	copy(out, t.targets)
	return out
}

// HasSlot reports whether slot is a valid program slot
func (t *SymbolTable) HasSlot(slot int) bool {
	return slot >= 0 && slot <= len(t.symbols)
}

func (t *SymbolTable) allocate(identifier string) int {
	t.symbols = append(t.symbols, identifier)
	return len(t.symbols)
}

// Scope is a handle on one scope record of a SymbolTable
type Scope struct {
	table *SymbolTable
	id    ScopeID
}

// Table returns the owning table
func (s Scope) Table() *SymbolTable { return s.table }

// ID returns the scope index
func (s Scope) ID() ScopeID { return s.id }

// IsProgram reports whether this is the root scope
func (s Scope) IsProgram() bool { return s.id == ProgramScopeID }

func (s Scope) record() *scopeRecord {
	return &s.table.scopes[s.id]
}

// Parent returns the enclosing scope. The program scope has no parent.
func (s Scope) Parent() (Scope, bool) {
	parent := s.record().parent
	if parent == noScope {
		return Scope{}, false
	}
	return Scope{table: s.table, id: parent}, true
}

// Child pushes a new scope introducing locals, allocating their slots
func (s Scope) Child(locals []string) Scope {
	s.table.scopes = append(s.table.scopes, scopeRecord{parent: s.id})
	child := Scope{table: s.table, id: ScopeID(len(s.table.scopes) - 1)}
	for _, name := range locals {
		child.AllocateLocal(name)
	}
	return child
}

// Locals returns the names introduced by this scope
func (s Scope) Locals() []string {
	rec := s.record()
	out := make([]string, len(rec.locals))
	copy(out, rec.locals)
	return out
}

// Slots returns the slots of Locals, index for index
func (s Scope) Slots() []int {
	rec := s.record()
	out := make([]int, len(rec.slots))
	copy(out, rec.slots)
	return out
}

// ThisSlot returns the slot of `this`
func (s Scope) ThisSlot() int { return ThisSlot }

// AllocateLocal records name in this scope. A name already introduced by this
// scope keeps its slot; otherwise a fresh slot is taken from the program pool.
func (s Scope) AllocateLocal(name string) int {
	if slot, ok := s.own(name); ok {
		return slot
	}
	slot := s.table.allocate(name)
	rec := s.record()
	rec.locals = append(rec.locals, name)
	rec.slots = append(rec.slots, slot)
	return slot
}

func (s Scope) own(name string) (int, bool) {
	rec := s.record()
	for i, local := range rec.locals {
		if local == name {
			return rec.slots[i], true
		}
	}
	return 0, false
}

// Lookup resolves name through the lexical chain, innermost first
func (s Scope) Lookup(name string) (int, bool) {
	for cur, ok := s, true; ok; cur, ok = cur.Parent() {
		if slot, found := cur.own(name); found {
			return slot, true
		}
	}
	return 0, false
}

// Has reports whether name is a local anywhere in the lexical chain
func (s Scope) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Local returns the slot of a local. Asking for a name that is not in scope
// is a compiler bug.
func (s Scope) Local(name string) int {
	slot, ok := s.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("no such local %q; did you mean a free variable?", name))
	}
	return slot
}

// AllocateNamed returns the slot of a named argument (`@name`)
func (s Scope) AllocateNamed(name string) int {
	t := s.table
	if slot, ok := t.named[name]; ok {
		return slot
	}
	slot := t.allocate(name)
	t.named[name] = slot
	return slot
}

// AllocateBlock returns the slot of a named block. `inverse` is an alias of `else`.
func (s Scope) AllocateBlock(name string) int {
	if name == "inverse" {
		name = "else"
	}
	t := s.table
	if slot, ok := t.blocks[name]; ok {
		return slot
	}
	slot := t.allocate("&" + name)
	t.blocks[name] = slot
	t.targets = append(t.targets, name)
	return slot
}

// AllocateFree returns the upvar index of a free variable. The first use of a
// name fixes its index.
func (s Scope) AllocateFree(name string) int {
	t := s.table
	for i, upvar := range t.upvars {
		if upvar == name {
			return i
		}
	}
	t.upvars = append(t.upvars, name)
	return len(t.upvars) - 1
}

// SetHasEval marks the template as containing debugger or partial statements
func (s Scope) SetHasEval() {
	s.table.hasEval = true
}

// EvalInfo returns the slots of every local visible from this scope,
// outermost first. A shadowed name keeps its outer position with the inner
// slot.
func (s Scope) EvalInfo() []int {
	var chain []Scope
	for cur, ok := s, true; ok; cur, ok = cur.Parent() {
		chain = append(chain, cur)
	}
	var names []string
	slots := make(map[string]int)
	for i := len(chain) - 1; i >= 0; i-- {
		rec := chain[i].record()
		for j, name := range rec.locals {
			if _, seen := slots[name]; !seen {
				names = append(names, name)
			}
			slots[name] = rec.slots[j]
		}
	}
	info := make([]int, len(names))
	for i, name := range names {
		info[i] = slots[name]
	}
	return info
}
