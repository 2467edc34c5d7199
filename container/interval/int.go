package interval

import (
	"fmt"
	"strings"

	"github.com/eaugeas/dstruct/container/tree"
	"github.com/samber/lo"
)

// IntLesser orders intervals within a tree by their
// lower bound only
type IntLesser struct{}

func (IntLesser) Less(a, b Int) int {
	return tree.OrderedLesser[int]{}.Less(a.Min(), b.Min())
}

// Int is the closed integer interval [min, max]. An
// interval is immutable.
type Int struct {
	min int
	max int
}

// NewInt returns the interval [min, max]. It panics
// if min is greater than max
func NewInt(min, max int) Int {
	if min > max {
		panic("min cannot be greater than max")
	}

	return Int{min: min, max: max}
}

// Min returns the lower bound
func (i Int) Min() int {
	return i.min
}

// Max returns the upper bound
func (i Int) Max() int {
	return i.max
}

// Len returns the number of integers in the interval
func (i Int) Len() int {
	return i.max - i.min + 1
}

// Contains returns true if j is a subset of i
func (i Int) Contains(j Int) bool {
	return i.min <= j.min && j.max <= i.max
}

// Disjoints returns true if i and j have no integer
// in common
func (i Int) Disjoints(j Int) bool {
	return i.max < j.min || j.max < i.min
}

// Intersection returns the integers i and j have in
// common. It panics if they are disjoint
func (i Int) Intersection(j Int) Int {
	if i.Disjoints(j) {
		panic("intersection between two disjoint intervals")
	}

	return Int{min: max(i.min, j.min), max: min(i.max, j.max)}
}

// CanMerge returns true if i and j overlap or are
// adjacent, as [a, b] and [b + 1, c] are
func (i Int) CanMerge(j Int) bool {
	return !i.Disjoints(j) || i.min == j.max+1 || i.max+1 == j.min
}

// Merge returns the smallest interval that covers both
// i and j. It panics if they cannot be merged
func (i Int) Merge(j Int) Int {
	if !i.CanMerge(j) {
		panic("cannot merge intervals")
	}

	return Int{min: min(i.min, j.min), max: max(i.max, j.max)}
}

func (i Int) String() string {
	if i.min == i.max {
		return fmt.Sprintf("[%d]", i.min)
	}

	return fmt.Sprintf("[%d, %d]", i.min, i.max)
}

// IntSet keeps a set of integers as disjoint, non adjacent
// intervals. Inserting [4] into {[1, 3], [5, 7]} leaves the
// set as {[1, 7]}. It is useful to track offsets that arrive
// out of order.
type IntSet struct {
	intervals *tree.Tree[Int]
}

// NewIntSet creates an empty interval set
func NewIntSet() *IntSet {
	return &IntSet{intervals: tree.NewWithLesser[Int](IntLesser{})}
}

// Len returns the number of disjoint intervals
func (s *IntSet) Len() int {
	return s.intervals.Len()
}

// Contains returns true if a single interval of the
// set contains i
func (s *IntSet) Contains(i Int) bool {
	lower, ok := s.intervals.Floor(i)
	return ok && lower.Contains(i)
}

// Insert adds i to the set, merging it with every
// interval it overlaps or touches
func (s *IntSet) Insert(i Int) {
	if lower, ok := s.intervals.Floor(i); ok && i.CanMerge(lower) {
		s.mustRemove(lower)
		i = i.Merge(lower)
	}

	for {
		higher, ok := s.intervals.Ceil(i)
		if !ok || !i.CanMerge(higher) {
			break
		}

		s.mustRemove(higher)
		i = i.Merge(higher)
	}

	s.intervals.Insert(i)
}

// Intervals returns the intervals of the set in
// ascending order
func (s *IntSet) Intervals() []Int {
	return s.intervals.InOrder()
}

func (s *IntSet) String() string {
	values := lo.Map(s.Intervals(), func(i Int, _ int) string {
		return i.String()
	})

	return fmt.Sprintf("{%s}", strings.Join(values, ", "))
}

func (s *IntSet) mustRemove(i Int) {
	if !s.intervals.Remove(i) {
		panic(fmt.Sprintf("interval %s not found in set", i))
	}
}
