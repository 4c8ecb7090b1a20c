// Package genres holds the fixed genre enumeration and the expansion of a
// free-text genre field into one membership flag per genre.
package genres

import "strings"

// Genre is one of the fixed genre names.
type Genre string

// Count is the size of the fixed enumeration.
const Count = 18

// All is the fixed, ordered genre enumeration. Order matters: it is the column
// order of every per-genre table and chart.
var All = [Count]Genre{
	"Action",
	"Adventure",
	"Animation",
	"Children's",
	"Comedy",
	"Crime",
	"Documentary",
	"Drama",
	"Fantasy",
	"Film-Noir",
	"Horror",
	"Musical",
	"Mystery",
	"Romance",
	"Sci-Fi",
	"Thriller",
	"War",
	"Western",
}

// Membership flags, indexed by position in All.
type Membership [Count]bool

// Expand derives membership from a raw genre field.
// A genre is set when its name occurs anywhere in text (case-sensitive substring),
// not when it equals one of the separated tokens. Names outside All are ignored.
func Expand(text string) Membership {
	var m Membership
	for i, g := range All {
		m[i] = strings.Contains(text, string(g))
	}
	return m
}

// Has reports whether genre i is set.
func (m Membership) Has(i int) bool {
	return m[i]
}

// Flag returns 1 when genre i is set and 0 otherwise.
func (m Membership) Flag(i int) int {
	if m[i] {
		return 1
	}
	return 0
}

// Names lists the set genres in enumeration order.
func (m Membership) Names() []Genre {
	names := make([]Genre, 0, Count)
	for i, set := range m {
		if set {
			names = append(names, All[i])
		}
	}
	return names
}

// Index returns the position of name in All.
func Index(name Genre) (int, bool) {
	for i, g := range All {
		if g == name {
			return i, true
		}
	}
	return -1, false
}
