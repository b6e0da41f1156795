//go:generate go run github.com/dmarkham/enumer -type=Relation -trimprefix=Relation -transform=kebab -json -text
package interval

import (
	"github.com/vipcxj/intervals/internal/domain"
)

// Relation is one of the 13 relations of Allen's interval algebra. For any
// two intervals exactly one of them holds.
type Relation int

const (
	RelationEquals       Relation = iota // xs = ys, xe = ye
	RelationBefore                       // xe < ys with a gap
	RelationAfter                        // xs > ye with a gap
	RelationMeets                        // successor(xe) = ys
	RelationMetBy                        // predecessor(xs) = ye
	RelationOverlaps                     // xs < ys <= xe < ye
	RelationOverlappedBy                 // ys < xs <= ye < xe
	RelationDuring                       // xs > ys, xe < ye
	RelationIncludes                     // xs < ys, xe > ye
	RelationStarts                       // xs = ys, xe > ye
	RelationStartedBy                    // xs = ys, xe < ye
	RelationFinishes                     // xs < ys, xe = ye
	RelationFinishedBy                   // xs > ys, xe = ye
)

// priority is the order in which Relate tests the relations.
var priority = [...]Relation{
	RelationEquals,
	RelationMeets,
	RelationMetBy,
	RelationBefore,
	RelationAfter,
	RelationStarts,
	RelationStartedBy,
	RelationFinishes,
	RelationFinishedBy,
	RelationDuring,
	RelationIncludes,
	RelationOverlaps,
	RelationOverlappedBy,
}

// Inverse returns the relation of y to x when r is the relation of x to y.
func (r Relation) Inverse() Relation {
	switch r {
	case RelationBefore:
		return RelationAfter
	case RelationAfter:
		return RelationBefore
	case RelationMeets:
		return RelationMetBy
	case RelationMetBy:
		return RelationMeets
	case RelationOverlaps:
		return RelationOverlappedBy
	case RelationOverlappedBy:
		return RelationOverlaps
	case RelationDuring:
		return RelationIncludes
	case RelationIncludes:
		return RelationDuring
	case RelationStarts:
		return RelationStartedBy
	case RelationStartedBy:
		return RelationStarts
	case RelationFinishes:
		return RelationFinishedBy
	case RelationFinishedBy:
		return RelationFinishes
	}
	return r
}

type endpoints struct {
	xs, xe, ys, ye domain.Value
}

func endpointsOf(x, y Span) endpoints {
	return endpoints{xs: x.NormStart(), xe: x.NormEnd(), ys: y.NormStart(), ye: y.NormEnd()}
}

// Holds reports whether relation r holds between x and y.
func Holds(r Relation, x, y Span) bool {
	return endpointsOf(x, y).holds(r)
}

func (p endpoints) holds(r Relation) bool {
	c := domain.Compare
	switch r {
	case RelationEquals:
		return c(p.xs, p.ys) == 0 && c(p.xe, p.ye) == 0
	case RelationBefore:
		return c(p.xe, p.ys) < 0 && !p.holds(RelationMeets)
	case RelationAfter:
		return c(p.xs, p.ye) > 0 && !p.holds(RelationMetBy)
	case RelationMeets:
		return c(p.xe, p.ys) < 0 && c(p.xe.Successor(), p.ys) == 0
	case RelationMetBy:
		return c(p.xs, p.ye) > 0 && c(p.ye, p.xs.Predecessor()) == 0
	case RelationOverlaps:
		return c(p.xs, p.ys) < 0 && c(p.xe, p.ye) < 0 && c(p.xe, p.ys) >= 0
	case RelationOverlappedBy:
		return c(p.ys, p.xs) < 0 && c(p.ye, p.xe) < 0 && c(p.ye, p.xs) >= 0
	case RelationDuring:
		return c(p.xs, p.ys) > 0 && c(p.xe, p.ye) < 0
	case RelationIncludes:
		return c(p.xs, p.ys) < 0 && c(p.xe, p.ye) > 0
	case RelationStarts:
		return c(p.xs, p.ys) == 0 && c(p.xe, p.ye) > 0
	case RelationStartedBy:
		return c(p.xs, p.ys) == 0 && c(p.xe, p.ye) < 0
	case RelationFinishes:
		return c(p.xs, p.ys) < 0 && c(p.xe, p.ye) == 0
	case RelationFinishedBy:
		return c(p.xs, p.ys) > 0 && c(p.xe, p.ye) == 0
	}
	return false
}

// Relate returns the Allen relation of x to y.
func Relate(x, y Span) Relation {
	p := endpointsOf(x, y)
	for _, r := range priority {
		if p.holds(r) {
			return r
		}
	}
	// The relations partition every pair of ordered endpoints.
	panic("interval: no relation between " + x.String() + " and " + y.String())
}

// Overlap reports whether the closed forms of x and y share a point.
func Overlap(x, y Span) bool {
	return domain.Compare(x.NormStart(), y.NormEnd()) <= 0 &&
		domain.Compare(x.NormEnd(), y.NormStart()) >= 0
}

// Contains reports whether p lies within the closed form of s.
func Contains(s Span, p domain.Value) bool {
	return domain.Compare(s.NormStart(), p) <= 0 && domain.Compare(s.NormEnd(), p) >= 0
}

// Equal reports whether x and y have the same unique identifier.
func Equal(x, y Span) bool {
	return x.UniqueIdentifier() == y.UniqueIdentifier()
}
