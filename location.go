package groves

import "fmt"

// Location is a (source, start, length) triple locating a node within an
// input stream. Locations are plain values; ownership of the underlying
// source buffer lies with whatever produced it (a parser or front-end).
type Location struct {
	Source string
	Start  int
	Length int
}

// NoLocation is the zero Location, used for synthesized nodes that do not
// correspond to any input range.
var NoLocation = Location{}

// End returns the position just behind the location's range.
func (l Location) End() int {
	return l.Start + l.Length
}

// IsNone reports whether l is the zero value.
func (l Location) IsNone() bool {
	return l == NoLocation
}

// Union returns the smallest location containing both l and other, mirroring
// the reference engine's `*=` operator. A NoLocation operand is absorbed.
func (l Location) Union(other Location) Location {
	if l.IsNone() {
		return other
	}
	if other.IsNone() {
		return l
	}
	if l.Source != other.Source {
		// Locations from different sources cannot be meaningfully unioned;
		// keep the receiver, as the reference engine assumes a single source
		// per tree and this case should not arise in practice.
		return l
	}
	start := l.Start
	if other.Start < start {
		start = other.Start
	}
	end := l.End()
	if other.End() > end {
		end = other.End()
	}
	return Location{Source: l.Source, Start: start, Length: end - start}
}

// Extend grows l so that it also covers other; it is the same operation as
// Union. If l is none, it simply becomes other; if the two locations come
// from different sources, l is returned unchanged.
func (l Location) Extend(other Location) Location {
	return l.Union(other)
}

// Contains reports whether l's range fully contains other's range (same source).
func (l Location) Contains(other Location) bool {
	if l.Source != other.Source {
		return false
	}
	return other.Start >= l.Start && other.End() <= l.End()
}

func (l Location) String() string {
	if l.IsNone() {
		return "<no-location>"
	}
	return fmt.Sprintf("%s@%d+%d", l.Source, l.Start, l.Length)
}
