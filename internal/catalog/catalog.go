// Package catalog stores symbolic predicate and stream declarations for a
// task planner. It is metadata only; nothing here is evaluated.
package catalog

import (
	"fmt"
	"sort"

	"aerospace-tamp-sim/internal/common"
)

// Predicate is a named relation over parameter names, e.g. At(obj, pose).
type Predicate struct {
	Name   string
	Params []string
}

// Arity returns the number of parameters.
func (p Predicate) Arity() int {
	return len(p.Params)
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s%v", p.Name, p.Params)
}

// Stream is a named generator from a domain to optional outputs.
// Outputs is nil for streams that only test their inputs.
type Stream struct {
	Name    string
	Domain  []string
	Outputs []string
}

// IsTest reports whether the stream declares no outputs.
func (s Stream) IsTest() bool {
	return s.Outputs == nil
}

func (s Stream) String() string {
	return fmt.Sprintf("%s%v -> %v", s.Name, s.Domain, s.Outputs)
}

// Catalog holds declared predicates and streams by name.
type Catalog struct {
	predicates map[string]Predicate
	streams    map[string]Stream
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		predicates: make(map[string]Predicate),
		streams:    make(map[string]Stream),
	}
}

// DeclarePredicate records a predicate. Redeclaring a name replaces it.
// params must be non-nil; an empty list declares a nullary predicate.
func (c *Catalog) DeclarePredicate(name string, params []string) error {
	const op = "Catalog.DeclarePredicate"
	if name == "" {
		return common.InvalidArgument(op, "predicate name must not be empty")
	}
	if params == nil {
		return common.TypeMismatch(op, "parameters of %q must be provided as a list", name)
	}
	c.predicates[name] = Predicate{Name: name, Params: cloneStrings(params)}
	return nil
}

// DeclareStream records a stream. Redeclaring a name replaces it.
// domain must be non-nil; outputs may be nil.
func (c *Catalog) DeclareStream(name string, domain, outputs []string) error {
	const op = "Catalog.DeclareStream"
	if name == "" {
		return common.InvalidArgument(op, "stream name must not be empty")
	}
	if domain == nil {
		return common.TypeMismatch(op, "domain of %q must be provided as a list", name)
	}
	s := Stream{Name: name, Domain: cloneStrings(domain)}
	if outputs != nil {
		s.Outputs = cloneStrings(outputs)
	}
	c.streams[name] = s
	return nil
}

// Predicate returns the predicate declared under name.
func (c *Catalog) Predicate(name string) (Predicate, error) {
	p, ok := c.predicates[name]
	if !ok {
		return Predicate{}, common.NotFound("Catalog.Predicate", "no predicate named %q", name)
	}
	return clonePredicate(p), nil
}

// Stream returns the stream declared under name.
func (c *Catalog) Stream(name string) (Stream, error) {
	s, ok := c.streams[name]
	if !ok {
		return Stream{}, common.NotFound("Catalog.Stream", "no stream named %q", name)
	}
	return cloneStream(s), nil
}

// Predicates returns all predicates sorted by name.
func (c *Catalog) Predicates() []Predicate {
	out := make([]Predicate, 0, len(c.predicates))
	for _, p := range c.predicates {
		out = append(out, clonePredicate(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Streams returns all streams sorted by name.
func (c *Catalog) Streams() []Stream {
	out := make([]Stream, 0, len(c.streams))
	for _, s := range c.streams {
		out = append(out, cloneStream(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func clonePredicate(p Predicate) Predicate {
	p.Params = cloneStrings(p.Params)
	return p
}

func cloneStream(s Stream) Stream {
	s.Domain = cloneStrings(s.Domain)
	if s.Outputs != nil {
		s.Outputs = cloneStrings(s.Outputs)
	}
	return s
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
