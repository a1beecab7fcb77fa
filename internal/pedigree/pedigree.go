package pedigree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPedigree is wrapped by all pedigree construction failures.
var ErrInvalidPedigree = errors.New("invalid pedigree")

// DefaultFamily is the family id used for synthesized single-sample
// pedigrees.
const DefaultFamily = "FAMILY"

// Pedigree is an immutable set of members from one family.
type Pedigree struct {
	Family  string
	Members []Person

	index map[string]int
}

// New validates the member list and returns the pedigree: names must be
// unique, every member must belong to the family, and parent references
// must resolve to members.
func New(family string, members []Person) (*Pedigree, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: no members", ErrInvalidPedigree)
	}
	index := make(map[string]int, len(members))
	for i, m := range members {
		if m.Name == "" {
			return nil, fmt.Errorf("%w: member %d has no name", ErrInvalidPedigree, i)
		}
		if m.Family != family {
			return nil, fmt.Errorf("%w: member %s belongs to family %s, want %s", ErrInvalidPedigree, m.Name, m.Family, family)
		}
		if _, dup := index[m.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate member %s", ErrInvalidPedigree, m.Name)
		}
		index[m.Name] = i
	}
	for _, m := range members {
		for _, parent := range []string{m.FatherID, m.MotherID} {
			if parent == "" {
				continue
			}
			if _, ok := index[parent]; !ok {
				return nil, fmt.Errorf("%w: parent %s of %s not in pedigree", ErrInvalidPedigree, parent, m.Name)
			}
		}
	}
	return &Pedigree{Family: family, Members: members, index: index}, nil
}

// SingleSample synthesizes a pedigree holding one affected founder of
// unknown sex, for analyses of a lone sample without family data.
func SingleSample(name string) *Pedigree {
	p, err := New(DefaultFamily, []Person{{
		Family:  DefaultFamily,
		Name:    name,
		Disease: DiseaseAffected,
	}})
	if err != nil {
		// Unreachable: the synthesized member is always valid.
		panic(err)
	}
	return p
}

// Size returns the number of members.
func (p *Pedigree) Size() int {
	return len(p.Members)
}

// Person looks up a member by name.
func (p *Pedigree) Person(name string) (Person, bool) {
	i, ok := p.index[name]
	if !ok {
		return Person{}, false
	}
	return p.Members[i], true
}

// HasSample returns true when the named sample is a pedigree member.
func (p *Pedigree) HasSample(name string) bool {
	_, ok := p.index[name]
	return ok
}

// SingleSampleName returns the name of the only member, or "" for
// multi-sample pedigrees.
func (p *Pedigree) SingleSampleName() string {
	if len(p.Members) != 1 {
		return ""
	}
	return p.Members[0].Name
}

// NumAffected counts affected members.
func (p *Pedigree) NumAffected() int {
	var n int
	for _, m := range p.Members {
		if m.IsAffected() {
			n++
		}
	}
	return n
}

// NumUnaffected counts explicitly unaffected members.
func (p *Pedigree) NumUnaffected() int {
	var n int
	for _, m := range p.Members {
		if m.IsUnaffected() {
			n++
		}
	}
	return n
}

// NumParents counts the distinct members referenced as a parent.
func (p *Pedigree) NumParents() int {
	parents := make(map[string]struct{})
	for _, m := range p.Members {
		if m.FatherID != "" {
			parents[m.FatherID] = struct{}{}
		}
		if m.MotherID != "" {
			parents[m.MotherID] = struct{}{}
		}
	}
	return len(parents)
}

// IsParentOfAffected returns true when the named member is a parent of an
// affected member.
func (p *Pedigree) IsParentOfAffected(name string) bool {
	for _, m := range p.Members {
		if m.IsAffected() && (m.FatherID == name || m.MotherID == name) {
			return true
		}
	}
	return false
}

// Summary renders each member as "FAMILY:NAME[disease;sex]", comma-joined.
func (p *Pedigree) Summary() string {
	parts := make([]string, len(p.Members))
	for i, m := range p.Members {
		parts[i] = fmt.Sprintf("%s:%s[%s;%s]", p.Family, m.Name, m.Disease, m.Sex)
	}
	return strings.Join(parts, ",")
}
