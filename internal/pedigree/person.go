// Package pedigree models family structures and genotype-based inheritance
// mode compatibility, the downstream consumer of variant annotations.
package pedigree

// Sex of a pedigree member as encoded in PED files.
type Sex int

const (
	SexUnknown Sex = iota
	SexMale
	SexFemale
)

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	default:
		return "unknown"
	}
}

// Disease state of a pedigree member.
type Disease int

const (
	DiseaseUnknown Disease = iota
	DiseaseUnaffected
	DiseaseAffected
)

func (d Disease) String() string {
	switch d {
	case DiseaseAffected:
		return "affected"
	case DiseaseUnaffected:
		return "unaffected"
	default:
		return "unknown"
	}
}

// Person is one pedigree member. FatherID and MotherID are empty for
// founders.
type Person struct {
	Family   string
	Name     string
	FatherID string
	MotherID string
	Sex      Sex
	Disease  Disease
}

// IsFounder returns true when the person has no parent in the pedigree.
func (p Person) IsFounder() bool {
	return p.FatherID == "" && p.MotherID == ""
}

// IsAffected returns true for affected members.
func (p Person) IsAffected() bool {
	return p.Disease == DiseaseAffected
}

// IsUnaffected returns true for explicitly unaffected members.
func (p Person) IsUnaffected() bool {
	return p.Disease == DiseaseUnaffected
}
