package annotate

import "strings"

// AminoAcidChange is a span of amino acids replaced by another span. Pos is
// the 0-based index of the first affected residue; Ref and Alt are the
// wild-type and variant residue windows.
type AminoAcidChange struct {
	Pos int
	Ref string
	Alt string
}

// LastPos returns the 0-based index of the last reference residue affected.
func (c AminoAcidChange) LastPos() int {
	return c.Pos + len(c.Ref) - 1
}

// IsNop returns true when the change alters nothing.
func (c AminoAcidChange) IsNop() bool {
	return c.Ref == "" && c.Alt == ""
}

// ShiftRight drops one shared leading residue from ref and alt, advancing
// the position. Callers must ensure the leading residues match.
func (c AminoAcidChange) ShiftRight() AminoAcidChange {
	return AminoAcidChange{Pos: c.Pos + 1, Ref: c.Ref[1:], Alt: c.Alt[1:]}
}

// TruncateAltAfterStop cuts the alternate window after its first stop
// symbol; everything past a new stop is untranslated.
func (c AminoAcidChange) TruncateAltAfterStop() AminoAcidChange {
	if idx := strings.IndexByte(c.Alt, '*'); idx >= 0 {
		c.Alt = c.Alt[:idx+1]
	}
	return c
}

// Normalize shifts the change right past every shared leading residue, then
// truncates the alternate after the first stop symbol. Normalization is
// idempotent; afterwards ref and alt share no leading residue unless the
// change is a nop.
func (c AminoAcidChange) Normalize() AminoAcidChange {
	for len(c.Ref) > 0 && len(c.Alt) > 0 && c.Ref[0] == c.Alt[0] {
		c = c.ShiftRight()
	}
	return c.TruncateAltAfterStop()
}
