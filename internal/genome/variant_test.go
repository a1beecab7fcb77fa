package genome

import "testing"

func TestNewVariantOneBased(t *testing.T) {
	v := NewVariant("1", 101, OneBased, "C", "T")
	if v.Begin != 100 {
		t.Errorf("one-based SNV Begin = %d, want 100", v.Begin)
	}

	// A one-based insertion anchors at the base left of the gap, so the
	// zero-based insertion point is the anchor position itself.
	ins := NewVariant("1", 100, OneBased, "", "AG")
	if ins.Begin != 100 {
		t.Errorf("one-based insertion Begin = %d, want 100", ins.Begin)
	}
	if !ins.Interval().IsEmpty() {
		t.Error("insertion interval must be empty")
	}
}

func TestVariantInterval(t *testing.T) {
	del := NewVariant("1", 100, ZeroBased, "ACGT", "")
	iv := del.Interval()
	if iv.Begin != 100 || iv.End != 104 {
		t.Errorf("deletion interval = [%d,%d), want [100,104)", iv.Begin, iv.End)
	}
}

func TestVariantShapes(t *testing.T) {
	tests := []struct {
		name     string
		ref, alt string
		snv, ins, del, blocksub bool
	}{
		{"snv", "C", "T", true, false, false, false},
		{"insertion", "", "AG", false, true, false, false},
		{"deletion", "AG", "", false, false, true, false},
		{"delins", "AC", "TG", false, false, false, true},
		{"length change", "A", "TTT", false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVariant("1", 100, ZeroBased, tt.ref, tt.alt)
			if v.IsSNV() != tt.snv {
				t.Errorf("IsSNV = %v, want %v", v.IsSNV(), tt.snv)
			}
			if v.IsInsertion() != tt.ins {
				t.Errorf("IsInsertion = %v, want %v", v.IsInsertion(), tt.ins)
			}
			if v.IsDeletion() != tt.del {
				t.Errorf("IsDeletion = %v, want %v", v.IsDeletion(), tt.del)
			}
			if v.IsBlockSubstitution() != tt.blocksub {
				t.Errorf("IsBlockSubstitution = %v, want %v", v.IsBlockSubstitution(), tt.blocksub)
			}
		})
	}
}

func TestVariantIsInversion(t *testing.T) {
	if !NewVariant("1", 100, ZeroBased, "AAGT", "ACTT").IsInversion() {
		t.Error("ACTT is the reverse complement of AAGT")
	}
	if NewVariant("1", 100, ZeroBased, "AAGT", "TTCA").IsInversion() {
		t.Error("TTCA is the reverse, not the reverse complement")
	}
	// Single-base changes never count as inversions.
	if NewVariant("1", 100, ZeroBased, "A", "T").IsInversion() {
		t.Error("SNV must not be an inversion")
	}
}

func TestVariantFrameDelta(t *testing.T) {
	tests := []struct {
		ref, alt string
		want     int
	}{
		{"C", "T", 0},
		{"", "AGT", 0},
		{"", "A", 1},
		{"", "AG", 2},
		{"A", "", 2},
		{"AG", "", 1},
		{"AGT", "", 0},
	}
	for _, tt := range tests {
		v := NewVariant("1", 100, ZeroBased, tt.ref, tt.alt)
		if got := v.FrameDelta(); got != tt.want {
			t.Errorf("FrameDelta(%q>%q) = %d, want %d", tt.ref, tt.alt, got, tt.want)
		}
	}
}

func TestVariantAllelesOnStrand(t *testing.T) {
	v := NewVariant("1", 100, ZeroBased, "AC", "GT")
	if v.RefOn(StrandFwd) != "AC" || v.AltOn(StrandFwd) != "GT" {
		t.Error("forward strand alleles must be unchanged")
	}
	if got := v.RefOn(StrandRev); got != "GT" {
		t.Errorf("RefOn(rev) = %q, want GT", got)
	}
	if got := v.AltOn(StrandRev); got != "AC" {
		t.Errorf("AltOn(rev) = %q, want AC", got)
	}
}
