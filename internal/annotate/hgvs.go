package annotate

import (
	"fmt"
	"strconv"

	"github.com/varannot/varannot/internal/genome"
	"github.com/varannot/varannot/internal/transcript"
)

// elideSeq shortens a structural-variant allele for display: the first and
// last two bases around a ".." marker.
func elideSeq(seq string) string {
	if len(seq) < 4 {
		return seq
	}
	return seq[:2] + ".." + seq[len(seq)-2:]
}

// Genomic-only change strings (g. prefix, one-based positions).

func gInsertion(v genome.Variant) string {
	return fmt.Sprintf("g.%d_%dins%s", v.Begin, v.Begin+1, elideSeq(v.Alt))
}

func gDeletion(v genome.Variant) string {
	return fmt.Sprintf("g.%d_%ddel", v.Begin+1, v.Begin+int64(len(v.Ref)))
}

func gInversion(v genome.Variant) string {
	return fmt.Sprintf("g.%d_%dinv", v.Begin+1, v.Begin+int64(len(v.Ref)))
}

func gBlockSubstitution(v genome.Variant) string {
	return fmt.Sprintf("g.%d_%ddelins%s", v.Begin+1, v.Begin+int64(len(v.Ref)), elideSeq(v.Alt))
}

func gSNV(v genome.Variant) string {
	return fmt.Sprintf("g.%d%s>%s", v.Begin+1, v.Ref, v.Alt)
}

// hgvsFormatter renders transcript-relative nucleotide change strings:
// c. positions for coding transcripts (with -N / *N UTR positions and
// boundary±offset intronic positions), n. positions for non-coding ones.
type hgvsFormatter struct {
	tm   *transcript.Model
	proj transcript.Projector
}

func newHGVSFormatter(tm *transcript.Model) hgvsFormatter {
	return hgvsFormatter{tm: tm, proj: transcript.NewProjector(tm)}
}

func (f hgvsFormatter) prefix() string {
	if f.tm.IsCoding() {
		return "c."
	}
	return "n."
}

// position renders the transcript-relative position string for a genomic
// position: "76", "-14", "*6", "88+1" or "89-2".
func (f hgvsFormatter) position(gpos int64) string {
	if f.tm.ExonIndexAt(gpos) >= 0 {
		return f.exonicPosition(gpos)
	}
	return f.intronicPosition(gpos)
}

func (f hgvsFormatter) exonicPosition(gpos int64) string {
	if !f.tm.IsCoding() {
		off, _ := f.proj.TranscriptOffset(gpos)
		return strconv.FormatInt(off+1, 10)
	}
	cp := f.proj.GenomeToCDS(gpos)
	switch {
	case cp.Offset < 0:
		return strconv.FormatInt(cp.Offset, 10)
	case cp.Offset >= f.proj.CDSLength():
		return "*" + strconv.FormatInt(cp.Offset-f.proj.CDSLength()+1, 10)
	default:
		return strconv.FormatInt(cp.Offset+1, 10)
	}
}

// intronicPosition renders boundary±offset against the closer flanking exon
// (transcript direction decides the sign).
func (f hgvsFormatter) intronicPosition(gpos int64) string {
	exons := f.tm.Exons
	for i := 0; i+1 < len(exons); i++ {
		if gpos < exons[i].End || gpos >= exons[i+1].Begin {
			continue
		}
		leftBase := exons[i].End - 1
		rightBase := exons[i+1].Begin
		dLeft := gpos - leftBase
		dRight := rightBase - gpos
		if f.tm.Strand.IsForward() {
			if dLeft <= dRight {
				return fmt.Sprintf("%s+%d", f.exonicPosition(leftBase), dLeft)
			}
			return fmt.Sprintf("%s-%d", f.exonicPosition(rightBase), dRight)
		}
		if dRight <= dLeft {
			return fmt.Sprintf("%s+%d", f.exonicPosition(rightBase), dRight)
		}
		return fmt.Sprintf("%s-%d", f.exonicPosition(leftBase), dLeft)
	}
	return ""
}

// Nucleotide renders the full transcript-relative change string for a small
// variant, dispatching on its shape.
func (f hgvsFormatter) Nucleotide(v genome.Variant) string {
	switch {
	case v.IsSNV():
		return f.prefix() + f.position(v.Begin) + v.RefOn(f.tm.Strand) + ">" + v.AltOn(f.tm.Strand)
	case v.IsInsertion():
		return f.insertion(v)
	case v.IsDeletion():
		return f.deletion(v)
	default:
		return f.blockSubstitution(v)
	}
}

func (f hgvsFormatter) insertion(v genome.Variant) string {
	inserted := v.AltOn(f.tm.Strand)

	// Anchor base: the base left of the insertion point in transcript order.
	anchorG := v.Begin - 1
	if !f.tm.Strand.IsForward() {
		anchorG = v.Begin
	}
	cp := f.proj.GenomeToCDS(anchorG)
	cds := f.proj.CDSSequence()
	if f.tm.IsCoding() && cds != "" && !cp.Intronic && !cp.OutsideCDS {
		seq, idx := shiftInsertionThreePrime(inserted, int(cp.Offset), cds)

		// Duplication: the inserted bases repeat the bases ending at the
		// (shifted) anchor, or the bases immediately after it.
		n := len(seq)
		if start := idx - n + 1; start >= 0 && cds[start:idx+1] == seq {
			if n == 1 {
				return fmt.Sprintf("%s%ddup", f.prefix(), idx+1)
			}
			return fmt.Sprintf("%s%d_%ddup", f.prefix(), start+1, idx+1)
		}
		if after := idx + 1; after+n <= len(cds) && cds[after:after+n] == seq {
			if n == 1 {
				return fmt.Sprintf("%s%ddup", f.prefix(), after+1)
			}
			return fmt.Sprintf("%s%d_%ddup", f.prefix(), after+1, after+n)
		}
		return fmt.Sprintf("%s%d_%dins%s", f.prefix(), idx+1, idx+2, seq)
	}

	// Non-CDS insertion: flanking positions in transcript order.
	afterG, beforeG := v.Begin-1, v.Begin
	if !f.tm.Strand.IsForward() {
		afterG, beforeG = v.Begin, v.Begin-1
	}
	return fmt.Sprintf("%s%s_%sins%s", f.prefix(), f.position(afterG), f.position(beforeG), inserted)
}

func (f hgvsFormatter) deletion(v genome.Variant) string {
	lead, trail := v.Begin, v.Begin+int64(len(v.Ref))-1
	if !f.tm.Strand.IsForward() {
		lead, trail = trail, lead
	}
	cpL, cpT := f.proj.GenomeToCDS(lead), f.proj.GenomeToCDS(trail)
	cds := f.proj.CDSSequence()
	if f.tm.IsCoding() && cds != "" &&
		!cpL.Intronic && !cpL.OutsideCDS && !cpT.Intronic && !cpT.OutsideCDS {
		s, e := shiftDeletionThreePrime(int(cpL.Offset), int(cpT.Offset), cds)
		if s == e {
			return fmt.Sprintf("%s%ddel", f.prefix(), s+1)
		}
		return fmt.Sprintf("%s%d_%ddel", f.prefix(), s+1, e+1)
	}
	if lead == trail {
		return fmt.Sprintf("%s%sdel", f.prefix(), f.position(lead))
	}
	return fmt.Sprintf("%s%s_%sdel", f.prefix(), f.position(lead), f.position(trail))
}

func (f hgvsFormatter) blockSubstitution(v genome.Variant) string {
	lead, trail := v.Begin, v.Begin+int64(len(v.Ref))-1
	if !f.tm.Strand.IsForward() {
		lead, trail = trail, lead
	}
	alt := v.AltOn(f.tm.Strand)
	if lead == trail {
		return fmt.Sprintf("%s%sdelins%s", f.prefix(), f.position(lead), alt)
	}
	return fmt.Sprintf("%s%s_%sdelins%s", f.prefix(), f.position(lead), f.position(trail), alt)
}

// shiftInsertionThreePrime rotates an insertion rightward in CDS space while
// the next reference base matches the first inserted base. anchorIdx is the
// 0-based CDS index of the base left of the insertion point; the shifted
// sequence and anchor index are returned.
func shiftInsertionThreePrime(inserted string, anchorIdx int, cds string) (string, int) {
	if inserted == "" {
		return inserted, anchorIdx
	}
	seq := []byte(inserted)
	idx := anchorIdx
	for idx+1 < len(cds) && cds[idx+1] == seq[0] {
		first := seq[0]
		copy(seq, seq[1:])
		seq[len(seq)-1] = first
		idx++
	}
	return string(seq), idx
}

// shiftDeletionThreePrime moves a deletion rightward in CDS space while the
// base following the deleted span equals its first base. Indices are 0-based
// inclusive CDS positions.
func shiftDeletionThreePrime(delStart, delEnd int, cds string) (int, int) {
	for delEnd+1 < len(cds) && cds[delStart] == cds[delEnd+1] {
		delStart++
		delEnd++
	}
	return delStart, delEnd
}
