package annotate

import (
	"fmt"
	"strings"
)

// exonicState is the intermediate result threaded through the exonic-CDS
// stages: the wild-type and variant coding frames (CDS start through
// transcript end), the affected amino-acid window and the downstream stop
// position in the variant frame.
type exonicState struct {
	wtAA, varAA string
	change      AminoAcidChange
	// varStopPos is the index of the first stop symbol in varAA at or after
	// the affected window, -1 when the variant frame has no stop left.
	varStopPos  int
	frameDelta  int
	stopOverlap bool
}

// buildExonicCDS runs the coding-exon algorithm: translate wild-type and
// variant coding frames, locate the affected amino-acid window, then branch
// on the reading-frame shift.
func (b builder) buildExonicCDS() Annotation {
	st := b.exonicState()
	if st.frameDelta == 0 {
		return b.nonFrameshift(st)
	}
	return b.frameshift(st)
}

func (b builder) exonicState() exonicState {
	wtSeq := b.proj.CodingFromCDSStart()
	varSeq := b.proj.CodingWithVariant(b.v)
	frameDelta := (len(varSeq) - len(wtSeq)) % 3
	if frameDelta < 0 {
		frameDelta += 3
	}
	wtAA := TranslateSequence(wtSeq)
	varAA := TranslateSequence(varSeq)

	// First and last altered reference base in transcript direction; for an
	// insertion both collapse onto the base right of the insertion point in
	// transcript order.
	fwd := b.tm.Strand.IsForward()
	var leadG, trailG int64
	if b.shape == ShapeInsertion {
		leadG = b.v.Begin
		if !fwd {
			leadG = b.v.Begin - 1
		}
		trailG = leadG
	} else if fwd {
		leadG, trailG = b.v.Begin, b.v.Begin+int64(len(b.v.Ref))-1
	} else {
		leadG, trailG = b.v.Begin+int64(len(b.v.Ref))-1, b.v.Begin
	}
	// Last altered base of the variant allele, walking the alternate length
	// from the change begin in transcript direction.
	varTrailG := leadG + int64(len(b.v.Alt)) - 1
	if !fwd {
		varTrailG = leadG - int64(len(b.v.Alt)) + 1
	}

	refBegin := int(b.proj.GenomeToCDS(leadG).Offset)
	refLast := int(b.proj.GenomeToCDS(trailG).Offset)
	varLast := int(b.proj.GenomeToCDS(varTrailG).Offset)

	// Affected amino-acid windows; "(...+2)/3" rounds partially covered
	// codons in.
	pos := clampInt(refBegin/3, 0, len(wtAA))
	refTo := clampInt((refLast+1+2)/3, pos, len(wtAA))
	if b.shape == ShapeInsertion {
		// A pure insertion replaces no reference residue.
		refTo = pos
	}
	varFrom := clampInt(refBegin/3, 0, len(varAA))
	varTo := clampInt((varLast+1+2)/3, varFrom, len(varAA))

	varStopPos := strings.IndexByte(varAA[clampInt(pos, 0, len(varAA)):], '*')
	if varStopPos >= 0 {
		varStopPos += pos
	}

	return exonicState{
		wtAA:   wtAA,
		varAA:  varAA,
		change: AminoAcidChange{Pos: pos, Ref: wtAA[pos:refTo], Alt: varAA[varFrom:varTo]},

		varStopPos:  varStopPos,
		frameDelta:  frameDelta,
		stopOverlap: b.class.OverlapsStopCodon(b.iv),
	}
}

func (b builder) nonFrameshift(st exonicState) Annotation {
	effects := b.spliceEffects()
	refWindow := st.change.Ref

	if st.stopOverlap {
		effects = append(effects, EffectStopLost)
	} else {
		switch b.shape {
		case ShapeInsertion:
			effects = append(effects, EffectInframeInsertion)
		case ShapeDeletion:
			effects = append(effects, EffectInframeDeletion)
		case ShapeBlockSubstitution:
			switch {
			case len(b.v.Alt) > len(b.v.Ref):
				effects = append(effects, EffectInternalFeatureElongation)
			case len(b.v.Alt) < len(b.v.Ref):
				effects = append(effects, EffectFeatureTruncation, EffectComplexSubstitution)
			default:
				effects = append(effects, EffectMNV)
			}
		}
	}

	change := st.change.Normalize()
	if change.Alt == "*" {
		effects = append(effects, EffectStopGained)
	}

	if change.IsNop() {
		if b.shape == ShapeSNV {
			if strings.IndexByte(refWindow, '*') >= 0 {
				effects = append(effects, EffectStopRetained)
			} else {
				effects = append(effects, EffectSynonymous)
			}
		}
		return b.annotation(effects, "p.=")
	}
	if b.shape == ShapeSNV && !st.stopOverlap && change.Alt != "*" {
		effects = append(effects, EffectMissense)
	}

	prot := b.formatNonFrameshiftProtein(st, change)
	if st.stopOverlap {
		if st.varStopPos >= 0 {
			prot += fmt.Sprintf("ext*%d", st.varStopPos-change.Pos+1)
		} else {
			prot += "ext*?"
		}
	}

	if b.shape == ShapeBlockSubstitution &&
		!containsEffect(effects, EffectMNV) && !containsEffect(effects, EffectComplexSubstitution) {
		effects = append(effects, EffectComplexSubstitution)
	}
	return b.annotation(effects, prot)
}

func (b builder) formatNonFrameshiftProtein(st exonicState, change AminoAcidChange) string {
	wtFirst := aaAt(st.wtAA, change.Pos)
	wtLast := aaAt(st.wtAA, change.LastPos())
	inserted := change.Alt

	switch {
	case inserted != "" && len(change.Ref) == 0:
		return formatInsertedProtein(st.wtAA, change)
	case inserted == "" && len(change.Ref) > 1:
		return fmt.Sprintf("p.%s%d_%s%ddel", ToLong(wtFirst), change.Pos+1, ToLong(wtLast), change.LastPos()+1)
	case inserted == "":
		return fmt.Sprintf("p.%s%ddel", ToLong(wtFirst), change.Pos+1)
	case change.Pos == change.LastPos() || inserted == "*":
		return fmt.Sprintf("p.%s%d%s", ToLong(wtFirst), change.Pos+1, ToLong(inserted[0]))
	default:
		return fmt.Sprintf("p.%s%d_%s%ddelins%s", ToLong(wtFirst), change.Pos+1, ToLong(wtLast), change.LastPos()+1, ToLongSeq(inserted))
	}
}

// formatInsertedProtein renders a pure amino-acid insertion: a duplication
// when the inserted residues repeat the residues immediately left of the
// insertion point, a flanked "ins" otherwise.
func formatInsertedProtein(wtAA string, change AminoAcidChange) string {
	p := change.Pos
	n := len(change.Alt)
	if start := p - n; start >= 0 && wtAA[start:p] == change.Alt {
		if n == 1 {
			return fmt.Sprintf("p.%s%ddup", ToLong(wtAA[start]), start+1)
		}
		return fmt.Sprintf("p.%s%d_%s%ddup", ToLong(wtAA[start]), start+1, ToLong(wtAA[p-1]), p)
	}
	return fmt.Sprintf("p.%s%d_%s%dins%s", ToLong(aaAt(wtAA, p-1)), p, ToLong(aaAt(wtAA, p)), p+1, ToLongSeq(change.Alt))
}

func (b builder) frameshift(st exonicState) Annotation {
	effects := b.spliceEffects()
	if st.stopOverlap {
		effects = append(effects, EffectStopLost)
	}

	var prot string
	if st.varStopPos >= 0 {
		wt := aaAt(st.wtAA, st.change.Pos)
		vr := aaAt(st.varAA, st.change.Pos)
		op := "fs"
		if strings.IndexByte(st.change.Ref, '*') >= 0 {
			// The stop codon itself was removed; the frame runs on.
			op = "ext"
		}
		prot = fmt.Sprintf("p.%s%d%s%s*%d", ToLong(wt), st.change.Pos+1, ToLong(vr), op, st.varStopPos-st.change.Pos+1)
		effects = append(effects, b.frameshiftShapeEffect())
	} else {
		// No stop codon remains downstream.
		prot = "p.0?"
		effects = append(effects, EffectFrameshiftVariant)
		if !containsEffect(effects, EffectStopLost) {
			effects = append(effects, EffectStopLost)
		}
	}

	if b.shape == ShapeBlockSubstitution {
		effects = append(effects, EffectComplexSubstitution)
	}
	return b.annotation(effects, prot)
}

// frameshiftShapeEffect picks the frameshift tag by shape. Block
// substitutions change length in both directions at once, so only the
// generic tag applies.
func (b builder) frameshiftShapeEffect() VariantEffect {
	switch b.shape {
	case ShapeInsertion:
		return EffectFrameshiftElongation
	case ShapeDeletion:
		return EffectFrameshiftTruncation
	default:
		return EffectFrameshiftVariant
	}
}

func containsEffect(effects []VariantEffect, e VariantEffect) bool {
	for _, x := range effects {
		if x == e {
			return true
		}
	}
	return false
}

func aaAt(seq string, i int) byte {
	if i < 0 || i >= len(seq) {
		return 'X'
	}
	return seq[i]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
