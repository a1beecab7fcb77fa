package pedigree

// Genotype is a per-sample call for one variant.
type Genotype int

const (
	GenotypeNotObserved Genotype = iota
	GenotypeHomRef
	GenotypeHet
	GenotypeHomAlt
)

// Calls maps sample name to genotype for one variant.
type Calls map[string]Genotype

func (c Calls) of(name string) Genotype {
	if g, ok := c[name]; ok {
		return g
	}
	return GenotypeNotObserved
}

// carriesAlt returns true for genotypes with at least one alternate allele.
func carriesAlt(g Genotype) bool {
	return g == GenotypeHet || g == GenotypeHomAlt
}

// CompatibleDominant checks autosomal dominant compatibility over a list of
// candidate variant calls. Single sample: at least one variant carries a
// heterozygous call. Multi sample: some variant is heterozygous in every
// affected member and carries no alternate allele in any unaffected member.
func (p *Pedigree) CompatibleDominant(variants []Calls) bool {
	if name := p.SingleSampleName(); name != "" {
		for _, calls := range variants {
			if calls.of(name) == GenotypeHet {
				return true
			}
		}
		return false
	}
	for _, calls := range variants {
		if p.dominantFits(calls) {
			return true
		}
	}
	return false
}

func (p *Pedigree) dominantFits(calls Calls) bool {
	for _, m := range p.Members {
		g := calls.of(m.Name)
		switch {
		case m.IsAffected():
			if g != GenotypeHet && g != GenotypeNotObserved {
				return false
			}
		case m.IsUnaffected():
			if carriesAlt(g) {
				return false
			}
		}
	}
	return true
}

// CompatibleRecessive checks autosomal recessive compatibility. Single
// sample: one homozygous-alternate variant, or at least two heterozygous
// candidates (a possible compound heterozygote). Multi sample: some variant
// is homozygous-alternate in every affected member, heterozygous at most in
// unaffected members.
func (p *Pedigree) CompatibleRecessive(variants []Calls) bool {
	if name := p.SingleSampleName(); name != "" {
		var hets int
		for _, calls := range variants {
			switch calls.of(name) {
			case GenotypeHomAlt:
				return true
			case GenotypeHet:
				hets++
			}
		}
		return hets >= 2
	}
	for _, calls := range variants {
		if p.recessiveFits(calls) {
			return true
		}
	}
	return false
}

func (p *Pedigree) recessiveFits(calls Calls) bool {
	for _, m := range p.Members {
		g := calls.of(m.Name)
		switch {
		case m.IsAffected():
			if g != GenotypeHomAlt && g != GenotypeNotObserved {
				return false
			}
		case m.IsUnaffected():
			if g == GenotypeHomAlt {
				return false
			}
		}
	}
	return true
}

// CompatibleXRecessive checks X-linked recessive compatibility; callers
// pass calls for X-chromosome variants only. Affected males are hemizygous,
// so a heterozygous-looking call counts as carrying the trait.
func (p *Pedigree) CompatibleXRecessive(variants []Calls) bool {
	if name := p.SingleSampleName(); name != "" {
		m, _ := p.Person(name)
		for _, calls := range variants {
			g := calls.of(name)
			if g == GenotypeHomAlt {
				return true
			}
			if m.Sex == SexMale && g == GenotypeHet {
				return true
			}
		}
		return false
	}
	for _, calls := range variants {
		if p.xRecessiveFits(calls) {
			return true
		}
	}
	return false
}

func (p *Pedigree) xRecessiveFits(calls Calls) bool {
	for _, m := range p.Members {
		g := calls.of(m.Name)
		switch {
		case m.IsAffected() && m.Sex == SexMale:
			if !carriesAlt(g) && g != GenotypeNotObserved {
				return false
			}
		case m.IsAffected():
			if g != GenotypeHomAlt && g != GenotypeNotObserved {
				return false
			}
		case m.IsUnaffected():
			if g == GenotypeHomAlt {
				return false
			}
			// Unaffected males cannot be hemizygous carriers.
			if m.Sex == SexMale && g == GenotypeHet {
				return false
			}
		}
	}
	return true
}
