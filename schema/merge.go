package schema

// Merge folds other into self and returns the combined lattice node,
// implementing rules M1-M6. It is nil-safe: nil stands for the lattice's
// identity element (no value observed), so either argument may be nil.
//
// Merge must be commutative and associative so that a parallel fold-reduce
// over arbitrarily chunked, arbitrarily ordered input produces a bit-for-bit
// identical result (properties P1 and P2). Every branch below is written to
// preserve that: the two operands are treated symmetrically even where the
// underlying maps are mutated in place on self for efficiency.
func Merge(self, other *Schema, cfg *Config) *Schema {
	if self == nil {
		return other
	}

	if other == nil {
		return self
	}

	mergeStringSets(self, other, cfg)
	mergeArrayItems(self, other, cfg)

	if !degradeLargeObject(self, other, cfg) {
		mergeObjectProperties(self, other, cfg)
	}

	return self
}

// mergeStringSets implements M1 (for every bit untouched by M2) and M2:
// STRING_SET only survives when both sides carry it and the combined
// cardinality stays within bound; STRING_SET meeting STRING (or
// overflowing) widens to open STRING. The type-mask union (M1) always
// happens first and in full -- M2 only ever narrows the STRING/STRING_SET
// pair of bits afterward, never drops any other bit other carried.
func mergeStringSets(self, other *Schema, cfg *Config) {
	considerStringSet := cfg == nil || cfg.ConsiderStringSet

	self.TypeMask |= other.TypeMask

	if !considerStringSet {
		self.StringValues = nil

		return
	}

	selfSet := self.TypeMask.Has(TypeStringSet)
	otherSet := other.TypeMask.Has(TypeStringSet)
	selfOpen := self.TypeMask.Has(TypeString)
	otherOpen := other.TypeMask.Has(TypeString)

	switch {
	case selfOpen || otherOpen:
		// An open string on either side wins outright: STRING_SET cannot
		// survive alongside STRING (invariant I4). The TypeString bit is
		// already set by M1's union above.
		self.TypeMask &^= TypeStringSet
		self.StringValues = nil
	case selfSet && otherSet:
		maxValues := DefaultMaxStringSetValues
		if cfg != nil {
			maxValues = cfg.MaxStringSetValues
		}

		merged := self.StringValues
		if merged == nil {
			merged = make(map[string]struct{}, len(other.StringValues))
		}

		for v := range other.StringValues {
			merged[v] = struct{}{}
		}

		if len(merged) > maxValues {
			self.TypeMask &^= TypeStringSet
			self.TypeMask |= TypeString
			self.StringValues = nil
		} else {
			self.StringValues = merged
		}
	case otherSet:
		// self carried neither STRING_SET nor STRING; adopt other's set
		// wholesale (ownership transfers, no aliasing risk per §3.4).
		self.StringValues = other.StringValues
	}
	// Remaining case (selfSet only, neither open): self's own StringValues
	// already holds the right value; M1's union left the mask correct.
}

// mergeArrayItems implements M3: when both sides are arrays, their item
// schemas join recursively; an array with no sampled items contributes
// nothing (absence of evidence, not evidence of an empty array).
func mergeArrayItems(self, other *Schema, cfg *Config) {
	considerArrayItems := cfg == nil || cfg.ConsiderArrayItems
	if !considerArrayItems {
		return
	}

	if !self.TypeMask.Has(TypeArray) || !other.TypeMask.Has(TypeArray) {
		return
	}

	switch {
	case self.ArrayItems != nil && other.ArrayItems != nil:
		self.ArrayItems = Merge(self.ArrayItems, other.ArrayItems, cfg)
	case self.ArrayItems == nil && other.ArrayItems != nil:
		self.ArrayItems = other.ArrayItems
	}
}

// degradeLargeObject implements M4: before any property merging, if either
// operand already carries [TypeLargeObject] or either operand's own
// (pre-merge) property count exceeds the bound, the result degrades to an
// opaque [TypeLargeObject], object properties are discarded, and the
// caller must skip M5 entirely. It reports whether it degraded.
//
// self's TypeMask has already absorbed other's bits via M1's union in
// [mergeStringSets], so self.TypeMask.Has(TypeLargeObject) alone is enough
// to detect a prior degradation on *either* side -- invariant I1 requires
// OBJECT and LARGE_OBJECT stay mutually exclusive, and checking both
// operands' own property counts (not just self's) rather than the merged
// union keeps the decision identical regardless of which side is "self"
// or how a parallel fold ordered its reductions (P1, P2).
func degradeLargeObject(self, other *Schema, cfg *Config) bool {
	if !self.TypeMask.Has(TypeObject) && !self.TypeMask.Has(TypeLargeObject) {
		return false
	}

	maxKeys := DefaultMaxObjectKeys
	if cfg != nil {
		maxKeys = cfg.MaxObjectKeys
	}

	degrade := self.TypeMask.Has(TypeLargeObject) ||
		len(self.ObjectProperties) > maxKeys ||
		len(other.ObjectProperties) > maxKeys

	if !degrade {
		return false
	}

	self.TypeMask &^= TypeObject
	self.TypeMask |= TypeLargeObject
	self.ObjectProperties = nil

	return true
}

// mergeObjectProperties implements M5: properties present on only one side
// gain [TypeAbsent] (they were observed missing on the other side's
// records), and properties present on both sides merge recursively. The
// caller only reaches this when [degradeLargeObject] reports no
// degradation, per M4's "skip M5" rule.
func mergeObjectProperties(self, other *Schema, cfg *Config) {
	switch {
	case self.ObjectProperties != nil && other.ObjectProperties != nil:
		merged := make(map[string]*Schema, len(self.ObjectProperties)+len(other.ObjectProperties))

		for key, selfProp := range self.ObjectProperties {
			merged[key] = selfProp
		}

		for key, otherProp := range other.ObjectProperties {
			if selfProp, ok := merged[key]; ok {
				merged[key] = Merge(selfProp, otherProp, cfg)
				delete(self.ObjectProperties, key)
			} else {
				otherProp.TypeMask |= TypeAbsent
				merged[key] = otherProp
			}
		}

		for key := range self.ObjectProperties {
			merged[key].TypeMask |= TypeAbsent
		}

		self.ObjectProperties = merged
	case self.ObjectProperties == nil && other.ObjectProperties != nil:
		props := make(map[string]*Schema, len(other.ObjectProperties))

		for key, prop := range other.ObjectProperties {
			propCopy := prop
			propCopy.TypeMask |= TypeAbsent
			props[key] = propCopy
		}

		self.ObjectProperties = props
	case self.ObjectProperties != nil && other.ObjectProperties == nil:
		for key, prop := range self.ObjectProperties {
			prop.TypeMask |= TypeAbsent
			self.ObjectProperties[key] = prop
		}
	}
}
