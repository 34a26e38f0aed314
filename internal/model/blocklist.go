package model

// BlockList is the set of domains blocked by the running session, kept in
// the order they were added. The zero value is an empty list.
type BlockList struct {
	domains []Domain
}

func NewBlockList(domains ...Domain) *BlockList {
	b := &BlockList{}
	for _, d := range domains {
		b.Add(d)
	}
	return b
}

// Add inserts d unless it is already present and reports whether it did.
func (b *BlockList) Add(d Domain) bool {
	if b.Contains(d) {
		return false
	}
	b.domains = append(b.domains, d)
	return true
}

func (b *BlockList) Contains(d Domain) bool {
	for _, item := range b.domains {
		if item == d {
			return true
		}
	}
	return false
}

// Domains returns a copy of the members.
func (b *BlockList) Domains() []Domain {
	out := make([]Domain, len(b.domains))
	copy(out, b.domains)
	return out
}

func (b *BlockList) Len() int { return len(b.domains) }

func (b *BlockList) Empty() bool { return len(b.domains) == 0 }

func (b *BlockList) Clear() { b.domains = nil }
