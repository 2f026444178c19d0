package widget

// Props is a string→Value mapping that preserves insertion order.
// Setting an existing key overwrites the value in place without moving the
// key, so repeated config calls keep the original property order.
type Props struct {
	keys  []string
	vals  []Value
	index map[string]int
}

// NewProps returns an empty property bag.
func NewProps() *Props {
	return &Props{index: make(map[string]int)}
}

// Set stores a value under key. Last writer wins.
func (p *Props) Set(key string, v Value) {
	if i, ok := p.index[key]; ok {
		p.vals[i] = v
		return
	}
	p.index[key] = len(p.keys)
	p.keys = append(p.keys, key)
	p.vals = append(p.vals, v)
}

// Get returns the value for key.
func (p *Props) Get(key string) (Value, bool) {
	if i, ok := p.index[key]; ok {
		return p.vals[i], true
	}
	return Value{}, false
}

// Has reports whether key is present.
func (p *Props) Has(key string) bool {
	_, ok := p.index[key]
	return ok
}

// Keys returns the keys in insertion order.
func (p *Props) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of entries.
func (p *Props) Len() int {
	return len(p.keys)
}

// Merge copies every entry of other into p, overwriting existing keys.
func (p *Props) Merge(other *Props) {
	if other == nil {
		return
	}
	for i, k := range other.keys {
		p.Set(k, other.vals[i])
	}
}

// Clone returns an independent copy.
func (p *Props) Clone() *Props {
	out := NewProps()
	out.keys = make([]string, len(p.keys))
	copy(out.keys, p.keys)
	out.vals = make([]Value, len(p.vals))
	copy(out.vals, p.vals)
	for k, i := range p.index {
		out.index[k] = i
	}
	return out
}
