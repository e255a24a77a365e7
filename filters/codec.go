package filters

// The codec is the only place that rewrites catalog query strings. All three
// operations are pure: they copy the input values and never mutate them, so
// handlers can derive several candidate URLs from one request.

import "net/url"

type patchOp struct {
	key    string
	values []string
	del    bool
}

// Patch is a partial update to a query string, built with Set / SetValues /
// Delete and applied with Encode. Operations are applied in the order they
// were added; a later op on the same key wins.
type Patch struct {
	ops []patchOp
}

func NewPatch() *Patch {
	return &Patch{}
}

// Set replaces the single value for key.
func (p *Patch) Set(key, value string) *Patch {
	p.ops = append(p.ops, patchOp{key: key, values: []string{value}})
	return p
}

// SetValues replaces every occurrence of a multi-valued key with one
// occurrence per value, in order. An empty set removes the key entirely -
// there is no empty-array serialization.
func (p *Patch) SetValues(key string, values ...string) *Patch {
	p.ops = append(p.ops, patchOp{key: key, values: append([]string(nil), values...)})
	return p
}

// Delete removes the key from the query string.
func (p *Patch) Delete(key string) *Patch {
	p.ops = append(p.ops, patchOp{key: key, del: true})
	return p
}

func (p *Patch) setsPage() bool {
	for _, op := range p.ops {
		if op.key == KeyPage && !op.del {
			return true
		}
	}
	return false
}

// Encode applies patch on top of current and returns the new query values.
// Keys the patch does not mention pass through untouched, including keys
// owned by unrelated features. Unless the patch explicitly sets page, the
// page key is dropped: changing any facet invalidates the pagination
// context, while an explicit page navigation keeps itself.
func Encode(current url.Values, patch *Patch) url.Values {
	out := clone(current)
	if patch == nil {
		return out
	}
	for _, op := range patch.ops {
		switch {
		case op.del || len(op.values) == 0:
			out.Del(op.key)
		case multiValued[op.key]:
			out.Del(op.key)
			for _, v := range op.values {
				out.Add(op.key, v)
			}
		default:
			out.Set(op.key, op.values[0])
		}
	}
	if !patch.setsPage() {
		out.Del(KeyPage)
	}
	return out
}

// Toggle flips membership of value in the repeated key - the operation
// behind every on/off filter chip. Toggling a value that is not present
// inserts it; toggling it again removes it. Pagination always resets.
func Toggle(current url.Values, key, value string) url.Values {
	out := clone(current)
	existing := out[key]
	kept := make([]string, 0, len(existing))
	found := false
	for _, v := range existing {
		if v == value {
			found = true
			continue
		}
		kept = append(kept, v)
	}
	if !found {
		kept = append(kept, value)
	}
	if len(kept) == 0 {
		out.Del(key)
	} else {
		out[key] = kept
	}
	out.Del(KeyPage)
	return out
}

// Clear drops every key except those in preserve. "Clear all filters" passes
// the keys of unrelated features (free-text query, tab, ...) so they survive.
func Clear(current url.Values, preserve ...string) url.Values {
	keep := make(map[string]bool, len(preserve))
	for _, k := range preserve {
		keep[k] = true
	}
	out := url.Values{}
	for k, vs := range current {
		if keep[k] {
			out[k] = append([]string(nil), vs...)
		}
	}
	return out
}

func clone(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
