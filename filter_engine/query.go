package filter_engine

import (
	"net/url"
	"slices"
)

// ApplyQuery checks every control named by the query, e.g.
// ?fabric=Cotton&price=0-500&in_stock=on. Unknown values are ignored.
func (p *Panel) ApplyQuery(q url.Values) {
	for _, facet := range Facets {
		for _, v := range q[string(facet)] {
			if facet == FacetInStock {
				p.checkFacet(FacetInStock)
				continue
			}
			p.Check(facet, v)
		}
	}
}

// checkFacet checks the first control of a single-control facet.
func (p *Panel) checkFacet(facet Facet) {
	for _, c := range p.controls {
		if c.Facet == facet {
			p.Check(facet, c.Value)
			return
		}
	}
}

// Query encodes the checked controls.
func (p *Panel) Query() url.Values {
	q := url.Values{}
	for _, c := range p.Checked() {
		q.Add(string(c.Facet), c.Value)
	}
	return q
}

// RemoveTagQuery returns q without the constraint behind t. Other
// parameters, sort included, are kept and pagination restarts.
func RemoveTagQuery(q url.Values, t Tag) url.Values {
	out := cloneQuery(q)
	key := string(t.Facet)
	if t.Facet == FacetInStock {
		out.Del(key)
	} else {
		kept := slices.DeleteFunc(slices.Clone(out[key]), func(v string) bool { return v == t.Value })
		if len(kept) == 0 {
			out.Del(key)
		} else {
			out[key] = kept
		}
	}
	out.Del("page")
	return out
}

// ClearQuery drops every filter parameter but keeps the rest.
func ClearQuery(q url.Values) url.Values {
	out := cloneQuery(q)
	for _, facet := range Facets {
		out.Del(string(facet))
	}
	out.Del("page")
	return out
}

func cloneQuery(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, v := range q {
		out[k] = slices.Clone(v)
	}
	return out
}
