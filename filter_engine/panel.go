package filter_engine

// Control is one checkbox or color swatch of the filter panel.
type Control struct {
	Facet   Facet  `json:"facet"`
	Value   string `json:"value"`
	Title   string `json:"title,omitempty"` // swatch description, colors only
	Count   int    `json:"count,omitempty"`
	Checked bool   `json:"checked"`
}

// Panel is the observable filter state: the ordered set of controls plus the
// listeners told about every change. Listeners run synchronously, in the order
// they subscribed, before the mutating call returns.
//
// A Panel is not safe for concurrent use.
type Panel struct {
	controls  []*Control
	listeners []*listener
}

type listener struct {
	fn func(Selection)
}

// NewPanel builds a panel from the given controls.
func NewPanel(controls ...Control) *Panel {
	p := &Panel{}
	for _, c := range controls {
		p.AddControl(c)
	}
	return p
}

// AddControl appends a control. A control already present for the same
// facet and value is updated in place instead.
func (p *Panel) AddControl(c Control) {
	if existing := p.find(c.Facet, c.Value); existing != nil {
		existing.Title = c.Title
		existing.Count = c.Count
		if existing.Checked != c.Checked {
			existing.Checked = c.Checked
			p.notify()
		}
		return
	}
	ctrl := c
	p.controls = append(p.controls, &ctrl)
	if ctrl.Checked {
		p.notify()
	}
}

// Controls returns a snapshot of every control in panel order.
func (p *Panel) Controls() []Control {
	out := make([]Control, 0, len(p.controls))
	for _, c := range p.controls {
		out = append(out, *c)
	}
	return out
}

// Checked returns the checked controls in panel order.
func (p *Panel) Checked() []Control {
	var out []Control
	for _, c := range p.controls {
		if c.Checked {
			out = append(out, *c)
		}
	}
	return out
}

// Selection derives the current filter selection from the checked controls.
func (p *Panel) Selection() Selection {
	return selectionOf(p.controls)
}

// Check marks a control as checked. It reports false when no such control exists.
func (p *Panel) Check(facet Facet, value string) bool {
	return p.set(facet, value, true)
}

// Uncheck clears a control. It reports false when no such control exists.
func (p *Panel) Uncheck(facet Facet, value string) bool {
	return p.set(facet, value, false)
}

// Toggle flips a control, as a swatch click does.
func (p *Panel) Toggle(facet Facet, value string) bool {
	c := p.find(facet, value)
	if c == nil {
		return false
	}
	c.Checked = !c.Checked
	p.notify()
	return true
}

// ClearAll unchecks every control and notifies once.
func (p *Panel) ClearAll() {
	changed := false
	for _, c := range p.controls {
		if c.Checked {
			c.Checked = false
			changed = true
		}
	}
	if changed {
		p.notify()
	}
}

// Subscribe registers fn for every later change. The returned func removes it.
func (p *Panel) Subscribe(fn func(Selection)) (cancel func()) {
	l := &listener{fn: fn}
	p.listeners = append(p.listeners, l)
	return func() {
		for i, existing := range p.listeners {
			if existing == l {
				p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
				return
			}
		}
	}
}

func (p *Panel) set(facet Facet, value string, checked bool) bool {
	c := p.find(facet, value)
	if c == nil {
		return false
	}
	if c.Checked != checked {
		c.Checked = checked
		p.notify()
	}
	return true
}

func (p *Panel) find(facet Facet, value string) *Control {
	for _, c := range p.controls {
		if c.Facet == facet && c.Value == value {
			return c
		}
	}
	return nil
}

func (p *Panel) notify() {
	sel := p.Selection()
	// copy so a listener may unsubscribe while being notified
	listeners := append([]*listener(nil), p.listeners...)
	for _, l := range listeners {
		l.fn(sel)
	}
}
