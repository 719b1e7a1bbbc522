// Package filter_engine decides which products of a collection page are shown
// for the filters a shopper has checked, and keeps the active-filter tag tray
// in step with those filters.
package filter_engine

import "fmt"

// Result is the outcome of one filter pass over the container.
type Result struct {
	Visible []bool `json:"visible"`
	Shown   int    `json:"shown"`
	Total   int    `json:"total"`
}

// Summary is the results counter text.
func (r Result) Summary() string {
	return fmt.Sprintf("Showing %d of %d results", r.Shown, r.Total)
}

// Tag is one removable chip in the active-filter tray.
type Tag struct {
	Facet Facet  `json:"facet"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// Tray is the rendered active-filter tray.
type Tray struct {
	Tags     []Tag `json:"tags"`
	ClearAll bool  `json:"clear_all"`
}

// View is what listeners receive after the selection changes.
type View struct {
	Result Result `json:"result"`
	Tray   Tray   `json:"tray"`
}

// Engine applies the panel's selection to the items of its container.
// It keeps no state of its own beyond references to both.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	container Container
	panel     *Panel
	renderers []func(View)
	cancel    func()
}

// New wires an engine to a container and a panel. Every panel change
// re-runs Apply and Tags and hands the view to the OnRender listeners.
func New(container Container, panel *Panel) *Engine {
	e := &Engine{container: container, panel: panel}
	e.cancel = panel.Subscribe(func(Selection) { e.Refresh() })
	return e
}

// Close detaches the engine from its panel.
func (e *Engine) Close() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// Panel returns the panel the engine reads from.
func (e *Engine) Panel() *Panel { return e.panel }

// OnRender registers fn to receive every refreshed view.
func (e *Engine) OnRender(fn func(View)) {
	e.renderers = append(e.renderers, fn)
}

// Apply decides visibility for every item in the container. An empty
// facet never constrains, so the empty selection shows everything.
func (e *Engine) Apply() Result {
	sel := e.panel.Selection()
	items := e.container.Items()

	res := Result{Visible: make([]bool, len(items)), Total: len(items)}
	for i, it := range items {
		if sel.Matches(it) {
			res.Visible[i] = true
			res.Shown++
		}
	}
	return res
}

// Tags rebuilds the tray from the checked controls.
func (e *Engine) Tags() Tray {
	checked := e.panel.Checked()
	tray := Tray{Tags: make([]Tag, 0, len(checked))}
	for _, c := range checked {
		tray.Tags = append(tray.Tags, Tag{Facet: c.Facet, Value: c.Value, Label: labelOf(c)})
	}
	tray.ClearAll = len(tray.Tags) > 0
	return tray
}

// Refresh runs both passes and publishes the view.
func (e *Engine) Refresh() View {
	v := View{Result: e.Apply(), Tray: e.Tags()}
	for _, fn := range e.renderers {
		fn(v)
	}
	return v
}

// RemoveTag unchecks the control behind t. The panel notification refreshes
// the view. It reports false when t has no backing control.
func (e *Engine) RemoveTag(t Tag) bool {
	return e.panel.Uncheck(t.Facet, t.Value)
}

// ClearAll unchecks every control.
func (e *Engine) ClearAll() {
	e.panel.ClearAll()
}

func labelOf(c Control) string {
	if c.Facet == FacetColor && c.Title != "" {
		return c.Title
	}
	return c.Value
}
