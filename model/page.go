package model

// Page is an ordered container of components and wires, plus the
// arenas for the pins/tabs/waypoints/junctions those components and
// wires reference by id.
type Page struct {
	ID   string
	Name string

	Components []Component
	Wires      []*Wire

	pins      map[string]*Pin
	tabs      map[string]*Tab
	waypoints map[string]*Waypoint
	junctions map[string]*Junction
	wires     map[string]*Wire
}

// NewPage creates an empty page.
func NewPage(id, name string) *Page {
	return &Page{
		ID:        id,
		Name:      name,
		pins:      make(map[string]*Pin),
		tabs:      make(map[string]*Tab),
		waypoints: make(map[string]*Waypoint),
		junctions: make(map[string]*Junction),
		wires:     make(map[string]*Wire),
	}
}

// AddComponent registers a component on the page, indexing its pins
// and tabs into the page's arenas.
func (pg *Page) AddComponent(c Component) {
	pg.Components = append(pg.Components, c)
	for _, p := range c.Pins() {
		pg.pins[p.ID()] = p
		for _, t := range p.Tabs() {
			pg.tabs[t.ID()] = t
		}
	}
}

// AddWire registers a wire on the page. Its junctions and their child
// wires are not registered by this call; each needs its own
// AddJunction/AddWire.
func (pg *Page) AddWire(w *Wire) {
	pg.Wires = append(pg.Wires, w)
	pg.wires[w.ID] = w
}

// Wire looks up a wire by id on this page, including junction children.
func (pg *Page) Wire(id string) (*Wire, bool) {
	w, ok := pg.wires[id]
	return w, ok
}

// AddJunction registers a junction in the page's arena.
func (pg *Page) AddJunction(j *Junction) {
	pg.junctions[j.ID] = j
}

// AddWaypoint registers a waypoint in the page's arena.
func (pg *Page) AddWaypoint(w *Waypoint) {
	pg.waypoints[w.ID] = w
}

// Tab looks up a tab by id on this page.
func (pg *Page) Tab(id string) (*Tab, bool) {
	t, ok := pg.tabs[id]
	return t, ok
}

// Pin looks up a pin by id on this page.
func (pg *Page) Pin(id string) (*Pin, bool) {
	p, ok := pg.pins[id]
	return p, ok
}

// Junction looks up a junction by id on this page.
func (pg *Page) Junction(id string) (*Junction, bool) {
	j, ok := pg.junctions[id]
	return j, ok
}

// Tabs returns every tab registered on the page. Order is unspecified.
func (pg *Page) Tabs() []*Tab {
	out := make([]*Tab, 0, len(pg.tabs))
	for _, t := range pg.tabs {
		out = append(out, t)
	}
	return out
}

// Document is an ordered container of pages plus metadata, and the
// definition catalog for embedded sub-circuits.
type Document struct {
	Version     string
	Metadata    map[string]interface{}
	Pages       []*Page
	SubCircuits map[string]*Document
}

// NewDocument creates an empty document.
func NewDocument(version string) *Document {
	return &Document{
		Version:     version,
		Metadata:    make(map[string]interface{}),
		SubCircuits: make(map[string]*Document),
	}
}

// Page looks up a page by id.
func (d *Document) Page(id string) (*Page, bool) {
	for _, p := range d.Pages {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}
