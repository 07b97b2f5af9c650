package vnet

import "github.com/katalvlaran/relaysim/model"

// BuildDocument runs the full vnet construction pipeline over every
// page of doc: Builder per page, tab/pin registration, and
// LinkResolver across the whole document. It returns the populated
// Manager plus any dangling-link warnings (spec.md §4.2 rule 1).
func BuildDocument(doc *model.Document) (*Manager, []string) {
	mgr := NewManager()
	builder := NewBuilder()
	tabLinkNames := make(map[string]string)

	for _, page := range doc.Pages {
		for _, v := range builder.BuildPage(page) {
			mgr.Register(v)
		}

		for _, comp := range page.Components {
			for _, pin := range comp.Pins() {
				tabs := pin.Tabs()
				tabIDs := make([]string, 0, len(tabs))
				for _, tab := range tabs {
					tabIDs = append(tabIDs, tab.ID())
					mgr.RegisterTab(tab.ID(), tab)
					if comp.LinkName() != "" {
						tabLinkNames[tab.ID()] = comp.LinkName()
					}
				}
				mgr.RegisterPin(pin.ID(), tabIDs)
			}
		}
	}

	resolver := NewLinkResolver()
	warnings := resolver.Resolve(mgr, tabLinkNames)

	return mgr, warnings
}
