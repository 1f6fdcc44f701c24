package openlibrary

// BookData is the subset of an Open Library record the catalog cares about.
type BookData struct {
	Title  string
	Author string
	ISBN   string
}

type bookPayload struct {
	Title   string          `json:"title"`
	Authors []authorPayload `json:"authors"`
}

type authorPayload struct {
	Name string `json:"name"`
}
