package domain

// Entry represents a term-translation pair
type Entry struct {
	Term        string
	Translation string
}
