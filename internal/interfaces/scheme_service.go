package interfaces

import (
	"github.com/neervaani/neerhub/internal/models"
)

// SchemeService searches the bundled government-scheme dataset. Search is
// non-raising by construction: no match yields an empty slice, and a
// malformed dataset degrades to an empty slice with a logged cause.
type SchemeService interface {
	// Search returns every scheme whose name or keywords contain the query
	// (case-insensitive substring), in dataset order.
	Search(query string) []models.SchemeRecord

	// Count reports the number of loaded schemes
	Count() int
}
