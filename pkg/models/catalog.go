package models

// Catalog holds the obstacle kinds that can be spawned
type Catalog struct {
	kinds []ObstacleKind
}

// NewCatalog creates a catalog from a list of kinds
func NewCatalog(kinds []ObstacleKind) *Catalog {
	return &Catalog{kinds: append([]ObstacleKind(nil), kinds...)}
}

// Len returns the number of kinds
func (c *Catalog) Len() int {
	return len(c.kinds)
}

// Kind returns the i-th kind
func (c *Catalog) Kind(i int) ObstacleKind {
	return c.kinds[i]
}
