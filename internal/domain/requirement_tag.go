package domain

// RequirementTag is a catalog label categorizing customer needs
// (jewelry type, occasion, service, material). The catalog is seeded once
// and read-only through the public surface.
type RequirementTag struct {
	ID        int64
	Name      string
	Category  *string
	Active    bool
	SortOrder int
}
