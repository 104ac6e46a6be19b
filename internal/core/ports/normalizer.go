package ports

// Normalizer defines the contract for canonicalizing validated input
// before dispatch. Normalize is total: it cannot fail and has no side
// effects. Applying it twice gives the same result as applying it once.
type Normalizer interface {
	Normalize(validated string) string
}
