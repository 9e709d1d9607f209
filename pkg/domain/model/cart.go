package model

// CartLine is one product inside a cart. A cart holds at most one line per
// product id; repeat additions update the existing line in place.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// CartStore persists the full cart snapshot. Save replaces the stored
// snapshot wholesale on every cart mutation; the format carries no version.
type CartStore interface {
	Load() ([]CartLine, error)
	Save(lines []CartLine) error
}
