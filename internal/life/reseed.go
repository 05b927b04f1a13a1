package life

// ReseedPolicy decides when a stagnant board gets replaced with fresh random
// cells.
type ReseedPolicy struct {
	// Threshold is the generation count that triggers a reseed; zero never
	// triggers.
	Threshold int
}

// Due reports whether generation has reached the threshold. Because a reseed
// resets the counter, the policy fires once per crossing.
func (p ReseedPolicy) Due(generation int) bool {
	return p.Threshold > 0 && generation >= p.Threshold
}
