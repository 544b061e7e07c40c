package market

import "math/rand/v2"

// MaxItems caps how many items may exist at once. Item ids are drawn
// from [0, MaxItems).
const MaxItems = 100

// generateID draws random candidates until a free id comes up.
// Rejection sampling has no worst-case bound on attempts, but the
// 100-slot domain keeps it short in practice. A full index is
// rejected before sampling so the loop cannot spin forever.
// Callers must hold m.mu.
func (m *Market) generateID() (int, error) {
	if len(m.index) >= MaxItems {
		return 0, ErrIDSpaceExhausted
	}
	for {
		id := rand.IntN(MaxItems)
		if _, taken := m.index[id]; !taken {
			return id, nil
		}
	}
}
