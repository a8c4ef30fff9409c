package components

import "github.com/yohamta/donburi"

// HealthData is kept within [0, Max] by every mutation.
type HealthData struct {
	Current int
	Max     int
}

// Damage subtracts amount and clamps at zero.
func (h *HealthData) Damage(amount int) {
	h.Current -= amount
	h.clamp()
}

// Heal adds amount and clamps at Max.
func (h *HealthData) Heal(amount int) {
	h.Current += amount
	h.clamp()
}

func (h *HealthData) Reset() {
	h.Current = h.Max
}

func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

func (h *HealthData) clamp() {
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

var Health = donburi.NewComponentType[HealthData]()
