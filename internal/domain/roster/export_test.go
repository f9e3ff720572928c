package roster

// SetEnergyForTest forces a hero's energy, bypassing the action rules
func (h *Hero) SetEnergyForTest(energy int) { h.energy = energy }

// SetWeaknessForTest exposes the unexported weakness setter
func (h *Hero) SetWeaknessForTest(weakness string) { h.setWeakness(weakness) }

// WeaknessForTest reads the otherwise unreadable weakness
func (h *Hero) WeaknessForTest() string { return h.weakness }
