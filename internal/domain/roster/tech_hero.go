package roster

import (
	"fmt"
	"slices"

	"github.com/KirkDiggler/oop-showcase/internal/domain/shared"
)

const (
	// UpgradeCost is the energy spent per tech upgrade
	UpgradeCost = 25

	// GadgetBonusPerLevel scales the effectiveness bonus reported by UseGadget
	GadgetBonusPerLevel = 5
)

// TechHero is a Hero carrying up to gadgetCapacity gadgets, in the order they
// were added. Duplicates are allowed.
type TechHero struct {
	Hero

	gadgetCapacity int
	gadgets        []string
	techLevel      int
}

func (t *TechHero) Kind() Kind          { return KindTech }
func (t *TechHero) GadgetCapacity() int { return t.gadgetCapacity }
func (t *TechHero) TechLevel() int      { return t.techLevel }

// Gadgets returns a copy of the arsenal in insertion order
func (t *TechHero) Gadgets() []string {
	return slices.Clone(t.gadgets)
}

// AddGadget appends name while there is room left
func (t *TechHero) AddGadget(name string) *shared.Result {
	if len(t.gadgets) >= t.gadgetCapacity {
		return shared.Failed("%s's gadget capacity is full! (%d max)", t.name, t.gadgetCapacity)
	}

	t.gadgets = append(t.gadgets, name)
	return shared.Succeeded("%s adds %s to their arsenal!", t.name, name)
}

// UpgradeTech spends UpgradeCost energy for one tech level
func (t *TechHero) UpgradeTech() *shared.Result {
	if !t.spend(UpgradeCost) {
		return shared.Failed("%s needs more energy to upgrade tech!", t.name)
	}

	t.techLevel++
	return shared.Succeeded("%s upgrades their tech to level %d!", t.name, t.techLevel)
}

// UseGadget only narrates; owning the gadget is the sole requirement and
// nothing changes.
func (t *TechHero) UseGadget(name string) *shared.Result {
	if !slices.Contains(t.gadgets, name) {
		return shared.Failed("%s doesn't have %s in their arsenal!", t.name, name)
	}

	return shared.Succeeded("%s uses %s (Tech Level %d bonus: +%d effectiveness)!",
		t.name, name, t.techLevel, t.techLevel*GadgetBonusPerLevel)
}

// Status extends Hero.Status with tech level and gadget usage
func (t *TechHero) Status() string {
	return fmt.Sprintf("%s, Tech Level: %d, Gadgets: %d/%d",
		t.Hero.Status(), t.techLevel, len(t.gadgets), t.gadgetCapacity)
}
