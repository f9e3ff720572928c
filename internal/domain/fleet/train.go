package fleet

import "github.com/KirkDiggler/oop-showcase/internal/domain/shared"

// Train runs 30km for 3 fuel while it is on its tracks. A derailed train
// never moves again.
type Train struct {
	frame

	carCount int
	onTracks bool
}

func (t *Train) Kind() Kind       { return KindTrain }
func (t *Train) CarCount() int    { return t.carCount }
func (t *Train) IsOnTracks() bool { return t.onTracks }

func (t *Train) Move() *shared.Result {
	if !t.onTracks {
		return shared.Failed("%s is derailed and cannot move!", t.name)
	}

	if !t.travel(3, 3, 30) {
		return shared.Failed("%s is out of fuel and cannot run!", t.name)
	}
	return shared.Succeeded("🚂 %s is chugging along the railway! %s", t.name, t.MovementSound())
}

func (t *Train) MovementSound() string {
	return t.pick(KindTrain)
}

// Derail takes the train off its tracks. There is no way back.
func (t *Train) Derail() *shared.Result {
	t.onTracks = false
	t.moving = false
	return shared.Succeeded("⚠️ %s has derailed!", t.name)
}
