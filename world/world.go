package world

// World owns every piece of simulation state for one session.
type World struct {
	Physics Physics
	Level   *Level
	Player  *Player
	Camera  Camera
	Tick    int64

	sensor *GoalSensor
}

func NewWorld(phys Physics, level *Level, player *Player, viewportWidth float64) *World {
	w := &World{
		Physics: phys,
		Level:   level,
		Player:  player,
		Camera:  Camera{ViewportWidth: viewportWidth},
		sensor:  NewGoalSensor(level, phys.DeathLine()),
	}
	w.Camera.Follow(player.Coords.X)
	return w
}

// ForEachPlatform walks ground sections first, then floating platforms.
func (w *World) ForEachPlatform(callback func(Platform)) {
	for _, p := range w.Level.Platforms() {
		callback(p)
	}
}
