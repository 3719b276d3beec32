package zombie

// Stance is the behaviour/animation mode of a zombie.
type Stance int

const (
	Still Stance = iota
	Walking
	Running
	NormalDeath
	CriticalDeath
)

var stanceNames = [...]string{"Still", "Walking", "Running", "NormalDeath", "CriticalDeath"}

func (s Stance) String() string {
	if s < 0 || int(s) >= len(stanceNames) {
		return "Unknown"
	}
	return stanceNames[s]
}

// IsDeath reports whether s is terminal.
func (s Stance) IsDeath() bool {
	return s == NormalDeath || s == CriticalDeath
}
