package game

// Faction represents which side an entity or projectile belongs to
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Opposite returns the faction this one fights against
func (f Faction) Opposite() Faction {
	if f == FactionPlayer {
		return FactionEnemy
	}
	return FactionPlayer
}

// direction returns +1 for projectiles travelling right and -1 for left
func (f Faction) direction() float64 {
	if f == FactionPlayer {
		return 1
	}
	return -1
}
