package component

// Phase — фаза игровой сессии
type Phase int

const (
	NotStarted Phase = iota
	Running
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Progress — счёт, здоровье и уровень сложности сессии.
type Progress struct {
	Score  int
	Health int // Проценты, [0, MaxHealth]
	Tier   int
}
