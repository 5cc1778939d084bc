package game

// Snapshot is an immutable view of a session at one point in time. It
// shares no memory with the session.
type Snapshot struct {
	Mode      Mode
	Width     float64 // Playfield size in world units
	Height    float64
	Player    Player
	Obstacles []Obstacle
	Score     int
	HighScore int

	SecondsLeft int     // Countdown digit; 0 or less means "Go!"
	Fade        float64 // Countdown digit opacity, 1 at the start of each second
	CanRestart  bool    // GameOver lockout has elapsed
	Speed       float64
}
