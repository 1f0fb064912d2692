package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	Board        Board     // Grid size in cells
	InitialBody  []Cell    // Starting snake, head first
	InitialDir   Direction // Starting heading
	TickRate     int       // Simulation ticks per second (default 10)
	Seed         int64     // RNG seed for deterministic gameplay
	Palette      Palette   // Drawing colors
	CellSize     int       // Pixels per cell for pixel canvases
	CanvasWidth  int       // Pixel canvas width
	CanvasHeight int       // Pixel canvas height
}

// DefaultConfig returns the classic 640x480 board with 20 pixel cells.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Board:        NewBoard(32, 24),
		InitialBody:  []Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		InitialDir:   Right,
		TickRate:     10,
		Seed:         0, // 0 means use current time in platform layer
		Palette:      DefaultPalette(),
		CellSize:     20,
		CanvasWidth:  640,
		CanvasHeight: 480,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Food eaten since start or last reset
	Length int  // Snake length
	Paused bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	Moved bool // The snake advanced this tick
	Ate   bool // Food was consumed this tick
	Reset bool // The snake was reset this tick
}
