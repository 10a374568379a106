package manager

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// DefaultStatsPath is where the high score and run history live.
const DefaultStatsPath = "data/gamestats.json"

// Status is the session state.
type Status int

const (
	StatusReady Status = iota
	StatusRunning
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// RunRecord is one finished run in the persisted history.
type RunRecord struct {
	ID        string    `json:"id"`
	Score     int       `json:"score"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// GameStats is the persisted payload.
type GameStats struct {
	HighScore int         `json:"highScore"`
	Runs      []RunRecord `json:"runs"`
}

// StateManager owns the session status, score and high score, and
// persists them across restarts. All guard conditions are no-ops
// rather than errors: this sits under a render loop that must never
// crash.
type StateManager struct {
	status    Status
	score     int
	highScore int
	runs      []RunRecord
	runID     string
	runStart  time.Time
	statsPath string
}

// NewStateManager seeds the high score from the stats file when one
// exists. A missing or unreadable file starts from zero.
func NewStateManager(statsPath string) *StateManager {
	sm := &StateManager{
		status:    StatusReady,
		statsPath: statsPath,
	}
	if err := sm.LoadStats(); err != nil && !os.IsNotExist(err) {
		log.Printf("stats: load %s: %v", statsPath, err)
	}
	return sm
}

func (sm *StateManager) Status() Status { return sm.status }
func (sm *StateManager) Score() int     { return sm.score }
func (sm *StateManager) HighScore() int { return sm.highScore }
func (sm *StateManager) RunID() string  { return sm.runID }

// Runs returns a copy of the persisted run history.
func (sm *StateManager) Runs() []RunRecord {
	out := make([]RunRecord, len(sm.runs))
	copy(out, sm.runs)
	return out
}

// StartRun resets the score and enters the running state. Each run
// gets its own id for the history records.
func (sm *StateManager) StartRun() {
	sm.status = StatusRunning
	sm.score = 0
	sm.runID = uuid.NewString()
	sm.runStart = time.Now()
}

// AddPoint bumps the score by one and updates the high score, saving
// whenever it changes. Only the tick algorithm calls this.
func (sm *StateManager) AddPoint() {
	if sm.status != StatusRunning {
		return
	}
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
		if err := sm.SaveStats(); err != nil {
			log.Printf("stats: save %s: %v", sm.statsPath, err)
		}
	}
}

// EndRun enters the game-over state and appends the finished run to
// the history. The score is left untouched for the game-over screen.
func (sm *StateManager) EndRun() {
	if sm.status != StatusRunning {
		return
	}
	sm.status = StatusGameOver
	sm.runs = append(sm.runs, RunRecord{
		ID:        sm.runID,
		Score:     sm.score,
		StartTime: sm.runStart,
		EndTime:   time.Now(),
	})
	if err := sm.SaveStats(); err != nil {
		log.Printf("stats: save %s: %v", sm.statsPath, err)
	}
}

// SaveStats writes the high score and run history as JSON.
func (sm *StateManager) SaveStats() error {
	if err := os.MkdirAll(filepath.Dir(sm.statsPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(GameStats{
		HighScore: sm.highScore,
		Runs:      sm.runs,
	}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(sm.statsPath, data, 0644)
}

// LoadStats reads the stats file back, replacing the in-memory high
// score and history.
func (sm *StateManager) LoadStats() error {
	data, err := os.ReadFile(sm.statsPath)
	if err != nil {
		return err
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return err
	}

	sm.highScore = stats.HighScore
	sm.runs = stats.Runs
	return nil
}
