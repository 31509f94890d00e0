package session

import (
	"sync"
	"time"

	"github.com/kdlibiran/gradecalculator/app/calculator"
	"github.com/kdlibiran/gradecalculator/app/grading"
)

// Session is one browser's grade calculator: the model, the form buffers and
// the keypad. Hold the lock for the whole of one user action.
type Session struct {
	ID string

	mu sync.Mutex

	Model     *grading.Model
	Draft     grading.EntryInput
	GoalInput string
	Keypad    calculator.Keypad

	// Flash is the message of the last rejected action, shown once.
	Flash string

	lastSeen time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:       id,
		Model:    grading.NewModel(),
		lastSeen: now,
	}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Reset clears the model and every buffer. The keypad is left alone.
func (s *Session) Reset() {
	s.Model.Clear()
	s.Draft = grading.EntryInput{}
	s.GoalInput = ""
	s.Flash = ""
}

// TakeFlash returns the pending message and clears it.
func (s *Session) TakeFlash() string {
	msg := s.Flash
	s.Flash = ""
	return msg
}
