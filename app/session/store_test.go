package session

import (
	"testing"
	"time"

	"github.com/kdlibiran/gradecalculator/app/grading"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(ttl time.Duration) (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)}
	st := NewStore(ttl)
	st.now = clock.now
	return st, clock
}

func TestStore_CreateAndGet(t *testing.T) {
	st, _ := newTestStore(time.Hour)
	a := st.Create()
	b := st.Create()
	if a.ID == b.ID {
		t.Fatal("sessions share an id")
	}
	if a.Model == nil || a.Model.Len() != 0 {
		t.Fatal("new session has no empty model")
	}

	got, ok := st.Get(a.ID)
	if !ok || got != a {
		t.Fatalf("Get(%s)=%v, %v", a.ID, got, ok)
	}
	if _, ok := st.Get("missing"); ok {
		t.Fatal("Get(missing) found a session")
	}
}

func TestStore_Expiry(t *testing.T) {
	st, clock := newTestStore(time.Hour)
	idle := st.Create()
	active := st.Create()

	clock.advance(40 * time.Minute)
	if _, ok := st.Get(active.ID); !ok {
		t.Fatal("active session expired early")
	}
	clock.advance(40 * time.Minute)

	if n := st.Sweep(); n != 1 {
		t.Fatalf("Sweep removed %d, want 1", n)
	}
	if _, ok := st.Get(idle.ID); ok {
		t.Fatal("idle session survived the sweep")
	}
	if _, ok := st.Get(active.ID); !ok {
		t.Fatal("active session was swept")
	}

	clock.advance(2 * time.Hour)
	if _, ok := st.Get(active.ID); ok {
		t.Fatal("Get returned an expired session")
	}
	if st.Len() != 0 {
		t.Fatalf("Len=%d, want 0", st.Len())
	}
}

func TestSession_ResetAndFlash(t *testing.T) {
	st, _ := newTestStore(time.Hour)
	s := st.Create()

	if _, err := s.Model.Add(grading.Entry{Score: 1, Total: 2, Weight: 10}); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	s.Draft = grading.EntryInput{Score: "5"}
	s.GoalInput = "90"
	s.Flash = "boom"
	if err := s.Keypad.Press("7"); err != nil {
		t.Fatalf("Press error: %v", err)
	}

	if got := s.TakeFlash(); got != "boom" {
		t.Fatalf("TakeFlash=%q", got)
	}
	if got := s.TakeFlash(); got != "" {
		t.Fatalf("second TakeFlash=%q, want empty", got)
	}

	s.Reset()
	if s.Model.Len() != 0 || !s.Draft.IsBlank() || s.GoalInput != "" {
		t.Fatalf("Reset left state behind: %+v", s)
	}
	if s.Keypad.Expression() != "7" {
		t.Fatal("Reset cleared the keypad")
	}
}
