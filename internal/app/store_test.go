package app

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/vkotov/stride/internal/constants"
	"github.com/vkotov/stride/internal/engine"
	"github.com/vkotov/stride/internal/models"
	"github.com/vkotov/stride/internal/storage"
	"github.com/vkotov/stride/internal/utils"
)

func testStore() (*Store, *storage.MemoryBackend) {
	backend := storage.NewMemoryBackend()
	eng := engine.New(utils.FixedClock{T: time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)})
	return New(storage.NewStore(backend), eng), backend
}

func TestOpenAndReady(t *testing.T) {
	s, _ := testStore()
	if s.Ready() {
		t.Error("store should not be ready before Open")
	}
	if err := s.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !s.Ready() {
		t.Error("store should be ready after Open")
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v, want nil", s.Err())
	}
	// Opening again is a no-op, not a reload.
	if err := s.Open(); err != nil {
		t.Errorf("second Open failed: %v", err)
	}
}

func TestDispatchPersistsThroughSubscriber(t *testing.T) {
	s, backend := testStore()

	s.Dispatch(func(doc *models.Document) {
		s.Engine().AddHabit(doc, engine.HabitInput{Title: "Стакан воды"})
	})

	raw, ok, err := backend.Get(constants.StorageKey)
	if err != nil || !ok {
		t.Fatalf("dispatch did not persist: ok=%v err=%v", ok, err)
	}
	var stored models.Document
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("persisted document is not valid JSON: %v", err)
	}
	if len(stored.Habits) != 1 || stored.Habits[0].Title != "Стакан воды" {
		t.Errorf("persisted habits = %+v", stored.Habits)
	}
}

func TestGetStateReturnsSnapshots(t *testing.T) {
	s, _ := testStore()

	s.Dispatch(func(doc *models.Document) {
		s.Engine().AddGoal(doc, engine.GoalInput{Title: "Read", Target: 12})
	})

	snap := s.GetState()
	snap.Goals[0].Title = "Tampered"
	snap.Goals = nil

	again := s.GetState()
	if len(again.Goals) != 1 || again.Goals[0].Title != "Read" {
		t.Error("mutating a snapshot must not affect the live document")
	}
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	s, _ := testStore()

	var calls int
	var lastHabits int
	unsub := s.Subscribe(func(doc *models.Document) {
		calls++
		lastHabits = len(doc.Habits)
	})

	s.Dispatch(func(doc *models.Document) {
		s.Engine().AddHabit(doc, engine.HabitInput{Title: "a"})
	})
	if calls != 1 || lastHabits != 1 {
		t.Fatalf("calls=%d lastHabits=%d after first dispatch", calls, lastHabits)
	}

	unsub()
	s.Dispatch(func(doc *models.Document) {
		s.Engine().AddHabit(doc, engine.HabitInput{Title: "b"})
	})
	if calls != 1 {
		t.Errorf("calls = %d, want unchanged after unsubscribe", calls)
	}
}

func TestOpenLoadsExistingDocument(t *testing.T) {
	backend := storage.NewMemoryBackend()
	eng := engine.New(utils.FixedClock{T: time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)})

	first := New(storage.NewStore(backend), eng)
	first.Dispatch(func(doc *models.Document) {
		eng.AddHabit(doc, engine.HabitInput{Title: "Чтение"})
		doc.Habits[0].History["2024-01-03"] = models.Done(true)
	})

	second := New(storage.NewStore(backend), eng)
	doc := second.GetState()
	if len(doc.Habits) != 1 {
		t.Fatalf("habits = %d, want 1 loaded from storage", len(doc.Habits))
	}
	// Derived fields are refreshed on open, not trusted from storage.
	if doc.Habits[0].Streak != 1 {
		t.Errorf("Streak = %d, want recomputed to 1", doc.Habits[0].Streak)
	}
}
