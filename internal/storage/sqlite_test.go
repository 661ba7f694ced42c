package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		player, room string
		score        int
	}{
		{"alice", "lobby", 100},
		{"bob", "lobby", 50},
		{"alice", "red", 200},
		{"carol", "red", 150},
	} {
		if _, err := store.SaveScore(s.player, s.room, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("TopScores() returned %d entries, expected 4", len(scores))
	}
	expected := []int{200, 150, 100, 50}
	for i, e := range scores {
		if e.Score != expected[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, e.Score, expected[i])
		}
	}
	if scores[0].Player != "alice" || scores[0].Room != "red" {
		t.Errorf("top entry = %+v, expected alice in red", scores[0])
	}

	room, err := store.RoomTopScores("lobby", 10)
	if err != nil {
		t.Fatalf("RoomTopScores() failed: %v", err)
	}
	if len(room) != 2 || room[0].Score != 100 {
		t.Errorf("RoomTopScores(lobby) = %v, expected 100 then 50", room)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		store.SaveScore("p", "", (i+1)*100)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores(3) returned %d entries, expected 3", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	def, _ := store.TopScores(0)
	if len(def) != 5 {
		t.Errorf("TopScores(0) returned %d entries, expected all 5", len(def))
	}
}

func TestStoreHighScoreAndPlayerBest(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d on empty store, expected 0", high)
	}

	store.SaveScore("alice", "", 100)
	store.SaveScore("alice", "", 300)
	store.SaveScore("bob", "", 200)

	if high, _ = store.HighScore(); high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
	if best, _ := store.PlayerBest("bob"); best != 200 {
		t.Errorf("PlayerBest(bob) = %d, expected 200", best)
	}
	if best, _ := store.PlayerBest("nobody"); best != 0 {
		t.Errorf("PlayerBest(nobody) = %d, expected 0", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("alice", "", 100)
	store.SaveScore("bob", "", 200)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("TopScores() after clear returned %d entries, expected 0", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty store = %+v", empty)
	}

	store.SaveScore("alice", "", 100)
	store.SaveScore("alice", "", 300)
	store.SaveScore("bob", "", 200)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Players != 2 {
		t.Errorf("Runs, Players = %d, %d, expected 3, 2", stats.Runs, stats.Players)
	}
	if stats.HighScore != 300 || stats.TotalScore != 600 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v, expected high 300 total 600 avg 200", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
