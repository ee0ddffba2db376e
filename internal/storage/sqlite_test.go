package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsEntries(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Record(Entry{VisitID: "v1", GameID: "quiz", Kind: KindEntered}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry after reopen, got %d", len(entries))
	}
}

func TestRecordValidation(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name  string
		entry Entry
	}{
		{"no visit", Entry{GameID: "quiz", Kind: KindEntered}},
		{"no game", Entry{VisitID: "v1", Kind: KindEntered}},
		{"no kind", Entry{VisitID: "v1", GameID: "quiz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.Record(tt.entry); err == nil {
				t.Error("expected error for incomplete entry")
			}
		})
	}
}

func TestRecordAndQuery(t *testing.T) {
	store := openTestStore(t)

	records := []Entry{
		{VisitID: "v1", GameID: "quiz", Kind: KindEntered},
		{VisitID: "v1", GameID: "quiz", Kind: KindProgress, Detail: "Corax"},
		{VisitID: "v1", GameID: "quiz", Kind: KindLeft},
		{VisitID: "v2", GameID: "wheel", Kind: KindEntered},
		{VisitID: "v2", GameID: "wheel", Kind: KindRevealed, Detail: "A golden opportunity lies ahead."},
		{VisitID: "v2", GameID: "wheel", Kind: KindIdleReset},
	}
	for _, e := range records {
		if _, err := store.Record(e); err != nil {
			t.Fatalf("Record(%+v) failed: %v", e, err)
		}
	}

	recent, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent(2) returned %d entries", len(recent))
	}
	if recent[0].Kind != KindIdleReset || recent[1].Kind != KindRevealed {
		t.Errorf("Recent() should be newest first, got %v, %v", recent[0].Kind, recent[1].Kind)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
	if time.Since(recent[0].CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt looks wrong: %v", recent[0].CreatedAt)
	}

	quiz, err := store.ForGame("quiz", 0)
	if err != nil {
		t.Fatalf("ForGame() failed: %v", err)
	}
	if len(quiz) != 3 {
		t.Errorf("ForGame(quiz) returned %d entries, expected 3", len(quiz))
	}

	visit, err := store.Visit("v1")
	if err != nil {
		t.Fatalf("Visit() failed: %v", err)
	}
	if len(visit) != 3 || visit[0].Kind != KindEntered || visit[1].Detail != "Corax" {
		t.Errorf("Visit(v1) = %+v", visit)
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []Entry{
		{VisitID: "a", GameID: "stars", Kind: KindEntered},
		{VisitID: "a", GameID: "stars", Kind: KindCompleted},
		{VisitID: "b", GameID: "stars", Kind: KindEntered},
		{VisitID: "b", GameID: "stars", Kind: KindIdleReset},
		{VisitID: "c", GameID: "wheel", Kind: KindEntered},
		{VisitID: "c", GameID: "wheel", Kind: KindRevealed, Detail: "x"},
		{VisitID: "c", GameID: "wheel", Kind: KindRevealed, Detail: "x"},
		{VisitID: "c", GameID: "wheel", Kind: KindRevealed, Detail: "y"},
	} {
		if _, err := store.Record(e); err != nil {
			t.Fatal(err)
		}
	}

	st, err := store.GetGameStats("stars")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if st.Visits != 2 || st.Completions != 1 || st.IdleResets != 1 {
		t.Errorf("stars stats = %+v", st)
	}

	none, err := store.GetGameStats("quiz")
	if err != nil {
		t.Fatal(err)
	}
	if none.Visits != 0 {
		t.Errorf("unplayed game should have zero visits, got %d", none.Visits)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["wheel"].Reveals != 3 {
		t.Errorf("all stats = %+v", all)
	}

	counts, err := store.FortuneCounts()
	if err != nil {
		t.Fatalf("FortuneCounts() failed: %v", err)
	}
	if counts["x"] != 2 || counts["y"] != 1 {
		t.Errorf("FortuneCounts() = %v", counts)
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	for _, g := range []string{"quiz", "wheel"} {
		if _, err := store.Record(Entry{VisitID: "v", GameID: g, Kind: KindEntered}); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.Clear("quiz"); err != nil {
		t.Fatalf("Clear(quiz) failed: %v", err)
	}
	entries, _ := store.Recent(10)
	if len(entries) != 1 || entries[0].GameID != "wheel" {
		t.Errorf("after Clear(quiz): %+v", entries)
	}

	if err := store.Clear(""); err != nil {
		t.Fatalf("Clear(all) failed: %v", err)
	}
	entries, _ = store.Recent(10)
	if len(entries) != 0 {
		t.Errorf("after Clear(all): %d entries remain", len(entries))
	}
}

func TestParseTime(t *testing.T) {
	ref := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", ref, ref},
		{"sqlite string", "2024-03-01 12:30:00", ref},
		{"rfc3339", "2024-03-01T12:30:00Z", ref},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); !got.Equal(tt.want) {
				t.Errorf("parseTime(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
