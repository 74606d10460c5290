package cache

import "testing"

func TestOpen_CreatesSchema(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer c.Close()

	if _, _, ok := c.Get("nonexistent"); ok {
		t.Error("Get() on empty cache should miss")
	}
}

func TestSaveAndGet(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer c.Close()

	hash := "abc123"
	grid := "cat\n-a-\n-t-\n"
	entries := `[{"number":1,"word":"cat"}]`

	if err := c.Save(hash, 3, grid, entries); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	gotGrid, gotEntries, ok := c.Get(hash)
	if !ok {
		t.Fatal("Get() after Save() should hit")
	}
	if gotGrid != grid {
		t.Errorf("Get() grid = %q, want %q", gotGrid, grid)
	}
	if gotEntries != entries {
		t.Errorf("Get() entries = %q, want %q", gotEntries, entries)
	}
}

func TestSave_OverwritesExisting(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer c.Close()

	hash := "abc123"
	if err := c.Save(hash, 3, "old grid\n", "[]"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := c.Save(hash, 3, "new grid\n", "[]"); err != nil {
		t.Fatalf("Save() (overwrite) error = %v", err)
	}

	grid, _, ok := c.Get(hash)
	if !ok {
		t.Fatal("Get() should hit after overwrite")
	}
	if grid != "new grid\n" {
		t.Errorf("Get() grid = %q, want %q", grid, "new grid\n")
	}
}

func TestSave_RejectsEmptyHash(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer c.Close()

	if err := c.Save("", 3, "cat\n", "[]"); err == nil {
		t.Error("Save() with empty hash should error")
	}
}

func TestSave_RejectsEmptyGrid(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer c.Close()

	if err := c.Save("abc123", 3, "", "[]"); err == nil {
		t.Error("Save() with empty grid should error")
	}
}

func TestStats(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer c.Close()

	if err := c.Save("h1", 3, "cat\n", "[]"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := c.Save("h2", 7, "bigger\n", "[]"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	stats, err := c.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalEntries != 2 {
		t.Errorf("TotalEntries = %d, want 2", stats.TotalEntries)
	}
	if stats.SmallestWords != 3 {
		t.Errorf("SmallestWords = %d, want 3", stats.SmallestWords)
	}
	if stats.LargestWords != 7 {
		t.Errorf("LargestWords = %d, want 7", stats.LargestWords)
	}
}

func TestSizeHistogram(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer c.Close()

	if err := c.Save("h1", 3, "cat\n", "[]"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := c.Save("h2", 3, "dog\n", "[]"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := c.Save("h3", 5, "apple\n", "[]"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	hist, err := c.SizeHistogram()
	if err != nil {
		t.Fatalf("SizeHistogram() error = %v", err)
	}
	if hist[3] != 2 {
		t.Errorf("hist[3] = %d, want 2", hist[3])
	}
	if hist[5] != 1 {
		t.Errorf("hist[5] = %d, want 1", hist[5])
	}
}
