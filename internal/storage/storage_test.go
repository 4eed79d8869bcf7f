package storage

import (
	"os"
	"testing"
	"time"
)

func TestStorage(t *testing.T) {
	s, err := NewStorageAt(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	defer s.Close()

	t.Run("DefaultPreferences", func(t *testing.T) {
		prefs := DefaultPreferences()
		if prefs.LastScene != "coordinate-system" {
			t.Errorf("Expected last scene 'coordinate-system', got '%s'", prefs.LastScene)
		}
		if prefs.FPS != 10 {
			t.Errorf("Expected 10 fps, got %d", prefs.FPS)
		}
		if !prefs.ShowLabels {
			t.Errorf("Expected labels shown by default")
		}
	})

	t.Run("PreferencesRoundTrip", func(t *testing.T) {
		prefs := DefaultPreferences()
		prefs.LastScene = "knight-moves"
		prefs.FPS = 15
		if err := s.SavePreferences(prefs); err != nil {
			t.Fatalf("SavePreferences failed: %v", err)
		}

		loaded, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences failed: %v", err)
		}
		if loaded.LastScene != "knight-moves" {
			t.Errorf("Expected last scene 'knight-moves', got '%s'", loaded.LastScene)
		}
		if loaded.FPS != 15 {
			t.Errorf("Expected 15 fps, got %d", loaded.FPS)
		}
		if loaded.LastOpened.IsZero() {
			t.Errorf("Expected LastOpened to be set on save")
		}
	})

	t.Run("Manifest", func(t *testing.T) {
		recs := []RenderRecord{
			{Scene: "knight-moves", File: "knight-moves.gif", Frames: 24, Bytes: 4096},
			{Scene: "distance-heatmap", File: "distance-heatmap.png", Frames: 1, Bytes: 2048},
		}
		for _, rec := range recs {
			if err := s.RecordRender(rec); err != nil {
				t.Fatalf("RecordRender failed: %v", err)
			}
		}
		// Re-recording the same scene/file replaces, not appends.
		if err := s.RecordRender(RenderRecord{
			Scene: "knight-moves", File: "knight-moves.gif", Frames: 24, Bytes: 5120,
			RenderedAt: time.Now(),
		}); err != nil {
			t.Fatalf("RecordRender failed: %v", err)
		}

		manifest, err := s.LoadManifest()
		if err != nil {
			t.Fatalf("LoadManifest failed: %v", err)
		}
		if len(manifest) != 2 {
			t.Fatalf("Expected 2 manifest records, got %d", len(manifest))
		}
		for _, rec := range manifest {
			if rec.RenderedAt.IsZero() {
				t.Errorf("Record %s/%s missing timestamp", rec.Scene, rec.File)
			}
			if rec.Scene == "knight-moves" && rec.Bytes != 5120 {
				t.Errorf("Expected replaced record with 5120 bytes, got %d", rec.Bytes)
			}
		}
	})
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	outDir, err := GetOutputDir()
	if err != nil {
		t.Fatalf("GetOutputDir failed: %v", err)
	}
	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		t.Errorf("Output directory was not created: %s", outDir)
	}
}
