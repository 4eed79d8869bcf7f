// chessalgebra-render renders the scene catalog to PNG stills, animated
// GIFs, and SVG/DOT exports without opening the viewer.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/chessalgebra/internal/anim"
	"github.com/hailam/chessalgebra/internal/plot"
	"github.com/hailam/chessalgebra/internal/scene"
	"github.com/hailam/chessalgebra/internal/storage"
)

var (
	list       = flag.Bool("list", false, "list available scenes and exit")
	status     = flag.Bool("status", false, "report which recorded renders exist on disk and exit")
	sceneName  = flag.String("scene", "", "render a single scene by name (default: all)")
	outDir     = flag.String("out", "", "output directory (default: platform data dir)")
	fps        = flag.Int("fps", anim.DefaultFPS, "animation frame rate")
	stillsOnly = flag.Bool("stills-only", false, "skip GIF animations")
	workers    = flag.Int("workers", 4, "scenes rendered in parallel")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	scenes := scene.All()
	if *list {
		for _, s := range scenes {
			kind := "still"
			if s.Animated() {
				kind = fmt.Sprintf("%d frames", s.Frames)
			}
			fmt.Printf("%-20s %-10s %s\n", s.Name, kind, s.Description)
		}
		return
	}

	if *status {
		if err := reportStatus(*outDir); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *sceneName != "" {
		s, err := scene.Find(*sceneName)
		if err != nil {
			log.Fatal(err)
		}
		scenes = []*scene.Scene{s}
	}

	dir := *outDir
	if dir == "" {
		var err error
		dir, err = storage.GetOutputDir()
		if err != nil {
			log.Fatal("could not resolve output directory: ", err)
		}
	} else if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatal("could not create output directory: ", err)
	}

	store, err := storage.NewStorage()
	if err != nil {
		log.Printf("Manifest unavailable, continuing without it: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	th := plot.DefaultTheme()
	var g errgroup.Group
	g.SetLimit(*workers)
	for _, s := range scenes {
		g.Go(func() error {
			return renderScene(s, dir, th, store)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	log.Printf("Rendered %d scene(s) to %s", len(scenes), dir)
}

// renderScene writes one scene's still, animation, and exports, recording
// each file in the manifest when storage is available.
func renderScene(s *scene.Scene, dir string, th *plot.Theme, store *storage.Storage) error {
	still, err := s.RenderStill(th)
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	pngName := s.Name + ".png"
	pngPath := filepath.Join(dir, pngName)
	if err := plot.SavePNG(pngPath, still); err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	record(store, s.Name, pngPath, 1)
	log.Printf("wrote %s", pngPath)

	if s.Animated() && !*stillsOnly {
		frames, err := s.RenderFrames(th)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		gifName := s.Name + ".gif"
		gifPath := filepath.Join(dir, gifName)
		if err := anim.SaveGIF(gifPath, frames, *fps); err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		record(store, s.Name, gifPath, len(frames))
		log.Printf("wrote %s (%d frames)", gifPath, len(frames))
	}

	if s.Export != nil {
		if err := s.Export(dir, th); err != nil {
			return fmt.Errorf("%s export: %w", s.Name, err)
		}
	}
	return nil
}

// reportStatus lists every recorded render and whether its file still
// exists under dir.
func reportStatus(dir string) error {
	if dir == "" {
		var err error
		dir, err = storage.GetOutputDir()
		if err != nil {
			return err
		}
	}

	store, err := storage.NewStorage()
	if err != nil {
		return err
	}
	defer store.Close()

	manifest, err := store.LoadManifest()
	if err != nil {
		return err
	}
	if len(manifest) == 0 {
		fmt.Println("no renders recorded")
		return nil
	}

	missing := 0
	for _, rec := range manifest {
		state := "ok"
		if _, err := os.Stat(filepath.Join(dir, rec.File)); err != nil {
			state = "missing"
			missing++
		}
		fmt.Printf("%-8s %-20s %-28s %d frame(s), rendered %s\n",
			state, rec.Scene, rec.File, rec.Frames, rec.RenderedAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("%d recorded, %d missing\n", len(manifest), missing)
	return nil
}

func record(store *storage.Storage, sceneName, path string, frames int) {
	if store == nil {
		return
	}
	var bytes int64
	if fi, err := os.Stat(path); err == nil {
		bytes = fi.Size()
	}
	err := store.RecordRender(storage.RenderRecord{
		Scene:  sceneName,
		File:   filepath.Base(path),
		Frames: frames,
		Bytes:  bytes,
	})
	if err != nil {
		log.Printf("Failed to record render of %s: %v", path, err)
	}
}
