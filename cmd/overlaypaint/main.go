// Command overlaypaint renders a YAML scene script through the overlay
// engine and writes the result as an image.
//
// Usage:
//
//	overlaypaint -scene scene.yaml -out out.png [-watch] [-v]
//
// With -watch the scene is rendered again every time the file changes.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/overlay"
)

func main() {
	var (
		scene   = flag.String("scene", "scene.yaml", "scene script")
		output  = flag.String("out", "out.png", "output image; the extension selects the format")
		watch   = flag.Bool("watch", false, "render again when the scene changes")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	overlay.SetLogger(log)

	if err := renderFile(*scene, *output); err != nil {
		log.Error("render failed", "scene", *scene, "err", err)
		if !*watch {
			os.Exit(1)
		}
	}
	if !*watch {
		return
	}

	if err := watchFile(log, *scene, *output); err != nil {
		log.Error("watch failed", "err", err)
		os.Exit(1)
	}
}

func renderFile(scene, output string) error {
	sc, err := LoadScene(scene)
	if err != nil {
		return err
	}
	s, err := Render(sc, filepath.Dir(scene))
	if err != nil {
		return err
	}
	if err := imaging.Save(s.ToImage(), output); err != nil {
		return err
	}
	overlay.Logger().Info("scene rendered", "out", output, "width", s.Width(), "height", s.Height())
	return nil
}

// watchFile watches the directory holding scene so editors that replace the
// file on save are still seen.
func watchFile(log *slog.Logger, scene, output string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(scene)); err != nil {
		return err
	}
	name := filepath.Clean(scene)
	log.Info("watching", "scene", name)

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := renderFile(scene, output); err != nil {
				log.Error("render failed", "scene", scene, "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "err", err)
		}
	}
}
