package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"rehearse/internal/adapters/editor"
	"rehearse/internal/adapters/filesystem"
	"rehearse/internal/adapters/memory"
	"rehearse/internal/adapters/playback"
	"rehearse/internal/adapters/sqlite"
	"rehearse/internal/adapters/tui"
	"rehearse/internal/adapters/tui/views"
	"rehearse/internal/config"
	"rehearse/internal/domain"
	"rehearse/internal/engine"
	"rehearse/internal/ports"
)

func main() {
	docFlag := flag.String("doc", config.DocumentPath(), "path to the annotation document")
	atFlag := flag.String("at", "", "annotation id to open at (deep-link fragment)")
	freshFlag := flag.Bool("fresh", false, "ignore any saved session for this document")
	flag.Parse()

	// Initialize adapters
	source := filesystem.NewSource(*docFlag)
	doc, err := source.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	clock := playback.NewClock()
	overlay := views.NewOverlayView()
	fragment := memory.NewFragmentChannel(*atFlag)

	eng := engine.New(domain.BuildTimeline(doc), clock, overlay, fragment, engine.Options{})
	defer eng.Close()

	store, err := sqlite.Open("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: sessions disabled: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}
	// A deep link wins over a stored position; it navigates on Ready.
	if store != nil && !*freshFlag && *atFlag == "" {
		if sess, err := store.Load(source.Path()); err == nil && sess != nil {
			eng.Restore(sess.PositionMs, sess.Triggered)
		}
	}

	watcher, err := filesystem.NewWatcher(source.Path(), 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: live reload disabled: %v\n", err)
		watcher = nil
	}

	app := tui.NewApp(eng, source, storeOrNil(store), watcherOrNil(watcher), editor.NewOpener(), overlay, config.BaseURL())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// A nil *T stored in an interface is not a nil interface; convert explicitly
// so the views' nil checks keep working when a collaborator is disabled.

func storeOrNil(s *sqlite.SessionStore) ports.SessionStore {
	if s == nil {
		return nil
	}
	return s
}

func watcherOrNil(w *filesystem.Watcher) ports.DocumentWatcher {
	if w == nil {
		return nil
	}
	return w
}
