package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/miosa/osa-vocab/app"
	"github.com/miosa/osa-vocab/config"
	"github.com/miosa/osa-vocab/store"
	"github.com/miosa/osa-vocab/style"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "", "Config file (default ~/.osa-vocab/vocab.yaml)")
	sourceFlag := flag.String("source", "", "Word source: sqlite, yaml or http")
	groupFlag := flag.String("group", "", "Group words by topic or date")
	importFlag := flag.String("import", "", "Import a YAML word file into the SQLite database and exit")
	exportFlag := flag.String("export", "", "Write the configured source's words to a YAML file and exit")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.BoolVar(showVersion, "V", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("osa-vocab %s\n", version)
		os.Exit(0)
	}

	if *noColor {
		os.Setenv("NO_COLOR", "1")
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "osa-vocab: %v\n", err)
		os.Exit(1)
	}
	if *sourceFlag != "" {
		cfg.Source = *sourceFlag
	}
	if *groupFlag != "" {
		cfg.GroupBy = *groupFlag
	}
	cfg = cfg.Normalize()

	log.SetFlags(log.Ltime | log.Lshortfile)

	switch {
	case *importFlag != "":
		if err := importWords(cfg, *importFlag); err != nil {
			fmt.Fprintf(os.Stderr, "osa-vocab: %v\n", err)
			os.Exit(1)
		}
		return
	case *exportFlag != "":
		if err := exportWords(cfg, *exportFlag); err != nil {
			fmt.Fprintf(os.Stderr, "osa-vocab: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Inside the TUI, log output would corrupt the alt screen.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "osa-vocab")
		if err != nil {
			fmt.Fprintf(os.Stderr, "osa-vocab: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	applyTheme(cfg.Theme)

	src, closeSource, err := store.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "osa-vocab: %v\n", err)
		os.Exit(1)
	}
	defer closeSource()

	app.Version = version

	// AltScreen and mouse mode are set on the View returned by the model.
	p := tea.NewProgram(app.New(cfg, src))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "osa-vocab: %v\n", err)
		closeSource()
		os.Exit(1)
	}
}

// applyTheme sets the named theme. "auto" and unknown names follow the
// terminal background.
func applyTheme(name string) {
	if name != "auto" && style.SetTheme(name) {
		return
	}
	if lipgloss.HasDarkBackground(os.Stdin, os.Stdout) {
		style.SetTheme("dark")
	} else {
		style.SetTheme("light")
	}
}

// importWords copies a YAML word file into the configured SQLite database.
func importWords(cfg config.Config, path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.LoadTimeout)
	defer cancel()

	words, err := store.NewYAMLFile(path).Words(ctx)
	if err != nil {
		return err
	}
	db, err := store.OpenSQLite(cfg.DatabasePath, cfg.Debug)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := db.Import(ctx, words)
	if err != nil {
		return err
	}
	log.Printf("imported %d words into %s", n, cfg.DatabasePath)
	return nil
}

// exportWords writes the configured source's words to a YAML file.
func exportWords(cfg config.Config, path string) error {
	src, closeSource, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.LoadTimeout)
	defer cancel()

	words, err := src.Words(ctx)
	if err != nil {
		return err
	}
	if err := store.NewYAMLFile(path).Write(words); err != nil {
		return err
	}
	log.Printf("exported %d words to %s", len(words), path)
	return nil
}
