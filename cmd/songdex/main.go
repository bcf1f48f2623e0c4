/*
Package main implements the song catalog server and CLI [DBG] application.

Songdex keeps an in-memory catalog of song names with exact-match lookup and
a running most-played ranking. It can operate as a msgpack IPC server for
integration with player frontends, or as a CLI application for testing and
debugging.

Name lookup runs over a 26-way letter trie built from normalized names
(lowercase ASCII letters and spaces; everything else is dropped). Play
counts live in a bounded max-heap, so the current most-played name is an
O(1) query. The two structures are independent: playing a song does not
index it and indexing does not count a play.

# Usage

Start the server with default settings:

	songdex

Use a custom library file and enable debug mode:

	songdex -library /path/to/library.txt -d

Run in CLI mode for interactive testing:

	songdex -c -library library.txt

The library file is plain text, one song name per line. It is loaded on
startup when present and written back by the save op/command. Play counts
are never persisted.

# Configuration

Runtime configuration is managed through a TOML file:

	[catalog]
	max_name_length = 255
	ranker_capacity = 2000
	library_file = "library.txt"

	[server]
	max_name_input = 512

The config file is automatically created with defaults if it doesn't exist.
Server mode reloads configuration periodically without restart.

# IPC Protocol

The server communicates via msgpack over stdin/stdout. Requests carry an id,
an op and the op's arguments; responses echo the id with timing info:

	{"id": "r1", "op": "add", "n": "Blue Moon"}
	{"id": "r2", "op": "search", "n": "blue moon"}
	{"id": "r2", "ok": true, "f": true, "t": 12}

Supported ops: add, search, play, top, save, load, reset, info, health.
See pkg/server for the full message catalog.

# CLI Mode

CLI mode provides an interactive interface for testing and debugging the
catalog. It reads commands from stdin (add, find, play, top, count, save,
load, stats, reset) and prints human-readable results. New features should
be exercised here before relying on them in server mode.

# Catalog Engine

The core functionality is provided by the catalog package:

	cat := catalog.New(cfg.CatalogOptions())
	cat.AddName("Blue Moon")
	cat.ContainsName("BLUE MOON") // true
	cat.RecordPlay("Blue Moon")
	cat.TopName() // "blue moon"

The catalog has no internal locking and is intended for a single caller;
both interface modes here are strictly sequential.

# Command Line Flags

The following flags control application behavior:

	-library string
	    Library text file to load on start (default from config)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-config string
	    Custom config file path
	-capacity int
	    Distinct names tracked by the play ranker
	-maxlen int
	    Maximum normalized name length

The application resolves library and config paths relative to the
executable location, supporting both development and production
deployments.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/songdex/internal/cli"
	"github.com/bastiangx/songdex/internal/utils"
	"github.com/bastiangx/songdex/pkg/catalog"
	"github.com/bastiangx/songdex/pkg/config"
	"github.com/bastiangx/songdex/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "songdex"
	gh      = "https://github.com/bastiangx/songdex"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	libraryFile := flag.String("library", "", "Library text file to load on start")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configPathFlag := flag.String("config", "", "Custom config file path")
	capacity := flag.Int("capacity", defaultConfig.Catalog.RankerCapacity, "Distinct names tracked by the play ranker")
	maxLen := flag.Int("maxlen", defaultConfig.Catalog.MaxNameLength, "Maximum normalized name length")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["version"] = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ Songdex ] Song catalog with lookup and play ranking!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	// Initialize path resolver for robust path handling
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
		os.Exit(1)
	}

	configPath := *configPathFlag
	if configPath == "" {
		configPath, err = pathResolver.GetConfigPath("config.toml")
		if err != nil {
			log.Fatalf("Failed to determine config path: (%v)", err)
			os.Exit(1)
		}
	}
	log.Debugf("Using config file: (%s)", configPath)

	appConfig, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Flags override the config file for this run only.
	if *capacity != defaultConfig.Catalog.RankerCapacity {
		appConfig.Catalog.RankerCapacity = *capacity
	}
	if *maxLen != defaultConfig.Catalog.MaxNameLength {
		appConfig.Catalog.MaxNameLength = *maxLen
	}
	if *libraryFile != "" {
		appConfig.Catalog.LibraryFile = *libraryFile
	}

	log.Debugf("Init catalog: capacity=[%d], maxNameLength=[%d]",
		appConfig.Catalog.RankerCapacity, appConfig.Catalog.MaxNameLength)

	cat := catalog.New(appConfig.CatalogOptions())

	resolvedLibrary := ""
	if appConfig.Catalog.LibraryFile != "" {
		resolvedLibrary = pathResolver.GetLibraryPath(appConfig.Catalog.LibraryFile)
		if utils.FileExists(resolvedLibrary) {
			if err := cat.LoadFile(resolvedLibrary); err != nil {
				log.Warnf("Could not load library: %v", err)
			} else {
				log.Debugf("Loaded %d names from %s", cat.NameCount(), resolvedLibrary)
			}
		} else {
			log.Warnf("Library file not found at %s, starting with empty catalog...", resolvedLibrary)
		}
	}

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(cat, resolvedLibrary, appConfig.CLI.Prompt)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(cat, appConfig, configPath)

	showStartupInfo(resolvedLibrary, cat)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(libraryFile string, cat *catalog.Catalog) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println("  Songdex  ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("library: ( %s )", libraryFile)
	log.Infof("names indexed: [ %d ]", cat.NameCount())
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
