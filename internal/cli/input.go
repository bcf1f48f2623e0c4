// Package cli handles cmd line input against the catalog for DBG and testing various features
package cli

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/songdex/internal/logger"
	"github.com/bastiangx/songdex/internal/utils"
	"github.com/bastiangx/songdex/pkg/catalog"
	"github.com/charmbracelet/log"
)

// InputHandler processes user commands from stdin, driving a single catalog
// instance. Commands map one to one onto catalog operations plus a few
// convenience ones for inspection.
type InputHandler struct {
	cat          *catalog.Catalog
	libraryFile  string
	prompt       string
	requestCount int
	out          *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(cat *catalog.Catalog, libraryFile, prompt string) *InputHandler {
	if prompt == "" {
		prompt = "> "
	}
	return &InputHandler{
		cat:         cat,
		libraryFile: libraryFile,
		prompt:      prompt,
		out:         logger.Default(""),
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates on EOF, "quit", or a read error.
func (h *InputHandler) Start() error {
	h.out.Print("Songdex CLI")
	reader := bufio.NewReader(os.Stdin)
	h.out.Print("commands: add find play top count save load stats reset quit")

	for {
		h.out.Print(h.prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !h.handleInput(line) {
			return nil
		}
	}
}

// handleInput processes a single command line. It returns false when the
// loop should stop.
func (h *InputHandler) handleInput(line string) bool {
	h.requestCount++

	cmd, arg := splitCommand(line)
	switch cmd {
	case "quit", "exit":
		return false
	case "add":
		if !h.checkName(arg) {
			return true
		}
		h.cat.AddName(arg)
		h.out.Printf("added: %s", arg)
	case "find", "search":
		if !h.checkName(arg) {
			return true
		}
		start := time.Now()
		found := h.cat.ContainsName(arg)
		log.Debugf("Took [ %v ] for lookup '%s'", time.Since(start), arg)
		if found {
			h.out.Printf("found: %s", arg)
		} else {
			log.Warnf("Not in catalog: '%s'", arg)
		}
	case "play":
		if !h.checkName(arg) {
			return true
		}
		h.cat.RecordPlay(arg)
		h.out.Printf("plays for '%s': %s", arg, utils.FormatWithCommas(h.cat.PlayCount(arg)))
	case "top":
		top := h.cat.TopName()
		if top == "" {
			log.Warn("No plays recorded yet")
			return true
		}
		h.out.Printf("most played: %s (%s plays)", top, utils.FormatWithCommas(h.cat.PlayCount(top)))
	case "count":
		if !h.checkName(arg) {
			return true
		}
		h.out.Printf("plays for '%s': %s", arg, utils.FormatWithCommas(h.cat.PlayCount(arg)))
	case "save":
		h.storage(arg, h.cat.SaveFile, "saved")
	case "load":
		h.storage(arg, h.cat.LoadFile, "loaded")
	case "stats":
		for key, value := range h.cat.Stats() {
			h.out.Printf("%-16s %s", key, utils.FormatWithCommas(value))
		}
	case "reset":
		h.cat.Reset()
		h.out.Print("catalog reset")
	default:
		// Bare input indexes the name, mirroring the original call surface
		// where most interaction is adding songs.
		if !h.checkName(line) {
			return true
		}
		h.cat.AddName(line)
		h.out.Printf("added: %s", line)
	}
	return true
}

// storage runs a save or load with the default library file as fallback.
func (h *InputHandler) storage(arg string, op func(string) error, verb string) {
	path := arg
	if utils.IsBlank(path) {
		path = h.libraryFile
	}
	if path == "" {
		log.Error("No library file configured and no path given")
		return
	}
	if err := op(path); err != nil {
		log.Errorf("Storage error: %v", err)
		return
	}
	h.out.Printf("%s %s (%s names indexed)", verb, path, utils.FormatWithCommas(h.cat.NameCount()))
}

// checkName rejects input that cannot produce a letter path. The catalog
// would no-op on it anyway; telling the user beats silence here.
func (h *InputHandler) checkName(name string) bool {
	if utils.IsBlank(name) {
		log.Error("Missing song name")
		return false
	}
	if !utils.HasIndexableLetter(name) {
		log.Errorf("Name has no letters to index: '%s'", name)
		return false
	}
	return true
}

func splitCommand(line string) (string, string) {
	cmd, arg, ok := strings.Cut(line, " ")
	if !ok {
		return strings.ToLower(line), ""
	}
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}
