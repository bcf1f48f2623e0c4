package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/songdex/pkg/catalog"
	"github.com/bastiangx/songdex/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for catalog operations.
type Server struct {
	cat          *catalog.Catalog
	cfg          *config.Config
	configPath   string
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates a new catalog server using stdin/stdout for IPC.
func NewServer(cat *catalog.Catalog, cfg *config.Config, configPath string) *Server {
	return NewServerIO(cat, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerIO creates a server on explicit reader/writer, mainly for tests.
func NewServerIO(cat *catalog.Catalog, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	return &Server{
		cat:        cat,
		cfg:        cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(r),
		encoder:    msgpack.NewEncoder(w),
	}
}

// Start begins decoding requests until EOF on the input stream.
func (s *Server) Start() error {
	log.Debug("Starting catalog IPC server")

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)

		s.requestCount++
		if s.requestCount%100 == 0 {
			s.reloadConfig()
		}
	}
}

// reloadConfig picks up edited capacities for future resets without a
// restart. A live catalog keeps its current capacities.
func (s *Server) reloadConfig() {
	if s.configPath == "" {
		return
	}
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		log.Warnf("Config reload failed, keeping current settings: %v", err)
		return
	}
	s.cfg = cfg
	log.Debugf("Config reloaded from %s", s.configPath)
}

func (s *Server) handleRequest(request Request) {
	start := time.Now()

	switch request.Op {
	case "add", "search", "play":
		if err := s.checkName(request); err != nil {
			s.sendError(request.ID, err.Error(), 400)
			return
		}
	}

	switch request.Op {
	case "add":
		s.cat.AddName(request.Name)
		s.sendOK(request.ID, start, nil)
	case "search":
		found := s.cat.ContainsName(request.Name)
		s.send(Response{ID: request.ID, OK: true, Found: found, TimeTaken: elapsedMicros(start)})
	case "play":
		s.cat.RecordPlay(request.Name)
		s.sendOK(request.ID, start, nil)
	case "top":
		s.send(Response{ID: request.ID, OK: true, Name: s.cat.TopName(), TimeTaken: elapsedMicros(start)})
	case "save":
		s.handleStorage(request, start, s.cat.SaveFile)
	case "load":
		s.handleStorage(request, start, s.cat.LoadFile)
	case "reset":
		s.cat.Reset()
		s.sendOK(request.ID, start, nil)
	case "info":
		s.sendOK(request.ID, start, s.cat.Stats())
	case "health":
		s.sendOK(request.ID, start, nil)
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
	}
}

// checkName validates name-carrying requests before they reach the catalog.
func (s *Server) checkName(request Request) error {
	if request.Name == "" {
		return fmt.Errorf("missing 'n' parameter for op %s", request.Op)
	}
	maxInput := s.cfg.Server.MaxNameInput
	if maxInput > 0 && len(request.Name) > maxInput {
		return fmt.Errorf("name exceeds maximum length of %d bytes", maxInput)
	}
	return nil
}

// handleStorage runs a save or load against the library file. I/O failures
// here are the one fault class reported back to the client.
func (s *Server) handleStorage(request Request, start time.Time, op func(string) error) {
	path := request.Path
	if path == "" {
		path = s.cfg.Catalog.LibraryFile
	}
	if err := op(path); err != nil {
		log.Errorf("Storage op %s: %v", request.Op, err)
		s.sendError(request.ID, err.Error(), 500)
		return
	}
	s.sendOK(request.ID, start, nil)
}

func (s *Server) sendOK(id string, start time.Time, stats map[string]int) {
	s.send(Response{ID: id, OK: true, Stats: stats, TimeTaken: elapsedMicros(start)})
}

func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

func elapsedMicros(start time.Time) int64 {
	return time.Since(start).Microseconds()
}
