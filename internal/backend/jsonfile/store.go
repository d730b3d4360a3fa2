// Package jsonfile implements service.Backend as a single JSON file.
//
// The file holds an array of task objects written with 4-space indentation:
//
//	[
//	    {
//	        "title": "Write report",
//	        "due_date": "2025-06-01",
//	        "priority": "High"
//	    }
//	]
//
// A missing file is an empty store. A file that does not parse, or whose
// records lack one of the three string fields, is treated as empty and
// logged. Stored values are otherwise kept as found.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"ptask/internal/service"
)

const indent = "    "

// Store is a file-backed task list.
type Store struct {
	path   string
	logger *log.Logger
	schema *jsonschema.Schema
}

// New creates a Store for path. A nil logger uses the charmbracelet default.
func New(path string, logger *log.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("store path is empty")
	}
	if logger == nil {
		logger = log.Default()
	}
	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile tasks schema: %w", err)
	}
	return &Store{path: path, logger: logger, schema: schema}, nil
}

// Load implements service.Backend.
func (s *Store) Load() service.LoadResult {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no task store yet", "path", s.path)
			return service.LoadResult{Tasks: []service.Task{}, State: service.LoadMissing}
		}
		return s.recovered(fmt.Errorf("read task store: %w", err))
	}

	tasks, err := s.decode(data)
	if err != nil {
		return s.recovered(err)
	}

	s.logger.Debug("loaded tasks", "path", s.path, "count", len(tasks))
	return service.LoadResult{Tasks: tasks, State: service.LoadOK}
}

func (s *Store) decode(data []byte) ([]service.Task, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse task store: %w", err)
	}
	if err := s.schema.Validate(doc); err != nil {
		return nil, schemaError(err)
	}

	tasks := []service.Task{}
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decode task store: %w", err)
	}
	return tasks, nil
}

func (s *Store) recovered(err error) service.LoadResult {
	s.logger.Warn("cannot read task store, starting with an empty list", "path", s.path, "err", err)
	return service.LoadResult{Tasks: []service.Task{}, State: service.LoadRecovered, Err: err}
}

// Save implements service.Backend. The file is overwritten in place; a
// failure part way through can leave it truncated.
func (s *Store) Save(tasks []service.Task) error {
	if err := s.save(tasks); err != nil {
		s.logger.Error("failed to write task store", "path", s.path, "err", err)
		return err
	}
	s.logger.Debug("saved tasks", "path", s.path, "count", len(tasks))
	return nil
}

func (s *Store) save(tasks []service.Task) error {
	if tasks == nil {
		tasks = []service.Task{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write task store: %w", err)
	}
	return nil
}
