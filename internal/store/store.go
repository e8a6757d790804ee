package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// DefaultAdmins is used when the document carries no admins list.
var DefaultAdmins = []string{"AdminUser"}

// Store owns the JSON document and the audit log. Domain services mutate
// Data through it and must call Save before returning control.
type Store struct {
	dataPath  string
	auditPath string
	logger    *zap.Logger

	Data *Document
}

func New(dataPath, auditPath string, logger ...*zap.Logger) *Store {
	l := zap.L().Named("store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("store")
	}
	return &Store{
		dataPath:  dataPath,
		auditPath: auditPath,
		logger:    l,
	}
}

// Load reads the document from disk. A document without a holidays key is
// repaired in place and persisted immediately.
func (s *Store) Load() error {
	raw, err := os.ReadFile(s.dataPath)
	if err != nil {
		s.logger.Error("load document failed", zap.String("path", s.dataPath), zap.Error(err))
		return fmt.Errorf("load %s: %w", s.dataPath, err)
	}

	doc := &Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		s.logger.Error("decode document failed", zap.String("path", s.dataPath), zap.Error(err))
		return fmt.Errorf("decode %s: %w", s.dataPath, err)
	}
	if doc.Employees == nil {
		doc.Employees = map[string]*Employee{}
	}
	s.Data = doc

	if doc.Holidays == nil {
		doc.Holidays = []string{}
		if err := s.Save(); err != nil {
			return err
		}
	}

	s.logger.Debug("document loaded",
		zap.Int("employees", len(doc.Employees)),
		zap.Int("holidays", len(doc.Holidays)),
	)
	return nil
}

// Seed writes an empty document if none exists yet, so a fresh install
// starts without manual file preparation.
func (s *Store) Seed() error {
	if _, err := os.Stat(s.dataPath); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	s.Data = newDocument()
	s.logger.Info("seeding empty document", zap.String("path", s.dataPath))
	return s.Save()
}

// Save writes the whole document back, pretty-printed.
func (s *Store) Save() error {
	raw, err := json.MarshalIndent(s.Data, "", "    ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(s.dataPath, raw, 0o644); err != nil {
		s.logger.Error("save document failed", zap.String("path", s.dataPath), zap.Error(err))
		return fmt.Errorf("save %s: %w", s.dataPath, err)
	}
	return nil
}

// Employee returns the record for name, or nil when unknown.
func (s *Store) Employee(name string) *Employee {
	return s.Data.Employees[name]
}

// Admins returns the names allowed into administrative mode.
func (s *Store) Admins() []string {
	if len(s.Data.Admins) == 0 {
		return DefaultAdmins
	}
	return s.Data.Admins
}

func (s *Store) IsAdmin(name string) bool {
	for _, a := range s.Admins() {
		if a == name {
			return true
		}
	}
	return false
}
