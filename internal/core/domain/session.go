package domain

import "sync"

// BuildSession holds the compiled text of every module loaded during one
// build pass. It is owned by the build orchestrator and handed to each load.
//
// Entries are never invalidated; a new pass starts with a new session.
// A nil *BuildSession is valid and records nothing.
type BuildSession struct {
	mu      sync.RWMutex
	modules map[string]string
	order   []string
}

// NewBuildSession creates an empty session.
func NewBuildSession() *BuildSession {
	return &BuildSession{modules: make(map[string]string)}
}

// Record stores the compiled text of a module.
func (s *BuildSession) Record(name, text string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.modules[name]; !ok {
		s.order = append(s.order, name)
	}
	s.modules[name] = text
}

// Lookup returns the compiled text of a module, if it was recorded.
func (s *BuildSession) Lookup(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	text, ok := s.modules[name]
	return text, ok
}

// Names returns the recorded module names in recording order.
func (s *BuildSession) Names() []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Len returns the number of recorded modules.
func (s *BuildSession) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.modules)
}
