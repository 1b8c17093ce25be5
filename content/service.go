package content

import (
	"fmt"
	"log"
)

// Service loads and validates content once at startup
type Service struct {
	dir     string
	content *Content
}

// NewService creates a content service reading dir, or bundled files when dir is empty
func NewService(dir string) *Service {
	return &Service{dir: dir}
}

func (s *Service) Name() string           { return "content" }
func (s *Service) Dependencies() []string { return nil }

// Init loads and validates; invalid content is fatal
func (s *Service) Init() error {
	c, err := LoadDir(s.dir)
	if err != nil {
		return err
	}
	if err := Validate(c); err != nil {
		return fmt.Errorf("content: %w", err)
	}
	s.content = c
	if s.dir != "" {
		log.Printf("content: using %s", s.dir)
	}
	return nil
}

func (s *Service) Start() error { return nil }
func (s *Service) Stop() error  { return nil }

// Content returns the loaded content, nil before Init
func (s *Service) Content() *Content { return s.content }
