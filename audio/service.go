package audio

import "log"

// Service owns the cue player; audio failure never stops the program
type Service struct {
	enabled bool
	player  *Player
}

// NewService creates an audio service; disabled services keep a silent player
func NewService(enabled bool, volume float64) *Service {
	return &Service{enabled: enabled, player: NewPlayer(volume)}
}

func (s *Service) Name() string           { return "audio" }
func (s *Service) Dependencies() []string { return nil }

// Init opens the speaker when enabled; failure is logged and playback stays silent
func (s *Service) Init() error {
	if !s.enabled {
		log.Printf("audio: disabled")
		return nil
	}
	if err := s.player.Initialize(); err != nil {
		log.Printf("audio: init failed, continuing without sound: %v", err)
	}
	return nil
}

func (s *Service) Start() error { return nil }

func (s *Service) Stop() error {
	s.player.Close()
	return nil
}

// Player returns the cue player; always non-nil
func (s *Service) Player() *Player { return s.player }
