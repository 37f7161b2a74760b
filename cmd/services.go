package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/ieltsprep/internal/config"
	"github.com/abhisek/ieltsprep/internal/llm"
	"github.com/abhisek/ieltsprep/internal/speaking"
	"github.com/abhisek/ieltsprep/internal/store"
	"github.com/abhisek/ieltsprep/internal/writing"
)

// services bundles everything the TUI, the server and one-shot commands
// share: config, store, provider and the section services.
type services struct {
	cfg      config.Config
	dbPath   string
	store    *store.Store
	provider llm.Provider
	writing  *writing.Service
	speaking *speaking.Service
}

// openServices loads the configuration, refuses to continue without a
// provider credential, opens the store and builds the services.
func openServices(cmd *cobra.Command) (*services, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("LLM provider not configured: %w\nSet GEMINI_API_KEY (or another provider key) and try again", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, st.EventRepo())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}

	return &services{
		cfg:      cfg,
		dbPath:   dbPath,
		store:    st,
		provider: provider,
		writing:  writing.NewService(provider, cfg.Writing, st.AttemptRepo()),
		speaking: speaking.NewService(provider, cfg.Speaking),
	}, nil
}

func (s *services) Close() error {
	return s.store.Close()
}

// status is the header text: provider and the model grading essays.
func (s *services) status() string {
	model := s.cfg.Writing.Model
	if model == "" {
		model = s.provider.ModelID()
	}
	return s.cfg.LLM.Provider + " · " + model
}

// logPath is where the TUI writes its log in debug mode.
func (s *services) logPath() string {
	if !s.cfg.Debug {
		return ""
	}
	return filepath.Join(filepath.Dir(s.dbPath), "debug.log")
}
