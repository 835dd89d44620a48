package league

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrSourceUnavailable marks a failure to read or parse one of the two
// source files. It is terminal for the whole operation; callers must
// treat it as "no data available", never as a partial result.
var ErrSourceUnavailable = errors.New("source unavailable")

// Source reads the draft results JSON and the rankings CSV. Every
// operation re-reads from disk; nothing is cached between calls.
type Source struct {
	draftPath    string
	rankingsPath string
	logger       *slog.Logger
}

// NewSource creates a Source over the given file paths.
func NewSource(draftPath, rankingsPath string, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Source{
		draftPath:    draftPath,
		rankingsPath: rankingsPath,
		logger:       logger,
	}
}

// DraftPath returns the path of the draft results file.
func (s *Source) DraftPath() string {
	return s.draftPath
}

// LoadDraft reads and parses the draft results file.
func (s *Source) LoadDraft() (*Draft, error) {
	data, err := os.ReadFile(s.draftPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading draft results %s: %v", ErrSourceUnavailable, s.draftPath, err)
	}

	var draft Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("%w: parsing draft results %s: %v", ErrSourceUnavailable, s.draftPath, err)
	}

	s.logger.Debug("loaded draft results",
		"path", s.draftPath,
		"teams", len(draft.Teams),
		"picks", len(draft.Picks))

	return &draft, nil
}

// SaveDraft rewrites the entire draft results file. The write goes
// through a temp file in the same directory followed by a rename, so a
// failed write cannot leave a truncated source behind. There is no
// locking: concurrent writers are last-writer-wins.
func (s *Source) SaveDraft(draft *Draft) error {
	data, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding draft results: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.draftPath)
	tmp, err := os.CreateTemp(dir, ".draft_results-*.json")
	if err != nil {
		return fmt.Errorf("writing draft results: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing draft results: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing draft results: %w", err)
	}

	if err := os.Rename(tmpName, s.draftPath); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing draft results: %w", err)
	}

	s.logger.Debug("saved draft results", "path", s.draftPath, "picks", len(draft.Picks))
	return nil
}

// Analysis loads both sources and runs the keeper analysis transform.
// This is the one shared entry point behind the web and CLI surfaces.
func (s *Source) Analysis() ([]KeeperRecord, error) {
	draft, err := s.LoadDraft()
	if err != nil {
		return nil, err
	}

	rankings, err := s.LoadRankings()
	if err != nil {
		return nil, err
	}

	return BuildAnalysis(draft, rankings), nil
}
