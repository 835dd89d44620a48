package league

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Rankings CSV header names as exported by the provider. They are
// renamed on ingest: PLAYER NAME -> player_name, RK -> draft rank,
// POS -> position rank.
const (
	colPlayerName = "PLAYER NAME"
	colRank       = "RK"
	colPosition   = "POS"
)

// LoadRankings reads and parses the rankings CSV. Player names are
// trimmed of surrounding whitespace so join matching is exact.
func (s *Source) LoadRankings() ([]Ranking, error) {
	f, err := os.Open(s.rankingsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading rankings %s: %v", ErrSourceUnavailable, s.rankingsPath, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // provider exports trailing columns inconsistently

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: parsing rankings %s: %v", ErrSourceUnavailable, s.rankingsPath, err)
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colPlayerName, colRank, colPosition} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("%w: rankings %s: missing column %q", ErrSourceUnavailable, s.rankingsPath, required)
		}
	}

	var rankings []Ranking
	line := 1
	for {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: parsing rankings %s: %v", ErrSourceUnavailable, s.rankingsPath, err)
		}
		line++

		name := strings.TrimSpace(field(record, idx[colPlayerName]))
		if name == "" {
			continue
		}

		rank, err := strconv.Atoi(strings.TrimSpace(field(record, idx[colRank])))
		if err != nil {
			return nil, fmt.Errorf("%w: rankings %s line %d: bad rank %q", ErrSourceUnavailable, s.rankingsPath, line, field(record, idx[colRank]))
		}

		rankings = append(rankings, Ranking{
			PlayerName:   name,
			Rank:         rank,
			PositionRank: strings.TrimSpace(field(record, idx[colPosition])),
		})
	}

	s.logger.Debug("loaded rankings", "path", s.rankingsPath, "rows", len(rankings))
	return rankings, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}
