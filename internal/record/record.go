// Package record reads and writes bowling games as TOML documents.
//
// A record file holds either one game at the top level or a session of games
// in numbered tables:
//
//	[game_1]
//	game = "01jab3..."
//	player = "alice"
//	rolls = [10, 7, 3, 9, 0, ...]
//	score = 167
package record

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lox/tenpin/bowling"
)

// ErrScoreMismatch is returned by Replay when the recorded score disagrees
// with the score computed from the rolls.
var ErrScoreMismatch = errors.New("recorded score does not match rolls")

// ErrCompleteMismatch is returned by Replay when the record's "complete"
// metadata disagrees with the rolls.
var ErrCompleteMismatch = errors.New("recorded completion does not match rolls")

// ErrEmptyRecord is returned when a document holds no game.
var ErrEmptyRecord = errors.New("no game record found")

// MetaComplete is the metadata key FromGame sets to whether the game was
// finished when recorded.
const MetaComplete = "complete"

const sectionPrefix = "game_"

// FromGame captures the current state of g.
func FromGame(g *bowling.Game, id, player string, now time.Time) *GameRecord {
	rec := &GameRecord{
		GameID:    id,
		Player:    player,
		Rolls:     g.Rolls(),
		Score:     g.Score(),
		Time:      now.UTC().Format(time.RFC3339),
		Timestamp: now.UTC(),
	}
	rec.Metadata = map[string]any{MetaComplete: g.IsComplete()}
	return rec
}

// Replay rolls the recorded pins into a new game and checks the recorded
// score and completion metadata. On ErrScoreMismatch or ErrCompleteMismatch
// the rebuilt game is still returned.
func (r *GameRecord) Replay() (*bowling.Game, error) {
	g, err := bowling.NewGameWithRolls(r.Rolls...)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", r.GameID, err)
	}
	if got := g.Score(); got != r.Score {
		return g, fmt.Errorf("game %s: %w: recorded %d, computed %d", r.GameID, ErrScoreMismatch, r.Score, got)
	}
	if complete, ok := r.Metadata[MetaComplete].(bool); ok && complete != g.IsComplete() {
		return g, fmt.Errorf("game %s: %w: recorded %t", r.GameID, ErrCompleteMismatch, complete)
	}
	return g, nil
}

// Encode writes the record to w.
func Encode(w io.Writer, rec *GameRecord) error {
	if rec == nil {
		return fmt.Errorf("record: game record is nil")
	}
	return toml.NewEncoder(w).Encode(rec)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(rec *GameRecord) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, rec); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// EncodeSession writes records as numbered game_N tables.
func EncodeSession(w io.Writer, recs []GameRecord) error {
	sections := make(map[string]GameRecord, len(recs))
	for i, rec := range recs {
		sections[sectionPrefix+strconv.Itoa(i+1)] = rec
	}
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	return enc.Encode(sections)
}

// Decode reads a single top-level record.
func Decode(r io.Reader) (*GameRecord, error) {
	var rec GameRecord
	md, err := toml.NewDecoder(r).Decode(&rec)
	if err != nil {
		return nil, fmt.Errorf("decode game record: %w", err)
	}
	if len(md.Keys()) == 0 {
		return nil, ErrEmptyRecord
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode game record: unknown key %q", undecoded[0].String())
	}
	if err := normalize(&rec, 1); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DecodeSession reads a file of game_N tables, or a single top-level record
// when no game_N table is present, returning games in numeric section order.
func DecodeSession(r io.Reader) ([]GameRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("decode game records: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyRecord
	}
	if !hasSections(raw) {
		rec, err := Decode(strings.NewReader(string(data)))
		if err != nil {
			return nil, err
		}
		return []GameRecord{*rec}, nil
	}

	sections := make(map[string]GameRecord)
	if _, err := toml.Decode(string(data), &sections); err != nil {
		return nil, fmt.Errorf("decode game session: %w", err)
	}

	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return compareSectionKeys(keys[i], keys[j])
	})

	recs := make([]GameRecord, 0, len(keys))
	for _, key := range keys {
		rec := sections[key]
		if rec.GameID == "" {
			rec.GameID = key
		}
		if err := normalize(&rec, len(recs)+1); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func hasSections(raw map[string]any) bool {
	for key := range raw {
		if strings.HasPrefix(key, sectionPrefix) {
			return true
		}
	}
	return false
}

func compareSectionKeys(a, b string) bool {
	ai, errA := strconv.Atoi(strings.TrimPrefix(a, sectionPrefix))
	bi, errB := strconv.Atoi(strings.TrimPrefix(b, sectionPrefix))
	if errA == nil && errB == nil {
		return ai < bi
	}
	return a < b
}

func normalize(rec *GameRecord, index int) error {
	if rec.GameID == "" {
		rec.GameID = fmt.Sprintf("game-%d", index)
	}
	if rec.Time != "" {
		ts, err := time.Parse(time.RFC3339, rec.Time)
		if err != nil {
			return fmt.Errorf("invalid time %q: %w", rec.Time, err)
		}
		rec.Timestamp = ts
	}
	return nil
}
