package puzzle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mcoot/drophunt/internal/model"
	"github.com/mcoot/drophunt/internal/storage"
)

// Logical keys written through the KV store. Nothing else is persisted by a
// session.
const (
	StatsKey    = "drophunt_daily_stats"
	SnapshotKey = "drophunt_game_state"
)

// StatsStore reads and writes the daily stats record and the session
// snapshot as JSON
type StatsStore struct {
	kv storage.KV
}

// NewStatsStore creates a StatsStore over kv
func NewStatsStore(kv storage.KV) *StatsStore {
	return &StatsStore{kv: kv}
}

// LoadStats returns the stored daily stats, or nil if none are stored.
// An undecodable record returns an error wrapping model.ErrCorruptRecord.
func (s *StatsStore) LoadStats(ctx context.Context) (*model.DailyStats, error) {
	var stats model.DailyStats
	found, err := s.load(ctx, StatsKey, &stats)
	if err != nil || !found {
		return nil, err
	}
	return &stats, nil
}

// SaveStats replaces the stored daily stats
func (s *StatsStore) SaveStats(ctx context.Context, stats *model.DailyStats) error {
	return s.save(ctx, StatsKey, stats)
}

// LoadSnapshot returns the stored session snapshot, or nil if none is stored
func (s *StatsStore) LoadSnapshot(ctx context.Context) (*model.SessionSnapshot, error) {
	var snap model.SessionSnapshot
	found, err := s.load(ctx, SnapshotKey, &snap)
	if err != nil || !found {
		return nil, err
	}
	return &snap, nil
}

// SaveSnapshot replaces the stored session snapshot
func (s *StatsStore) SaveSnapshot(ctx context.Context, snap *model.SessionSnapshot) error {
	return s.save(ctx, SnapshotKey, snap)
}

// Clear removes both records. Both removals are attempted even if the first
// fails.
func (s *StatsStore) Clear(ctx context.Context) error {
	return errors.Join(
		s.kv.Remove(ctx, StatsKey),
		s.kv.Remove(ctx, SnapshotKey),
	)
}

func (s *StatsStore) load(ctx context.Context, key string, v any) (bool, error) {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, model.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", model.ErrCorruptRecord, key, err)
	}
	return true, nil
}

func (s *StatsStore) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// NextStreak returns the streak for a win recorded today, given the stored
// record and yesterday's seed. A win yesterday extends its streak; anything
// else starts a new one.
func NextStreak(previous *model.DailyStats, yesterday string) int {
	if previous != nil && previous.Date == yesterday && previous.Won {
		return previous.Streak + 1
	}
	return 1
}
