// Package storage records headless runs to disk for later plotting and
// export: metadata.json plus a frames.csv of per-body angles, velocities
// and bob positions. This is diagnostic output; the engine itself never
// persists state.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/letterdrop/internal/runner"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Bodies    int                `json:"bodies"`
	Seed      int64              `json:"seed"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one recorded run and returns its id.
func (s *Store) Save(preset string, dt, duration float64, seed int64, result *runner.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", preset, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	bodies := 0
	if len(result.Frames) > 0 {
		bodies = len(result.Frames[0].Bodies)
	}
	meta := RunMetadata{
		ID:        runID,
		Preset:    preset,
		Timestamp: time.Now(),
		Dt:        dt,
		Duration:  duration,
		Bodies:    bodies,
		Seed:      seed,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"t", "phase"}
	for i := 0; i < bodies; i++ {
		idx := strconv.Itoa(i)
		header = append(header, "angle"+idx, "omega"+idx, "bob_x"+idx, "bob_y"+idx)
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, f := range result.Frames {
		row := make([]string, 0, len(header))
		row = append(row, strconv.FormatFloat(f.Time, 'f', 5, 64), f.Phase.String())
		for _, b := range f.Bodies {
			row = append(row,
				strconv.FormatFloat(b.Angle, 'f', 6, 64),
				strconv.FormatFloat(b.Omega, 'f', 6, 64),
				strconv.FormatFloat(b.BobX, 'f', 3, 64),
				strconv.FormatFloat(b.BobY, 'f', 3, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	return runID, nil
}

// List returns metadata for every saved run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.LoadMetadata(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

// LoadMetadata reads one run's metadata.json.
func (s *Store) LoadMetadata(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata for %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadAngles reads the angle columns of a recorded run, one series per
// body, for plotting.
func (s *Store) LoadAngles(runID string) ([][]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("run %s has no frames", runID)
	}
	bodies := (len(rows[0]) - 2) / 4
	series := make([][]float64, bodies)
	for _, row := range rows[1:] {
		for i := 0; i < bodies; i++ {
			v, err := strconv.ParseFloat(row[2+i*4], 64)
			if err != nil {
				return nil, err
			}
			series[i] = append(series[i], v)
		}
	}
	return series, nil
}
