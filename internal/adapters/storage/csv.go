// Package storage persists task records as per-day CSV files under a
// year/month/day directory tree. The same tree is read back by the report
// generator, so the record format is the contract between the two.
package storage

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/averost/focustick/internal/domain"
)

// recordHeader is the header row of every day file.
var recordHeader = []string{"date", "title", "description", "duration_minutes", "language_tag", "status"}

// Record is one persisted row: a task's state at time of save.
type Record struct {
	Date            time.Time
	Title           string
	Description     string
	DurationMinutes int
	Language        domain.Language
	Status          domain.TaskStatus
}

// Store writes and reads the record tree rooted at a data directory.
type Store struct {
	root string
}

// New creates a store rooted at the given data directory.
func New(root string) *Store {
	return &Store{root: root}
}

// DayPath returns the record file path for a date:
// {root}/{year}/{MonthName}/{day}/{YYYY-MM-DD}_tasks.csv.
func (s *Store) DayPath(date time.Time) string {
	return filepath.Join(
		s.root,
		strconv.Itoa(date.Year()),
		date.Month().String(),
		strconv.Itoa(date.Day()),
		fmt.Sprintf("%s_tasks.csv", date.Format("2006-01-02")),
	)
}

// WriteDay serializes the full task list for the date, replacing any prior
// file. The write goes through a temp file and rename so a crash mid-write
// never leaves a truncated record file behind.
func (s *Store) WriteDay(date time.Time, tasks []*domain.Task) error {
	path := s.DayPath(date)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create record directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tasks-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create record file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(recordHeader); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write record header: %w", err)
	}
	day := date.Format("2006-01-02")
	for _, t := range tasks {
		row := []string{
			day,
			t.Title,
			t.Description,
			strconv.Itoa(t.DurationMinutes),
			string(t.Language),
			domain.StatusLabel(t.Status),
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close record file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

// YearExists reports whether any records were ever written for the year.
func (s *Store) YearExists(year int) bool {
	info, err := os.Stat(filepath.Join(s.root, strconv.Itoa(year)))
	return err == nil && info.IsDir()
}

// YearDir returns the directory holding a year's records.
func (s *Store) YearDir(year int) string {
	return filepath.Join(s.root, strconv.Itoa(year))
}

// ReadYear walks the year's tree and parses every record file. Unreadable
// or malformed files are skipped so one bad day never poisons the
// aggregate; malformed rows within a file are skipped the same way.
func (s *Store) ReadYear(year int) ([]Record, error) {
	yearDir := s.YearDir(year)
	if _, err := os.Stat(yearDir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read year directory: %w", err)
	}

	var records []Record
	err := filepath.WalkDir(yearDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(d.Name(), "_tasks.csv") {
			return nil
		}
		fileRecords, err := readRecordFile(path)
		if err != nil {
			return nil
		}
		records = append(records, fileRecords...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk year directory: %w", err)
	}
	return records, nil
}

func readRecordFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	var records []Record
	for _, row := range rows[1:] {
		if len(row) < len(recordHeader) {
			continue
		}
		date, err := time.Parse("2006-01-02", row[0])
		if err != nil {
			continue
		}
		minutes, err := strconv.Atoi(row[3])
		if err != nil || minutes <= 0 {
			continue
		}
		records = append(records, Record{
			Date:            date,
			Title:           row[1],
			Description:     row[2],
			DurationMinutes: minutes,
			Language:        domain.Language(row[4]),
			Status:          domain.ParseStatus(row[5]),
		})
	}
	return records, nil
}
