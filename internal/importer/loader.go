// Package importer reads question bank files for the import command.
package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"mcq-quiz/internal/config"
	"mcq-quiz/internal/domain"
)

// Job is one file to import for a subject and level.
type Job struct {
	Subject string
	Level   string
	Path    string
}

// Jobs returns a single job when subject, level and file are all given,
// otherwise the configured manifest resolved against the data directory.
func Jobs(cfg config.ImporterConfig, subject, level, file string) ([]Job, error) {
	if subject != "" || level != "" || file != "" {
		if subject == "" || level == "" || file == "" {
			return nil, errors.New("subject, level and file must be given together")
		}
		return []Job{{Subject: subject, Level: level, Path: resolve(cfg.DataDir, file)}}, nil
	}

	if len(cfg.Files) == 0 {
		return nil, errors.New("no import files configured")
	}
	jobs := make([]Job, 0, len(cfg.Files))
	for i, f := range cfg.Files {
		if strings.TrimSpace(f.Subject) == "" || strings.TrimSpace(f.Level) == "" || strings.TrimSpace(f.File) == "" {
			return nil, fmt.Errorf("importer.files[%d]: subject, level and file are required", i)
		}
		jobs = append(jobs, Job{Subject: f.Subject, Level: f.Level, Path: resolve(cfg.DataDir, f.File)})
	}
	return jobs, nil
}

func resolve(dataDir, file string) string {
	if filepath.IsAbs(file) || dataDir == "" {
		return file
	}
	return filepath.Join(dataDir, file)
}

// LoadRecords decodes a JSON array of question records. A missing file is
// created holding an empty array so it can be filled in later.
func LoadRecords(path string) ([]domain.QuestionRecord, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
			return nil, fmt.Errorf("create empty question file: %w", err)
		}
		return []domain.QuestionRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []domain.QuestionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}
