package repository

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/askdrjosh/postpilot/domains/template"
	"github.com/askdrjosh/postpilot/pkg/utils"
)

// TemplateFileRepository stores templates as JSON lines in a single file.
// Appends never rewrite existing entries, so the history of a name is kept
// and the latest entry wins on lookup.
type TemplateFileRepository struct {
	path string
	mu   sync.Mutex
}

func NewTemplateFileRepository(path string) *TemplateFileRepository {
	return &TemplateFileRepository{path: path}
}

func (r *TemplateFileRepository) Load(ctx context.Context) ([]template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return []template.Template{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open template store: %w", err)
	}
	defer f.Close()

	var templates []template.Template
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64<<10), 1<<20)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var t template.Template
		if err := json.Unmarshal(raw, &t); err != nil {
			logrus.Warnf("[TEMPLATES] skipping corrupt entry at line %d: %v", line, err)
			continue
		}
		templates = append(templates, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read template store: %w", err)
	}
	return templates, nil
}

func (r *TemplateFileRepository) Append(ctx context.Context, t template.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := utils.CreateFolder(filepath.Dir(r.path)); err != nil {
		return err
	}

	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode template: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open template store: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("append template: %w", err)
	}
	return nil
}
