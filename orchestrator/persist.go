package orchestrator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	cfg "github.com/facelab/ferstab/config"
)

// SessionManifest summarizes one run; written as session.yaml next to the
// frame trace.
type SessionManifest struct {
	SessionID   string         `yaml:"session_id"`
	GeneratedAt time.Time      `yaml:"generated_at"`
	Classes     []string       `yaml:"classes"`
	Frames      int            `yaml:"frames"`
	Stabilizer  cfg.Stabilizer `yaml:"stabilizer"`
	Detector    cfg.Detector   `yaml:"detector"`
}

func mkSessionDir(outputsRoot, sid string) (string, error) {
	dir := filepath.Join(outputsRoot, "session_"+sid)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	defer enc.Close()
	return enc.Encode(v)
}

func persist(outputsRoot string, manifest SessionManifest, records []FrameRecord) (string, error) {
	sid := uuid.NewString()
	dir, err := mkSessionDir(outputsRoot, sid)
	if err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(dir, "frames.json"), records); err != nil {
		return "", err
	}

	manifest.SessionID = sid
	manifest.GeneratedAt = time.Now()
	if err := writeYAML(filepath.Join(dir, "session.yaml"), manifest); err != nil {
		return "", err
	}
	return dir, nil
}
