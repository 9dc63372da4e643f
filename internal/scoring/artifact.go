package scoring

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WeightArtifact is a trained linear-weight set persisted as JSON under
// the models directory, one file per model. Absence of a file is not an
// error; it selects the heuristic strategy at construction.
type WeightArtifact struct {
	Model       string             `json:"model"`
	Version     string             `json:"version"`
	Weights     map[string]float64 `json:"weights"`
	Bias        float64            `json:"bias"`
	SampleCount int64              `json:"sample_count"`
	TrainedAt   time.Time          `json:"trained_at"`
}

func artifactPath(dir, model string) string {
	return filepath.Join(dir, model+".json")
}

// LoadArtifact reads <dir>/<model>.json. A missing or malformed file
// returns (nil, nil): the caller falls back to heuristics.
func LoadArtifact(dir, model string) (*WeightArtifact, error) {
	if dir == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(artifactPath(dir, model))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, nil
	}
	var artifact WeightArtifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, nil
	}
	if artifact.Model == "" || len(artifact.Weights) == 0 {
		return nil, nil
	}
	return &artifact, nil
}

// Save overwrites the previous artifact unconditionally. There is no
// versioning or rollback; weight history is recorded separately.
func (a *WeightArtifact) Save(dir string) error {
	if dir == "" {
		return fmt.Errorf("models dir not configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create models dir: %w", err)
	}
	raw, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	if err := os.WriteFile(artifactPath(dir, a.Model), raw, 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// Encode renders the artifact as the same JSON document Save writes,
// used for the append-only weight history.
func (a *WeightArtifact) Encode() ([]byte, error) {
	return json.Marshal(a)
}

// Apply evaluates the linear model over a named feature vector.
// Features absent from the weight map contribute nothing, which keeps
// artifact and extractor versions loosely coupled.
func (a *WeightArtifact) Apply(features map[string]float64) float64 {
	out := a.Bias
	for name, w := range a.Weights {
		out += w * features[name]
	}
	return out
}
