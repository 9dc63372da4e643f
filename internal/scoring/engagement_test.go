package scoring

import (
	"sync"
	"testing"
	"time"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

func TestPredictWithoutCreator(t *testing.T) {
	t.Parallel()
	p := NewEngagementPredictor("")
	got := p.Predict(domain.ContentFeatureSet{
		Platform:     domain.PlatformTikTok,
		ContentType:  domain.ContentTypeVideo,
		HookStrength: 0.5,
	}, nil, domain.TrendFeatureSet{})

	found := false
	for _, d := range got.Degraded {
		if d == "no_creator_context" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected no_creator_context marker, got %v", got.Degraded)
	}
	if got.PredictedViews <= 0 {
		t.Fatalf("default audience should still project views, got %d", got.PredictedViews)
	}
	if got.ViewsLow >= got.PredictedViews || got.ViewsHigh <= got.PredictedViews {
		t.Fatalf("range must bracket the point estimate: [%d, %d] around %d",
			got.ViewsLow, got.ViewsHigh, got.PredictedViews)
	}
	if got.Basis != domain.BasisHeuristic {
		t.Fatalf("expected heuristic basis, got %q", got.Basis)
	}
	// Base 0.6 minus one degraded signal.
	if got.Confidence != 0.5 {
		t.Fatalf("confidence = %v, want 0.5", got.Confidence)
	}
}

func TestPredictBlendsCreatorHistory(t *testing.T) {
	t.Parallel()
	p := NewEngagementPredictor("")
	content := domain.ContentFeatureSet{Platform: domain.PlatformTikTok, ContentType: domain.ContentTypeVideo}
	creator := &domain.CreatorFeatureSet{
		Platform:          domain.PlatformTikTok,
		FollowerCount:     10_000,
		AvgViews:          500_000,
		AvgEngagementRate: 0.06,
		HistoricalPosts:   20,
		ConsistencyScore:  0.9,
	}
	withHistory := p.Predict(content, creator, domain.TrendFeatureSet{})
	without := p.Predict(content, nil, domain.TrendFeatureSet{})
	if withHistory.PredictedViews <= without.PredictedViews {
		t.Fatalf("a 500k-avg creator should outproject the default audience: %d vs %d",
			withHistory.PredictedViews, without.PredictedViews)
	}
	if withHistory.Confidence <= without.Confidence {
		t.Fatalf("history and consistency should raise confidence: %v vs %v",
			withHistory.Confidence, without.Confidence)
	}
	if withHistory.PredictedLikes <= withHistory.PredictedComments {
		t.Fatalf("likes should dominate the interaction split: %d likes, %d comments",
			withHistory.PredictedLikes, withHistory.PredictedComments)
	}
}

func TestContentMultiplierBounds(t *testing.T) {
	t.Parallel()
	min := contentMultiplier(domain.ContentFeatureSet{}, domain.TrendFeatureSet{})
	if min < 0.2 {
		t.Fatalf("multiplier floor is 0.2, got %v", min)
	}
	max := contentMultiplier(domain.ContentFeatureSet{
		HookStrength:  1,
		VisualQuality: 1,
		TrendingRatio: 1,
		HasCTA:        true,
	}, domain.TrendFeatureSet{OverallScore: 1, PlatformBoost: 0.15})
	if max > 3.0 {
		t.Fatalf("multiplier cap is 3.0, got %v", max)
	}
}

func TestTrainPersistsArtifact(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	samples := []TrainingSample{
		{Features: map[string]float64{"predicted_views": 10_000, "engagement_rate": 0.05}, Target: 12_000},
		{Features: map[string]float64{"predicted_views": 20_000, "engagement_rate": 0.04}, Target: 18_000},
		{Features: map[string]float64{"predicted_views": 30_000, "engagement_rate": 0.06}, Target: 35_000},
	}

	p := NewEngagementPredictor(dir)
	if p.Basis() != domain.BasisHeuristic {
		t.Fatalf("empty dir should start heuristic, got %q", p.Basis())
	}
	artifact, err := p.Train(dir, samples, now)
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if artifact.SampleCount != 3 {
		t.Fatalf("sample count = %d, want 3", artifact.SampleCount)
	}
	if p.Basis() != domain.BasisModel {
		t.Fatalf("training should switch the predictor to model basis, got %q", p.Basis())
	}

	loaded, err := LoadArtifact(dir, "engagement")
	if err != nil {
		t.Fatalf("load artifact: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected persisted artifact")
	}
	if loaded.Version != artifact.Version || len(loaded.Weights) != len(artifact.Weights) {
		t.Fatalf("persisted artifact differs: %+v vs %+v", loaded, artifact)
	}

	// A fresh predictor picks the artifact up at construction.
	if fresh := NewEngagementPredictor(dir); fresh.Basis() != domain.BasisModel {
		t.Fatalf("fresh predictor should load the artifact, got %q", fresh.Basis())
	}
}

func TestTrainPublishesToLivePredictor(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	samples := []TrainingSample{
		{Features: map[string]float64{"predicted_views": 10_000, "engagement_rate": 0.05}, Target: 12_000},
		{Features: map[string]float64{"predicted_views": 20_000, "engagement_rate": 0.04}, Target: 18_000},
	}
	content := domain.ContentFeatureSet{Platform: domain.PlatformTikTok, ContentType: domain.ContentTypeVideo}

	// Predict stays live while Train publishes refit artifacts; the race
	// detector verifies the handoff.
	p := NewEngagementPredictor(dir)
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				p.Predict(content, nil, domain.TrendFeatureSet{})
			}
		}
	}()
	for i := 0; i < 20; i++ {
		if _, err := p.Train(dir, samples, now.Add(time.Duration(i)*time.Second)); err != nil {
			close(stop)
			wg.Wait()
			t.Fatalf("train %d: %v", i, err)
		}
	}
	close(stop)
	wg.Wait()

	if p.Basis() != domain.BasisModel {
		t.Fatalf("trained predictor should report model basis, got %q", p.Basis())
	}
	if got := p.Predict(content, nil, domain.TrendFeatureSet{}); got.Basis != domain.BasisModel {
		t.Fatalf("predictions after training should carry model basis, got %q", got.Basis)
	}
}

func TestTrainRejectsEmpty(t *testing.T) {
	t.Parallel()
	p := NewEngagementPredictor("")
	if _, err := p.Train(t.TempDir(), nil, time.Now()); err == nil {
		t.Fatal("expected error for empty sample set")
	}
}

func TestLoadArtifactMissingIsNil(t *testing.T) {
	t.Parallel()
	artifact, err := LoadArtifact(t.TempDir(), "engagement")
	if err != nil || artifact != nil {
		t.Fatalf("missing artifact should be (nil, nil), got %v, %v", artifact, err)
	}
}
