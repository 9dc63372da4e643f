package features

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

var (
	hashtagPattern = regexp.MustCompile(`#\w+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	wordPattern    = regexp.MustCompile(`[\p{L}\p{N}']+`)
)

// ctaPhrases maps CTA type to its phrase list. Classification picks the
// first matching category in priority order.
var ctaPriority = []string{"follow", "like", "comment", "share", "save", "link", "subscribe"}

var ctaPhrases = map[string][]string{
	"follow":    {"follow me", "follow us", "follow for more", "hit follow", "follow along"},
	"like":      {"like this", "double tap", "drop a like", "smash that like", "hit like"},
	"comment":   {"comment below", "let me know", "tell me", "drop a comment", "what do you think"},
	"share":     {"share this", "tag a friend", "send this to", "share with", "repost"},
	"save":      {"save this", "bookmark", "save for later", "keep this handy"},
	"link":      {"link in bio", "click the link", "check the link", "tap the link"},
	"subscribe": {"subscribe", "turn on notifications", "hit the bell", "join the channel"},
}

// hookPhrases stop-the-scroll openers; strength = min(matches/3, 1).
var hookPhrases = []string{
	"wait for it",
	"plot twist",
	"you won't believe",
	"watch till the end",
	"pov:",
	"story time",
	"this changed everything",
	"nobody talks about",
	"the secret to",
	"before you scroll",
	"stop scrolling",
	"here's why",
}

var positiveWords = map[string]bool{
	"love": true, "amazing": true, "awesome": true, "best": true, "great": true,
	"beautiful": true, "perfect": true, "incredible": true, "happy": true,
	"excited": true, "fun": true, "win": true, "easy": true, "free": true,
	"wow": true, "favorite": true, "stunning": true, "obsessed": true,
}

var negativeWords = map[string]bool{
	"hate": true, "worst": true, "bad": true, "terrible": true, "awful": true,
	"ugly": true, "fail": true, "boring": true, "sad": true, "angry": true,
	"never": true, "problem": true, "hard": true, "wrong": true, "scam": true,
}

// ContentInput is everything the extractor may look at for one item.
// MediaUnavailable is set by the caller when a remote media fetch
// failed, so the extractor can record the degradation even though no
// bytes ever arrived.
type ContentInput struct {
	ContentBytes     []byte
	Caption          string
	Hashtags         []string
	ContentType      string
	Platform         string
	DurationSeconds  float64
	MediaUnavailable bool
}

// ContentExtractor derives content features. Pure: identical inputs and
// trending set always produce an identical feature set.
type ContentExtractor struct{}

func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// Extract builds the full content feature set. trendingHashtags is the
// normalized trending-hashtag set injected by the caller.
func (e *ContentExtractor) Extract(in ContentInput, trendingHashtags map[string]bool) domain.ContentFeatureSet {
	fs := domain.ContentFeatureSet{
		Platform:    domain.NormalizePlatform(in.Platform),
		ContentType: domain.NormalizeContentType(in.ContentType),
	}
	fs.DurationSeconds = in.DurationSeconds
	if fs.DurationSeconds < 0 {
		fs.DurationSeconds = 0
	}

	if in.MediaUnavailable && len(in.ContentBytes) == 0 {
		fs.MediaUnavailable = true
		fs.Degraded = append(fs.Degraded, "media_fetch")
	}
	e.extractVisual(&fs, in.ContentBytes)
	e.extractText(&fs, in.Caption)
	e.extractHashtags(&fs, in.Caption, in.Hashtags, trendingHashtags)
	e.extractHooks(&fs, in.Caption)
	fs.Sentiment = sentimentScore(in.Caption)
	return fs
}

func (e *ContentExtractor) extractVisual(fs *domain.ContentFeatureSet, raw []byte) {
	if len(raw) == 0 {
		return
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		// Undecodable media degrades to fixed defaults, never an error.
		fs.HasVisual = true
		fs.VisualQuality = 0.7
		fs.ResolutionScore = 0.7
		fs.AspectScore = 0.7
		fs.BrightnessScore = 0.7
		fs.ContrastScore = 0.7
		fs.Degraded = append(fs.Degraded, "visual_decode")
		return
	}
	fs.HasVisual = true
	fs.ResolutionScore = resolutionScore(cfg.Width, cfg.Height)
	fs.AspectScore = aspectScore(cfg.Width, cfg.Height)

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		fs.BrightnessScore = 0.7
		fs.ContrastScore = 0.7
		fs.Degraded = append(fs.Degraded, "visual_pixels")
	} else {
		mean, std := lumaStats(img)
		fs.BrightnessScore = 1 - 2*math.Abs(mean/255-0.5)
		fs.ContrastScore = domain.Clamp01(std / 128)
	}
	fs.VisualQuality = domain.Clamp01(
		0.3*fs.ResolutionScore + 0.3*fs.AspectScore + 0.2*fs.BrightnessScore + 0.2*fs.ContrastScore)
}

func resolutionScore(w, h int) float64 {
	const fullHD = 1920.0 * 1080.0
	return domain.Clamp01(float64(w*h) / fullHD)
}

func aspectScore(w, h int) float64 {
	if w <= 0 || h <= 0 {
		return 0.6
	}
	ratio := float64(w) / float64(h)
	switch {
	case approx(ratio, 9.0/16.0):
		return 1.0
	case approx(ratio, 1.0):
		return 0.9
	case approx(ratio, 16.0/9.0):
		return 0.7
	default:
		return 0.6
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 0.05
}

// lumaStats samples the image on a coarse grid; full-resolution scans
// are unnecessary for a mean/std estimate.
func lumaStats(img image.Image) (mean, std float64) {
	bounds := img.Bounds()
	stepX := bounds.Dx() / 64
	stepY := bounds.Dy() / 64
	if stepX < 1 {
		stepX = 1
	}
	if stepY < 1 {
		stepY = 1
	}
	var sum, sumSq float64
	var n float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			r, g, b, _ := img.At(x, y).RGBA()
			luma := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 257
			sum += luma
			sumSq += luma * luma
			n++
		}
	}
	if n == 0 {
		return 127.5, 0
	}
	mean = sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance)
}

func (e *ContentExtractor) extractText(fs *domain.ContentFeatureSet, caption string) {
	fs.CaptionLength = len([]rune(caption))
	words := wordPattern.FindAllString(caption, -1)
	fs.WordCount = len(words)
	fs.MentionCount = len(mentionPattern.FindAllString(caption, -1))
	fs.EmojiCount = emojiCount(caption)
	fs.QuestionCount = strings.Count(caption, "?")
	fs.ExclamationCount = strings.Count(caption, "!")
	fs.ReadingTimeMin = float64(fs.WordCount) / 200

	lower := strings.ToLower(caption)
	for _, category := range ctaPriority {
		for _, phrase := range ctaPhrases[category] {
			if strings.Contains(lower, phrase) {
				fs.HasCTA = true
				fs.CTAType = category
				return
			}
		}
	}
}

func emojiCount(s string) int {
	count := 0
	for _, r := range s {
		switch {
		case r >= 0x1F300 && r <= 0x1FAFF, // pictographs, transport, supplemental
			r >= 0x2600 && r <= 0x27BF,   // misc symbols, dingbats
			r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
			count++
		case unicode.Is(unicode.Sk, r) && r > 0x2000:
			count++
		}
	}
	return count
}

func (e *ContentExtractor) extractHashtags(fs *domain.ContentFeatureSet, caption string, explicit []string, trending map[string]bool) {
	tags := make([]string, 0, len(explicit)+4)
	for _, t := range explicit {
		if norm := domain.NormalizeHashtag(t); norm != "" {
			tags = append(tags, norm)
		}
	}
	for _, t := range hashtagPattern.FindAllString(caption, -1) {
		tags = append(tags, domain.NormalizeHashtag(t))
	}
	fs.HashtagCount = len(tags)
	if len(tags) == 0 {
		return
	}

	unique := map[string]bool{}
	trendingMatches := 0
	nicheCount := 0
	for _, t := range tags {
		unique[t] = true
		if trending[t] {
			trendingMatches++
		}
		if len(t) > 15 {
			nicheCount++
		}
	}
	fs.HashtagDiversity = float64(len(unique)) / float64(len(tags))
	fs.TrendingRatio = float64(trendingMatches) / float64(len(tags))
	fs.NicheRatio = float64(nicheCount) / float64(len(tags))
}

func (e *ContentExtractor) extractHooks(fs *domain.ContentFeatureSet, caption string) {
	lower := strings.ToLower(caption)
	matches := 0
	for _, phrase := range hookPhrases {
		if strings.Contains(lower, phrase) {
			matches++
		}
	}
	fs.HookStrength = math.Min(float64(matches)/3, 1)
}

// sentimentScore is a Laplace-smoothed positive/negative word ratio:
// (pos - neg + 1) / (pos + neg + 2); 0.5 when no sentiment words match.
func sentimentScore(caption string) float64 {
	pos, neg := 0, 0
	for _, w := range wordPattern.FindAllString(strings.ToLower(caption), -1) {
		if positiveWords[w] {
			pos++
		}
		if negativeWords[w] {
			neg++
		}
	}
	return domain.Clamp01(float64(pos-neg+1) / float64(pos+neg+2))
}
