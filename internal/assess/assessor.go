package assess

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/pron-assessment-wrapper/internal/audio"
	"github.com/airenas/pron-assessment-wrapper/internal/domain"
	"github.com/airenas/pron-assessment-wrapper/internal/utils"
)

// DefaultLanguage is used when request has no language
const DefaultLanguage = "en-US"

// AudioLoader provides audio by URL
type AudioLoader interface {
	Load(ctx context.Context, url string) (*audio.Audio, error)
}

// Scorer is the pronunciation assessment service
type Scorer interface {
	Configured() bool
	Assess(ctx context.Context, data []byte, contentType, text, language string) (*domain.Assessment, error)
}

// Input for the assessment
type Input struct {
	AudioURL      string
	ReferenceText string
	Language      string
}

// Result of successful assessment
type Result struct {
	*domain.Assessment
	Feedback string
}

// Assessor downloads audio and passes it for the assessment
type Assessor struct {
	loader AudioLoader
	scorer Scorer
}

// NewAssessor creates assessor
func NewAssessor(loader AudioLoader, scorer Scorer) (*Assessor, error) {
	if loader == nil {
		return nil, fmt.Errorf("no audio loader")
	}
	if scorer == nil {
		return nil, fmt.Errorf("no scorer")
	}
	return &Assessor{loader: loader, scorer: scorer}, nil
}

// Prepare trims input, sets the default language and checks required fields
func Prepare(in *Input) error {
	in.AudioURL = strings.TrimSpace(in.AudioURL)
	in.ReferenceText = strings.TrimSpace(in.ReferenceText)
	in.Language = strings.TrimSpace(in.Language)
	if in.Language == "" {
		in.Language = DefaultLanguage
	}
	if in.AudioURL == "" {
		return domain.NewError(domain.KindMissingInput, "audio_url required")
	}
	if in.ReferenceText == "" {
		return domain.NewError(domain.KindMissingInput, "reference_text required")
	}
	return nil
}

// Assess makes a single assessment attempt, errors are *domain.Error
func (a *Assessor) Assess(ctx context.Context, in *Input) (*Result, error) {
	defer utils.MeasureTime(ctx, "assess", time.Now())
	if err := Prepare(in); err != nil {
		return nil, err
	}
	if !a.scorer.Configured() {
		return nil, domain.NewError(domain.KindNotConfigured, "Azure key not configured")
	}
	rID := utils.RequestID(ctx)
	goapp.Log.Info().Str("rID", rID).Str("language", in.Language).Str("text", in.ReferenceText).Msg("assess")

	au, err := a.loader.Load(ctx, in.AudioURL)
	if err != nil {
		goapp.Log.Error().Err(err).Str("rID", rID).Msg("can't load audio")
		return nil, domain.WrapError(domain.KindAudioUnavailable, "Failed to download audio", err)
	}
	res, err := a.scorer.Assess(ctx, au.Data, au.ContentType, in.ReferenceText, in.Language)
	if err != nil {
		goapp.Log.Error().Err(err).Str("rID", rID).Str("kind", domain.KindOf(err).String()).Msg("can't assess")
		if domain.KindOf(err) == domain.KindUnknown {
			return nil, domain.WrapError(domain.KindVendorUnreachable, "can't assess", err)
		}
		return nil, err
	}
	goapp.Log.Info().Str("rID", rID).Float64("score", res.PronunciationScore).Str("recognized", res.RecognizedText).Msg("assessed")
	return &Result{Assessment: res, Feedback: FullFeedback(res)}, nil
}
