package azure

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/pron-assessment-wrapper/internal/domain"
	"github.com/airenas/pron-assessment-wrapper/internal/utils"
)

const urlTemplate = "https://%s.stt.speech.microsoft.com/speech/recognition/conversation/cognitiveservices/v1"

// Config for the Azure speech service
type Config struct {
	Key    string
	Region string
	// URL overrides the region based endpoint
	URL     string
	Timeout time.Duration
}

// Configured reports whether credentials are provided
func (c *Config) Configured() bool {
	return c.Key != "" && (c.Region != "" || c.URL != "")
}

// Client invokes Azure pronunciation assessment
type Client struct {
	httpclient *http.Client
	cfg        Config
	url        string
}

// NewClient creates Azure client, an unconfigured client is allowed
func NewClient(cfg Config) (*Client, error) {
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("wrong timeout %v", cfg.Timeout)
	}
	res := &Client{cfg: cfg, httpclient: utils.NewHTTPClient()}
	res.url = cfg.URL
	if res.url == "" && cfg.Region != "" {
		res.url = fmt.Sprintf(urlTemplate, cfg.Region)
	}
	if res.url != "" {
		if _, err := url.Parse(res.url); err != nil {
			return nil, fmt.Errorf("wrong url '%s': %w", res.url, err)
		}
	}
	goapp.Log.Info().Str("url", res.url).Str("region", cfg.Region).Bool("configured", cfg.Configured()).
		Str("timeout", cfg.Timeout.String()).Msg("Azure client")
	return res, nil
}

// Configured reports whether the client can call the service
func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

// Assess sends audio for pronunciation assessment against text, single attempt
func (c *Client) Assess(ctx context.Context, data []byte, contentType, text, language string) (*domain.Assessment, error) {
	defer utils.MeasureTime(ctx, "azure.assess", time.Now())
	if !c.Configured() {
		return nil, domain.NewError(domain.KindNotConfigured, "Azure key not configured")
	}
	req, err := c.newRequest(ctx, data, contentType, text, language)
	if err != nil {
		return nil, err
	}
	ctx, cancelF := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancelF()

	resp, err := c.httpclient.Do(req.WithContext(ctx))
	if err != nil {
		return nil, domain.WrapError(domain.KindVendorUnreachable, "can't invoke azure", err)
	}
	defer utils.DrainAndClose(resp)
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1000))
		res := domain.NewError(domain.KindVendorRejected, fmt.Sprintf("Azure error %d", resp.StatusCode))
		res.Details = string(body)
		return nil, res
	}
	var ar response
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return nil, domain.WrapError(domain.KindMalformedResponse, "can't decode azure response", err)
	}
	return toAssessment(&ar)
}

func (c *Client) newRequest(ctx context.Context, data []byte, contentType, text, language string) (*http.Request, error) {
	hv, err := pronHeader(text)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(c.url)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("language", language)
	q.Set("format", "detailed")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.Key)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Pronunciation-Assessment", hv)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func pronHeader(text string) (string, error) {
	b, err := json.Marshal(pronConfig{
		ReferenceText:           text,
		GradingSystem:           "HundredMark",
		Granularity:             "Word",
		Dimension:               "Comprehensive",
		EnableProsodyAssessment: "true",
	})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func toAssessment(ar *response) (*domain.Assessment, error) {
	if ar.RecognitionStatus != statusSuccess {
		if ar.RecognitionStatus == "" {
			return nil, domain.NewError(domain.KindMalformedResponse, "no RecognitionStatus in azure response")
		}
		return nil, domain.NewError(domain.KindVendorRejected, fmt.Sprintf("recognition status: %s", ar.RecognitionStatus))
	}
	if len(ar.NBest) == 0 {
		return nil, domain.NewError(domain.KindMalformedResponse, "no NBest in azure response")
	}
	best := ar.NBest[0]
	sc := best.scores.merge(best.PronunciationAssessment)
	if sc.PronScore == nil {
		return nil, domain.NewError(domain.KindMalformedResponse, "no PronScore in azure response")
	}
	res := &domain.Assessment{
		PronunciationScore: value(sc.PronScore),
		AccuracyScore:      value(sc.AccuracyScore),
		FluencyScore:       value(sc.FluencyScore),
		CompletenessScore:  value(sc.CompletenessScore),
		ProsodyScore:       sc.ProsodyScore,
		RecognizedText:     best.Display,
		Words:              make([]domain.Word, 0, len(best.Words)),
	}
	for _, w := range best.Words {
		ws := w.scores.merge(w.PronunciationAssessment)
		et := ws.ErrorType
		if et == "" {
			et = "None"
		}
		res.Words = append(res.Words, domain.Word{Word: w.Word, Score: value(ws.AccuracyScore), Error: et})
	}
	return res, nil
}
