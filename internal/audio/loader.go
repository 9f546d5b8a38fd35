package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/pron-assessment-wrapper/internal/utils"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// DefaultContentType is used when audio is not a wav file, chat platforms send voice notes as ogg/opus
const DefaultContentType = "audio/ogg; codecs=opus"

// Audio is downloaded audio with the content type to send to the recognizer
type Audio struct {
	Data        []byte
	ContentType string
	// Format is set for wav files only
	Format   *goaudio.Format
	Duration time.Duration
}

// Loader downloads audio by URL
type Loader struct {
	httpclient *http.Client
	timeout    time.Duration
	maxSize    int64
}

// NewLoader creates audio loader
func NewLoader(timeout time.Duration, maxSize int64) (*Loader, error) {
	if timeout <= 0 {
		return nil, fmt.Errorf("wrong timeout %v", timeout)
	}
	if maxSize <= 0 {
		return nil, fmt.Errorf("wrong max size %d", maxSize)
	}
	res := &Loader{httpclient: utils.NewHTTPClient(), timeout: timeout, maxSize: maxSize}
	goapp.Log.Info().Str("timeout", timeout.String()).Int64("maxSize", maxSize).Msg("Audio loader")
	return res, nil
}

// Load downloads audio and detects its content type
func (l *Loader) Load(ctx context.Context, audioURL string) (*Audio, error) {
	defer utils.MeasureTime(ctx, "audio.load", time.Now())
	u, err := url.Parse(audioURL)
	if err != nil {
		return nil, fmt.Errorf("wrong url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme '%s'", u.Scheme)
	}
	ctx, cancelF := context.WithTimeout(ctx, l.timeout)
	defer cancelF()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.httpclient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't download: %w", err)
	}
	defer utils.DrainAndClose(resp)
	if err := goapp.ValidateHTTPResp(resp, 100); err != nil {
		return nil, fmt.Errorf("can't download '%s': %w", u.Redacted(), err)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, l.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("can't read audio: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty audio")
	}
	if int64(len(data)) > l.maxSize {
		return nil, fmt.Errorf("audio exceeds %d bytes", l.maxSize)
	}
	res := Detect(data)
	goapp.Log.Debug().Str("rID", utils.RequestID(ctx)).Int("len", len(data)).Str("contentType", res.ContentType).
		Str("duration", res.Duration.String()).Msg("audio loaded")
	return res, nil
}

// wavFormatPCM is the WAVE_FORMAT_PCM format tag
const wavFormatPCM = 1

// Detect returns audio with the content type detected from data, only PCM wav is reported as wav
func Detect(data []byte) *Audio {
	res := &Audio{Data: data, ContentType: DefaultContentType}
	// the wav decoder allocates buffers by header sizes, check them before decoding
	if !chunksFit(data) {
		return res
	}
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() || dec.WavAudioFormat != wavFormatPCM {
		return res
	}
	res.Format = dec.Format()
	res.ContentType = wavContentType(res.Format)
	if d, err := dec.Duration(); err == nil {
		res.Duration = d
	}
	return res
}

// chunksFit walks RIFF chunk headers up to the data chunk and checks every size fits into data
func chunksFit(data []byte) bool {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return false
	}
	if uint64(binary.LittleEndian.Uint32(data[4:8])) > uint64(len(data)-8) {
		return false
	}
	pos, fmtFound := uint64(12), false
	for pos+8 <= uint64(len(data)) {
		id := string(data[pos : pos+4])
		size := uint64(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		pos += 8
		if size > uint64(len(data))-pos {
			return false
		}
		switch id {
		case "fmt ":
			fmtFound = true
		case "data":
			return fmtFound
		}
		pos += size + size%2
	}
	return false
}

func wavContentType(f *goaudio.Format) string {
	return fmt.Sprintf("audio/wav; codecs=audio/pcm; samplerate=%d", f.SampleRate)
}
