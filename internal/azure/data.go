package azure

// pronConfig is sent base64 encoded in the Pronunciation-Assessment header
type pronConfig struct {
	ReferenceText           string `json:"ReferenceText"`
	GradingSystem           string `json:"GradingSystem"`
	Granularity             string `json:"Granularity"`
	Dimension               string `json:"Dimension"`
	EnableProsodyAssessment string `json:"EnableProsodyAssessment"`
}

// scores are returned flat in NBest or nested in PronunciationAssessment depending on the API version
type scores struct {
	AccuracyScore     *float64 `json:"AccuracyScore"`
	FluencyScore      *float64 `json:"FluencyScore"`
	CompletenessScore *float64 `json:"CompletenessScore"`
	PronScore         *float64 `json:"PronScore"`
	ProsodyScore      *float64 `json:"ProsodyScore"`
	ErrorType         string   `json:"ErrorType"`
}

type word struct {
	scores
	Word                    string  `json:"Word"`
	Offset                  int64   `json:"Offset"`
	Duration                int64   `json:"Duration"`
	PronunciationAssessment *scores `json:"PronunciationAssessment"`
}

type nBest struct {
	scores
	Confidence              float64 `json:"Confidence"`
	Lexical                 string  `json:"Lexical"`
	ITN                     string  `json:"ITN"`
	MaskedITN               string  `json:"MaskedITN"`
	Display                 string  `json:"Display"`
	PronunciationAssessment *scores `json:"PronunciationAssessment"`
	Words                   []word  `json:"Words"`
}

type response struct {
	RecognitionStatus string  `json:"RecognitionStatus"`
	DisplayText       string  `json:"DisplayText"`
	Offset            int64   `json:"Offset"`
	Duration          int64   `json:"Duration"`
	NBest             []nBest `json:"NBest"`
}

const statusSuccess = "Success"

func (s *scores) merge(nested *scores) *scores {
	if nested == nil {
		return s
	}
	res := *s
	res.AccuracyScore = pick(nested.AccuracyScore, s.AccuracyScore)
	res.FluencyScore = pick(nested.FluencyScore, s.FluencyScore)
	res.CompletenessScore = pick(nested.CompletenessScore, s.CompletenessScore)
	res.PronScore = pick(nested.PronScore, s.PronScore)
	res.ProsodyScore = pick(nested.ProsodyScore, s.ProsodyScore)
	if nested.ErrorType != "" {
		res.ErrorType = nested.ErrorType
	}
	return &res
}

func pick(a, b *float64) *float64 {
	if a != nil {
		return a
	}
	return b
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
