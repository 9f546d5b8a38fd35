package domain

// Word is a per word assessment detail
type Word struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
	Error string  `json:"error"`
}

// Assessment keeps scores returned by the vendor
type Assessment struct {
	PronunciationScore float64  `json:"pronunciation_score"`
	AccuracyScore      float64  `json:"accuracy_score"`
	FluencyScore       float64  `json:"fluency_score"`
	CompletenessScore  float64  `json:"completeness_score"`
	ProsodyScore       *float64 `json:"prosody_score,omitempty"`
	Words              []Word   `json:"words"`
	RecognizedText     string   `json:"recognized_text"`
}
