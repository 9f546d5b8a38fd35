package api

import "github.com/airenas/pron-assessment-wrapper/internal/domain"

// AssessRequest is the POST /assess body
type AssessRequest struct {
	AudioURL      string `json:"audio_url"`
	ReferenceText string `json:"reference_text"`
	// Text is an older name of ReferenceText
	Text     string `json:"text"`
	Language string `json:"language"`
}

// AssessResponse is the POST /assess result, scores are omitted on failure
type AssessResponse struct {
	Success bool `json:"success"`
	*domain.Assessment
	Feedback  string `json:"feedback,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorType string `json:"error_type,omitempty"`
	Details   string `json:"details,omitempty"`
}

// Status is the GET / result
type Status struct {
	Status          string `json:"status"`
	Service         string `json:"service"`
	AzureConfigured bool   `json:"azure_configured"`
	Region          string `json:"region"`
}

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages lists languages offered to the chatbot users
var Languages = []Language{
	{Code: "en-US", Name: "English (US)"},
	{Code: "es-MX", Name: "Spanish (Mexico)"},
	{Code: "fr-FR", Name: "French"},
}
