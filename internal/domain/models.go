// Package domain contains the core record types for the translation pipeline.
package domain

// TranslationRequest is the JSON document stored in the input bucket.
// All fields are optional; missing languages are filled with defaults
// before the request reaches the translation service.
type TranslationRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language,omitempty"`
	TargetLanguage string `json:"target_language,omitempty"`
}

// TranslationResult is the JSON document written to the output bucket.
// Encoding must stay deterministic (fixed field set, no timestamps) so
// re-processing the same input produces byte-identical output.
type TranslationResult struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// ObjectRef identifies one stored object.
type ObjectRef struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

// RecordOutcome reports the result of processing one triggering record.
type RecordOutcome struct {
	Bucket    string `json:"bucket"`
	Key       string `json:"key"`
	Status    string `json:"status"` // "success" or "error"
	OutputKey string `json:"outputKey,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"errorKind,omitempty"`
}

// Response is the payload returned from the Lambda entry point.
type Response struct {
	Status  string          `json:"status"`
	Records []RecordOutcome `json:"records"`
}
