package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/translate"
	"github.com/aws/smithy-go"

	"github.com/candrel/s3translate/internal/chunker"
)

// translateAPI is the subset of the Amazon Translate client the service uses.
type translateAPI interface {
	TranslateText(ctx context.Context, params *translate.TranslateTextInput, optFns ...func(*translate.Options)) (*translate.TranslateTextOutput, error)
}

var _ translateAPI = (*translate.Client)(nil)

// AmazonService implements Service on top of Amazon Translate.
type AmazonService struct {
	client   translateAPI
	maxBytes int
}

// NewAmazonService creates a service backed by the given Translate client.
// maxDocumentBytes caps the size of a single service call; texts over the
// cap are split on sentence boundaries and translated segment by segment.
// Zero means the chunker default.
func NewAmazonService(client *translate.Client, maxDocumentBytes int) *AmazonService {
	return &AmazonService{client: client, maxBytes: maxDocumentBytes}
}

// newAmazonServiceWithAPI exists for tests.
func newAmazonServiceWithAPI(client translateAPI, maxDocumentBytes int) *AmazonService {
	return &AmazonService{client: client, maxBytes: maxDocumentBytes}
}

// Translate translates text from sourceLang to targetLang.
// Empty text returns an empty translation without calling the service,
// which rejects empty documents.
func (s *AmazonService) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if text == "" {
		return "", nil
	}

	segments := chunker.Split(text, s.maxBytes)
	translated := make([]string, 0, len(segments))

	for i, segment := range segments {
		out, err := s.client.TranslateText(ctx, &translate.TranslateTextInput{
			Text:               aws.String(segment),
			SourceLanguageCode: aws.String(sourceLang),
			TargetLanguageCode: aws.String(targetLang),
		})
		if err != nil {
			return "", mapServiceError(err, sourceLang, targetLang, i, len(segments))
		}
		translated = append(translated, aws.ToString(out.TranslatedText))
	}

	// Segments keep their own trailing whitespace, so plain concatenation
	// preserves the document structure.
	return strings.Join(translated, ""), nil
}

// mapServiceError converts Amazon Translate API errors into the package's
// typed errors so the distinction survives past the boundary.
func mapServiceError(err error, sourceLang, targetLang string, segment, total int) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "UnsupportedLanguagePairException", "UnsupportedDisplayLanguageCodeException":
			return &UnsupportedPairError{Source: sourceLang, Target: targetLang}
		}
	}
	if total > 1 {
		err = fmt.Errorf("segment %d/%d: %w", segment+1, total, err)
	}
	return &UnavailableError{Err: err}
}
