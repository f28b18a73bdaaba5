package translator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/translate"
	"github.com/aws/smithy-go"
)

type fakeTranslate struct {
	calls []translate.TranslateTextInput
	err   error
	// transform applied to each input text; identity-with-marker by default
	transform func(string) string
}

func (f *fakeTranslate) TranslateText(ctx context.Context, params *translate.TranslateTextInput, optFns ...func(*translate.Options)) (*translate.TranslateTextOutput, error) {
	f.calls = append(f.calls, *params)
	if f.err != nil {
		return nil, f.err
	}
	text := aws.ToString(params.Text)
	if f.transform != nil {
		text = f.transform(text)
	}
	return &translate.TranslateTextOutput{
		TranslatedText:     aws.String(text),
		SourceLanguageCode: params.SourceLanguageCode,
		TargetLanguageCode: params.TargetLanguageCode,
	}, nil
}

func TestTranslate_PassesExactValues(t *testing.T) {
	fake := &fakeTranslate{transform: func(s string) string { return "Bonjour" }}
	svc := newAmazonServiceWithAPI(fake, 0)

	got, err := svc.Translate(context.Background(), "Hello, how are you doing today?", "en", "fr")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if got != "Bonjour" {
		t.Errorf("Translate() = %q, want %q", got, "Bonjour")
	}

	if len(fake.calls) != 1 {
		t.Fatalf("expected 1 service call, got %d", len(fake.calls))
	}
	call := fake.calls[0]
	if aws.ToString(call.Text) != "Hello, how are you doing today?" {
		t.Errorf("service text = %q, want the input verbatim", aws.ToString(call.Text))
	}
	if aws.ToString(call.SourceLanguageCode) != "en" || aws.ToString(call.TargetLanguageCode) != "fr" {
		t.Errorf("service langs = %s-%s, want en-fr",
			aws.ToString(call.SourceLanguageCode), aws.ToString(call.TargetLanguageCode))
	}
}

func TestTranslate_EmptyText(t *testing.T) {
	fake := &fakeTranslate{}
	svc := newAmazonServiceWithAPI(fake, 0)

	got, err := svc.Translate(context.Background(), "", "en", "fr")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("Translate() = %q, want empty", got)
	}
	if len(fake.calls) != 0 {
		t.Errorf("empty text must not call the service, got %d calls", len(fake.calls))
	}
}

func TestTranslate_ChunksLongText(t *testing.T) {
	fake := &fakeTranslate{}
	svc := newAmazonServiceWithAPI(fake, 30)

	text := "First sentence here. Second sentence here. Third sentence here."
	got, err := svc.Translate(context.Background(), text, "en", "es")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}

	if len(fake.calls) < 2 {
		t.Fatalf("expected text over the cap to need multiple calls, got %d", len(fake.calls))
	}
	// Identity transform: concatenated result must reproduce the input.
	if got != text {
		t.Errorf("Translate() = %q, want %q", got, text)
	}
	for i, call := range fake.calls {
		if len(aws.ToString(call.Text)) > 30 {
			t.Errorf("call %d exceeds the 30-byte cap: %q", i, aws.ToString(call.Text))
		}
	}
}

type apiError struct {
	code string
}

func (e *apiError) Error() string                 { return e.code }
func (e *apiError) ErrorCode() string             { return e.code }
func (e *apiError) ErrorMessage() string          { return e.code }
func (e *apiError) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func TestTranslate_UnsupportedPair(t *testing.T) {
	fake := &fakeTranslate{err: &apiError{code: "UnsupportedLanguagePairException"}}
	svc := newAmazonServiceWithAPI(fake, 0)

	_, err := svc.Translate(context.Background(), "Hello", "en", "ga")

	var pairErr *UnsupportedPairError
	if !errors.As(err, &pairErr) {
		t.Fatalf("Translate() error = %v, want *UnsupportedPairError", err)
	}
	if pairErr.Source != "en" || pairErr.Target != "ga" {
		t.Errorf("UnsupportedPairError = %+v, want en-ga", pairErr)
	}
}

func TestTranslate_ServiceUnavailable(t *testing.T) {
	fake := &fakeTranslate{err: &apiError{code: "InternalServerException"}}
	svc := newAmazonServiceWithAPI(fake, 0)

	_, err := svc.Translate(context.Background(), "Hello", "en", "fr")

	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("Translate() error = %v, want *UnavailableError", err)
	}
}

func TestTranslate_Deterministic(t *testing.T) {
	fake := &fakeTranslate{transform: strings.ToUpper}
	svc := newAmazonServiceWithAPI(fake, 0)

	ctx := context.Background()
	first, err := svc.Translate(ctx, "hello world.", "en", "fr")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	second, err := svc.Translate(ctx, "hello world.", "en", "fr")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("Translate() not deterministic: %q vs %q", first, second)
	}
}
