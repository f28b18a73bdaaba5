// Package main is the entry point for the translation pipeline Lambda function.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/translate"

	"github.com/candrel/s3translate/internal/blob"
	"github.com/candrel/s3translate/internal/config"
	"github.com/candrel/s3translate/internal/domain"
	"github.com/candrel/s3translate/internal/handler"
	"github.com/candrel/s3translate/internal/logging"
	"github.com/candrel/s3translate/internal/translator"
)

// directRequest is the direct-invocation form: one object reference plus an
// optional target language used when the stored request omits its own.
type directRequest struct {
	Bucket     string `json:"bucket"`
	Key        string `json:"key"`
	TargetLang string `json:"target_lang,omitempty"`
}

var (
	app     *handler.Handler
	appErr  error
	appOnce sync.Once
)

// getHandler builds the pipeline once per Lambda instance. Built lazily so
// warmup events succeed on instances without a full configuration.
func getHandler(ctx context.Context) (*handler.Handler, error) {
	appOnce.Do(func() {
		cfg, err := config.FromEnv()
		if err != nil {
			appErr = err
			return
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			appErr = fmt.Errorf("failed to load AWS config: %w", err)
			return
		}
		store := blob.NewS3Store(s3.NewFromConfig(awsCfg))
		service := translator.NewAmazonService(translate.NewFromConfig(awsCfg), cfg.MaxDocumentBytes)
		app = handler.New(store, service, cfg)
	})
	return app, appErr
}

func main() {
	logging.InitFromEnv()
	lambda.Start(handleRequest)
}

func handleRequest(ctx context.Context, event json.RawMessage) (interface{}, error) {
	// Warmup detection (MUST be first - before any other processing)
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, warmup)
	}

	h, err := getHandler(ctx)
	if err != nil {
		return nil, err
	}

	// S3 trigger form: a records envelope referencing newly created objects.
	var s3Event events.S3Event
	if err := json.Unmarshal(event, &s3Event); err == nil && len(s3Event.Records) > 0 {
		return handleS3Event(ctx, h, s3Event), nil
	}

	// Direct form: an explicit bucket/key pair.
	var req directRequest
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, err
	}
	if req.Bucket == "" || req.Key == "" {
		return nil, fmt.Errorf("request must name a bucket and key")
	}

	outcome := processRecord(ctx, h, req.Bucket, req.Key, req.TargetLang)
	return &domain.Response{Status: outcome.Status, Records: []domain.RecordOutcome{outcome}}, nil
}

// handleS3Event processes every record in the event independently. The
// invocation as a whole fails only when all records failed, so a retried
// event does not re-run already-successful records for nothing; overwrites
// from re-runs are idempotent regardless.
func handleS3Event(ctx context.Context, h *handler.Handler, event events.S3Event) *domain.Response {
	outcomes := make([]domain.RecordOutcome, 0, len(event.Records))
	succeeded := 0

	for _, record := range event.Records {
		// Object keys arrive URL-encoded in S3 notifications.
		key := record.S3.Object.Key
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		outcome := processRecord(ctx, h, record.S3.Bucket.Name, key, "")
		if outcome.Status == "success" {
			succeeded++
		}
		outcomes = append(outcomes, outcome)
	}

	status := "success"
	if succeeded == 0 {
		status = "error"
	} else if succeeded < len(outcomes) {
		status = "partial"
	}
	return &domain.Response{Status: status, Records: outcomes}
}

// processRecord runs the pipeline for one object and flattens the typed
// error into the boundary payload, keeping its kind.
func processRecord(ctx context.Context, h *handler.Handler, bucket, key, targetLang string) domain.RecordOutcome {
	outcome := domain.RecordOutcome{Bucket: bucket, Key: key}

	outputKey, err := h.Process(ctx, bucket, key, targetLang)
	if err != nil {
		outcome.Status = "error"
		outcome.Error = err.Error()
		outcome.ErrorKind = handler.Classify(err)
		return outcome
	}

	outcome.Status = "success"
	outcome.OutputKey = outputKey
	return outcome
}
