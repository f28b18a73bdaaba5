package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/candrel/s3translate/internal/logging"
)

// Scheduled CloudWatch events with source "warmup" keep instances resident
// between object uploads. A positive concurrency fans out async self-invokes
// so several instances stay warm, not just the one that got the ping.

const warmupSource = "warmup"

// warmupHold keeps this instance busy long enough for fanned-out invokes to
// land on other instances instead of being routed back here.
const warmupHold = 75 * time.Millisecond

// WarmupEvent is the scheduled ping payload.
type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// IsWarmupEvent reports whether the raw event is a warmup ping.
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var ping WarmupEvent
	if err := json.Unmarshal(event, &ping); err != nil || ping.Source != warmupSource {
		return nil, false
	}
	return &ping, true
}

// HandleWarmup answers a warmup ping, fanning out to extra instances when
// the ping asks for concurrency.
func HandleWarmup(ctx context.Context, ping *WarmupEvent) (interface{}, error) {
	warmed := 1 // this instance

	if ping.Concurrency > 0 {
		if err := fanOut(ctx, ping.Concurrency); err != nil {
			logging.L().Warn("warmup fan-out failed", "error", err)
		} else {
			warmed += ping.Concurrency
		}
	}

	time.Sleep(warmupHold)

	return map[string]interface{}{
		"statusCode": 200,
		"body": map[string]interface{}{
			"status":          "warm",
			"instancesWarmed": warmed,
		},
	}, nil
}

// fanOut asynchronously self-invokes count times. Children carry
// concurrency=0 so the fan-out cannot recurse.
func fanOut(ctx context.Context, count int) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}
	client := lambdasdk.NewFromConfig(cfg)
	functionName := os.Getenv("AWS_LAMBDA_FUNCTION_NAME")

	payload, err := json.Marshal(WarmupEvent{Source: warmupSource})
	if err != nil {
		return err
	}

	errc := make(chan error, count)
	for i := 0; i < count; i++ {
		go func() {
			_, err := client.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			errc <- err
		}()
	}

	var firstErr error
	for i := 0; i < count; i++ {
		if err := <-errc; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
