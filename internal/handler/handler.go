// Package handler implements the transform handler: one stored translation
// request in, one stored translation result out.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/candrel/s3translate/internal/blob"
	"github.com/candrel/s3translate/internal/config"
	"github.com/candrel/s3translate/internal/domain"
	"github.com/candrel/s3translate/internal/langid"
	"github.com/candrel/s3translate/internal/logging"
	"github.com/candrel/s3translate/internal/translator"
)

const (
	inputSuffix  = ".json"
	outputSuffix = "_translated.json"
)

// MalformedInputError indicates the input object body is not valid JSON.
type MalformedInputError struct {
	Key string
	Err error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input object %s: %v", e.Key, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// KeyDerivationError indicates the input key does not end in the recognized
// suffix, so no output key can be derived for it.
type KeyDerivationError struct {
	Key string
}

func (e *KeyDerivationError) Error() string {
	return fmt.Sprintf("cannot derive output key from %q: missing %q suffix", e.Key, inputSuffix)
}

// Handler converts one stored translation request into one stored
// translation result. It holds no state between invocations.
type Handler struct {
	store   blob.Store
	service translator.Service
	cfg     config.Config
}

// New creates a Handler. The output bucket and language defaults come from
// cfg, never from package state.
func New(store blob.Store, service translator.Service, cfg config.Config) *Handler {
	return &Handler{store: store, service: service, cfg: cfg}
}

// Process runs the full pipeline for one input object and returns the key
// the result was written under. Nothing is written unless every prior step
// succeeded. overrideTarget, when non-empty, replaces the configured default
// target language for requests that omit target_language (standalone
// invocation form); it never overrides an explicit request field.
func (h *Handler) Process(ctx context.Context, bucket, key, overrideTarget string) (string, error) {
	log := logging.L().With("invocation", uuid.NewString(), "bucket", bucket, "key", key)

	// Derive the output key first: an underivable key fails before any
	// service call is spent on it.
	outputKey, err := DeriveOutputKey(key)
	if err != nil {
		return "", err
	}

	raw, err := h.store.Get(ctx, bucket, key)
	if err != nil {
		return "", err
	}

	req, err := parseRequest(key, raw)
	if err != nil {
		return "", err
	}

	source, target, err := h.resolveLanguages(req, overrideTarget)
	if err != nil {
		return "", err
	}
	log.Debug("resolved languages", "source", source, "target", target)

	translated, err := h.service.Translate(ctx, req.Text, source, target)
	if err != nil {
		log.Warn("translation failed", "source", source, "target", target, "error", err)
		return "", err
	}

	result := domain.TranslationResult{
		OriginalText:   req.Text,
		TranslatedText: translated,
		SourceLanguage: source,
		TargetLanguage: target,
	}
	body, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}

	if err := h.store.Put(ctx, h.cfg.OutputBucket, outputKey, body); err != nil {
		return "", err
	}

	log.Info("translation stored", "outputBucket", h.cfg.OutputBucket, "outputKey", outputKey)
	return outputKey, nil
}

// parseRequest decodes the stored request document.
func parseRequest(key string, raw []byte) (domain.TranslationRequest, error) {
	var req domain.TranslationRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return domain.TranslationRequest{}, &MalformedInputError{Key: key, Err: err}
	}
	return req, nil
}

// resolveLanguages applies defaults, normalizes both codes, and rejects
// pairs the service cannot handle.
func (h *Handler) resolveLanguages(req domain.TranslationRequest, overrideTarget string) (string, string, error) {
	source := req.SourceLanguage
	if source == "" {
		source = h.cfg.DefaultSourceLang
	}
	target := req.TargetLanguage
	if target == "" {
		target = overrideTarget
	}
	if target == "" {
		target = h.cfg.DefaultTargetLang
	}

	source, err := langid.Normalize(source)
	if err != nil {
		return "", "", err
	}
	target, err = langid.Normalize(target)
	if err != nil {
		return "", "", err
	}

	if !langid.Supported(source) || !langid.Supported(target) {
		return "", "", &translator.UnsupportedPairError{Source: source, Target: target}
	}
	return source, target, nil
}

// DeriveOutputKey maps an input key to its output key by replacing the
// trailing ".json" with "_translated.json". Keys without the suffix have no
// derived form and fail with KeyDerivationError.
func DeriveOutputKey(key string) (string, error) {
	if !strings.HasSuffix(key, inputSuffix) {
		return "", &KeyDerivationError{Key: key}
	}
	return strings.TrimSuffix(key, inputSuffix) + outputSuffix, nil
}

// Error kinds reported at the invocation boundary.
const (
	KindNotFound        = "not_found"
	KindMalformedInput  = "malformed_input"
	KindUnsupportedPair = "unsupported_language_pair"
	KindUnavailable     = "translation_unavailable"
	KindStorageWrite    = "storage_write"
	KindKeyDerivation   = "key_derivation"
	KindInternal        = "internal"
)

// Classify maps a pipeline error to its stable kind string. The boundary
// flattens errors into a status payload; the kind keeps the taxonomy from
// being lost there.
func Classify(err error) string {
	var (
		notFound   *blob.NotFoundError
		writeErr   *blob.WriteError
		malformed  *MalformedInputError
		derivation *KeyDerivationError
		pair       *translator.UnsupportedPairError
		invalidTag *langid.InvalidTagError
		unavail    *translator.UnavailableError
	)
	switch {
	case errors.As(err, &notFound):
		return KindNotFound
	case errors.As(err, &writeErr):
		return KindStorageWrite
	case errors.As(err, &malformed):
		return KindMalformedInput
	case errors.As(err, &derivation):
		return KindKeyDerivation
	case errors.As(err, &pair), errors.As(err, &invalidTag):
		return KindUnsupportedPair
	case errors.As(err, &unavail):
		return KindUnavailable
	default:
		return KindInternal
	}
}
