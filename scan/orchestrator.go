package scan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/symtoscan/symtoscan-api/schema"
)

var logEntry = log.WithField("prefix", "scan")

var (
	// ErrEmptyInput - a scan needs symptom text or at least one image
	ErrEmptyInput = errors.New("no symptom text or images provided")

	// ErrTooManyImages - more images attached than MaxScanImages allows
	ErrTooManyImages = fmt.Errorf("at most %d images can be attached to a scan", schema.MaxScanImages)
)

// AnalysisError - the mandatory analysis call failed; the scan is aborted
type AnalysisError struct {
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("symptom analysis failed: %v", e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// PersistenceError - the history write failed after a successful analysis;
// the analysis result is still returned to the caller
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not save scan to history: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Assistant - the generative-AI calls a scan depends on
type Assistant interface {
	Analyze(ctx context.Context, symptoms string, age int, images []schema.CapturedImage) (string, error)
	FindNearby(ctx context.Context, symptoms string, loc schema.Location, locality string) ([]schema.Place, error)
}

// Resolver - reverse geocoder used to hint the facility search
type Resolver interface {
	Locality(schema.Location) (string, error)
}

// HistoryStore - where completed scans are appended
type HistoryStore interface {
	AppendScan(profileID string, record schema.ScanRecord) (*schema.ScanRecord, error)
}

// Request is one user-initiated scan. Location is nil when geolocation was
// denied or unavailable; ProfileID is empty for unauthenticated scans,
// which are analyzed but never persisted.
type Request struct {
	ProfileID string
	Symptoms  string
	Images    []schema.CapturedImage
	Age       int
	Location  *schema.Location
}

// Result of a completed scan. Record is set only when the scan was
// persisted to history.
type Result struct {
	Analysis string
	Places   []schema.Place
	Record   *schema.ScanRecord
}

// Orchestrator sequences one scan: validate, analyze, look up facilities,
// persist. Each scan owns its transient state; nothing is shared between
// concurrent scans.
type Orchestrator struct {
	assistant Assistant
	resolver  Resolver
	history   HistoryStore
}

func NewOrchestrator(assistant Assistant, resolver Resolver, history HistoryStore) *Orchestrator {
	return &Orchestrator{
		assistant: assistant,
		resolver:  resolver,
		history:   history,
	}
}

// Submit runs one scan. The analysis call is mandatory; the facility
// lookup runs concurrently with it and degrades to an empty place list on
// any failure. When the analysis fails first, the shared group context
// cancels the in-flight facility call so no stale work survives the scan.
func (o *Orchestrator) Submit(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Symptoms) == "" && len(req.Images) == 0 {
		return nil, ErrEmptyInput
	}
	if len(req.Images) > schema.MaxScanImages {
		return nil, ErrTooManyImages
	}

	var analysis string
	var places []schema.Place

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		text, err := o.assistant.Analyze(gctx, req.Symptoms, req.Age, req.Images)
		if err != nil {
			return &AnalysisError{Err: err}
		}
		analysis = text
		return nil
	})

	if req.Location != nil {
		loc := *req.Location
		g.Go(func() error {
			var locality string
			if o.resolver != nil {
				name, err := o.resolver.Locality(loc)
				if err != nil {
					logEntry.WithError(err).Warn("resolve locality")
				} else {
					locality = name
				}
			}

			found, err := o.assistant.FindNearby(gctx, req.Symptoms, loc, locality)
			if err != nil {
				// degraded: facility lookup never fails the scan
				logEntry.WithError(err).Warn("facility lookup failed")
				sentry.CaptureException(err)
				return nil
			}
			places = found
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if places == nil {
		places = []schema.Place{}
	}

	result := &Result{
		Analysis: analysis,
		Places:   places,
	}

	if req.ProfileID != "" {
		record, err := o.history.AppendScan(req.ProfileID, schema.ScanRecord{
			Symptoms:  req.Symptoms,
			Analysis:  analysis,
			Images:    req.Images,
			AgeAtScan: req.Age,
		})
		if err != nil {
			return result, &PersistenceError{Err: err}
		}
		result.Record = record
	}

	return result, nil
}
