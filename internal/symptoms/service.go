package symptoms

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Skufu/aidoc/internal/metrics"
)

var (
	ErrSymptomsRequired     = errors.New("symptoms are required")
	ErrMalformedEnhancement = errors.New("enhancement response could not be parsed")
	ErrEmptyEnhancement     = errors.New("enhancement returned no conditions")
)

const (
	StatusLocalOnly   = "Local analysis - AI enhancement unavailable"
	StatusEnhanced    = "AI-enhanced analysis successful"
	StatusParseFailed = "AI parsing failed - using local analysis"
	StatusTimedOut    = "AI request timed out - using local analysis"
	StatusUnavailable = "AI service unavailable - using local analysis"
)

// EnhanceRequest carries the raw symptoms and the local conditions computed for them.
type EnhanceRequest struct {
	Symptoms string
	Tokens   []string
	Local    []Condition
}

// Enhancement is an externally produced replacement for the local conditions.
type Enhancement struct {
	Disclaimer string      `json:"disclaimer"`
	Conditions []Condition `json:"possibleConditions"`
}

// Enhancer refines a local analysis. Implementations return an error for any
// outcome that should fall back to the local result.
type Enhancer interface {
	Enhance(ctx context.Context, req EnhanceRequest) (*Enhancement, error)
}

// Response is Result plus a human-readable note on how it was produced.
type Response struct {
	Result
	AIStatus string `json:"aiStatus"`
}

type Service struct {
	analyzer *Analyzer
	enhancer Enhancer
	timeout  time.Duration
	logger   *zap.Logger
}

// NewService wires the local analyzer with an optional enhancer. A nil enhancer
// means local-only analysis.
func NewService(analyzer *Analyzer, enhancer Enhancer, timeout time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		analyzer: analyzer,
		enhancer: enhancer,
		timeout:  timeout,
		logger:   logger.Named("symptoms"),
	}
}

// Analyze always computes the local result first; enhancement can only replace it.
func (s *Service) Analyze(ctx context.Context, in Input) (Response, error) {
	if in.Empty() {
		return Response{}, ErrSymptomsRequired
	}

	text := in.String()
	local, err := s.analyzer.Analyze(text)
	if err != nil {
		s.logger.Error("local analysis failed", zap.Error(err))
		return Response{}, err
	}

	if s.enhancer == nil {
		metrics.AnalysesTotal.WithLabelValues(metrics.ModeLocal).Inc()
		return Response{Result: Shape(local), AIStatus: StatusLocalOnly}, nil
	}

	enhanced, err := s.enhance(ctx, EnhanceRequest{
		Symptoms: text,
		Tokens:   Normalize(text),
		Local:    local,
	})
	if err != nil {
		status := degradedStatus(err)
		s.logger.Warn("enhancement failed, using local analysis",
			zap.Error(err),
			zap.String("aiStatus", status),
		)
		metrics.AnalysesTotal.WithLabelValues(metrics.ModeFallback).Inc()
		return Response{Result: Shape(local), AIStatus: status}, nil
	}

	result := Shape(enhanced.Conditions)
	if hasEmergencyNumbers(enhanced.Disclaimer) {
		result.Disclaimer = enhanced.Disclaimer
	}
	metrics.AnalysesTotal.WithLabelValues(metrics.ModeAI).Inc()
	return Response{Result: result, AIStatus: StatusEnhanced}, nil
}

func (s *Service) enhance(ctx context.Context, req EnhanceRequest) (*Enhancement, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	enhanced, err := s.enhancer.Enhance(ctx, req)
	metrics.EnhancementDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	if enhanced == nil || len(enhanced.Conditions) == 0 {
		return nil, ErrEmptyEnhancement
	}
	return enhanced, nil
}

func degradedStatus(err error) string {
	switch {
	case errors.Is(err, ErrMalformedEnhancement), errors.Is(err, ErrEmptyEnhancement):
		return StatusParseFailed
	case errors.Is(err, context.DeadlineExceeded), isTimeout(err):
		return StatusTimedOut
	default:
		return StatusUnavailable
	}
}

// isTimeout matches transport timeouts such as *url.Error and net.Error.
func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

func hasEmergencyNumbers(text string) bool {
	return strings.Contains(text, "102") && strings.Contains(text, "108")
}
