// internal/domain/viewmode/probe.go
package viewmode

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// lowEndRenderers are renderer name fragments of software rasterizers
var lowEndRenderers = []string{
	"swift shader",
	"swiftshader",
	"llvmpipe",
	"mesa",
}

// ErrNoContext is reported when no accelerated context could be acquired
var ErrNoContext = errors.New("no hardware accelerated context")

// ProbeResult is what a capability probe observed
type ProbeResult struct {
	Supported bool
	Renderer  string
}

// Prober acquires a rendering context once and describes it
type Prober interface {
	Probe(ctx context.Context) (ProbeResult, error)
}

// Detection is the outcome of Detect
type Detection struct {
	Capability Capability
	Renderer   string
	LowEnd     bool
	Err        error
}

// Detect runs the prober and never fails. Errors, panics and a nil prober all
// resolve to Unsupported.
func Detect(ctx context.Context, p Prober) (d Detection) {
	defer func() {
		if r := recover(); r != nil {
			d = Detection{Capability: CapabilityUnsupported, Err: fmt.Errorf("probe panicked: %v", r)}
		}
	}()

	if p == nil {
		return Detection{Capability: CapabilityUnsupported, Err: ErrNoContext}
	}

	result, err := p.Probe(ctx)
	if err != nil {
		return Detection{Capability: CapabilityUnsupported, Err: err}
	}
	if !result.Supported {
		return Detection{Capability: CapabilityUnsupported, Renderer: result.Renderer, Err: ErrNoContext}
	}

	return Detection{
		Capability: CapabilitySupported,
		Renderer:   result.Renderer,
		LowEnd:     ClassifyRenderer(result.Renderer),
	}
}

// ClassifyRenderer reports whether the renderer looks software rendered
func ClassifyRenderer(renderer string) bool {
	r := strings.ToLower(renderer)
	if r == "" {
		return false
	}
	for _, indicator := range lowEndRenderers {
		if strings.Contains(r, indicator) {
			return true
		}
	}
	return false
}

// DetectionPolicy maps a detection to the capability reported to the controller
type DetectionPolicy struct {
	TreatLowEndAsUnsupported bool
}

func (p DetectionPolicy) Capability(d Detection) Capability {
	if d.Capability == CapabilitySupported && d.LowEnd && p.TreatLowEndAsUnsupported {
		return CapabilityUnsupported
	}
	return d.Capability
}

// ClientReport is a probe performed by the browser and posted back
type ClientReport struct {
	Context  bool   `json:"context"`
	Renderer string `json:"renderer"`
	Error    string `json:"error"`
}

func (r ClientReport) Probe(_ context.Context) (ProbeResult, error) {
	if r.Error != "" {
		return ProbeResult{}, errors.New(r.Error)
	}
	return ProbeResult{Supported: r.Context, Renderer: strings.TrimSpace(r.Renderer)}, nil
}
