// Copyright (c) 2026 - The Event Horizon authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package tracing

import (
	"errors"
	"fmt"
	"io"
	"math"

	opentracing "github.com/opentracing/opentracing-go"
	jaeger "github.com/uber/jaeger-client-go"
	"github.com/uber/jaeger-client-go/transport/zipkin"
	zk "github.com/uber/jaeger-client-go/zipkin"
)

// ErrMissingEndpoint is returned when creating a tracer without endpoint.
var ErrMissingEndpoint = errors.New("missing tracing endpoint")

// TracerConfig configures the tracer created by NewTracer.
type TracerConfig struct {
	// ServiceName is the name spans are reported under.
	ServiceName string
	// Endpoint is the URL of a Zipkin compatible collector.
	Endpoint string
	// SampleRate is the share of emits that are traced, 1 or more traces
	// every emit and 0 or less none.
	SampleRate float64
}

// NewTracer creates a Jaeger tracer reporting in Zipkin format and sets it as
// the global tracer used by NewMiddleware. Close it on exit with the
// returned io.Closer.
func NewTracer(cfg TracerConfig) (opentracing.Tracer, io.Closer, error) {
	if cfg.Endpoint == "" {
		return nil, nil, ErrMissingEndpoint
	}

	sampler, err := newSampler(cfg.SampleRate)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create sampler: %w", err)
	}

	transport, err := zipkin.NewHTTPTransport(cfg.Endpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create Zipkin transport: %w", err)
	}

	// B3 headers keep the trace when an emit leads to an outgoing request.
	propagator := zk.NewZipkinB3HTTPHeaderPropagator()

	tracer, closer := jaeger.NewTracer(
		cfg.ServiceName,
		sampler,
		jaeger.NewRemoteReporter(transport),
		jaeger.TracerOptions.Injector(opentracing.HTTPHeaders, propagator),
		jaeger.TracerOptions.Extractor(opentracing.HTTPHeaders, propagator),
		jaeger.TracerOptions.Gen128Bit(true),
	)
	opentracing.SetGlobalTracer(tracer)

	return tracer, closer, nil
}

func newSampler(rate float64) (jaeger.Sampler, error) {
	switch {
	case math.IsNaN(rate):
		return nil, fmt.Errorf("invalid sample rate %v", rate)
	case rate >= 1:
		return jaeger.NewConstSampler(true), nil
	case rate <= 0:
		return jaeger.NewConstSampler(false), nil
	default:
		return jaeger.NewProbabilisticSampler(rate)
	}
}
