package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"wasmcrypto/crypto/pqc/dilithium"
)

const (
	namespace = "wasmcrypto"
	subsystem = "pqc"

	opGenerate = "generate"
	opSign     = "sign"
	opVerify   = "verify"

	resultOK      = "ok"
	resultError   = "error"
	resultInvalid = "invalid"
)

// Metrics holds the primitive instruments. Every instance registers on its
// own Registerer; nothing is attached to the default registry.
type Metrics struct {
	operations    *prometheus.CounterVec
	signSeconds   prometheus.Histogram
	verifySeconds prometheus.Histogram
}

// New creates the instruments and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "signatures_total",
				Help:      "Count of Dilithium primitive calls classified by operation and result",
			},
			[]string{"op", "result"},
		),
		signSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "sign_seconds",
				Help:      "Time spent producing Dilithium signatures",
				Buckets:   []float64{0.0005, 0.001, 0.002, 0.005, 0.01, 0.02, 0.05},
			},
		),
		verifySeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "verify_seconds",
				Help:      "Time spent verifying Dilithium signatures",
				Buckets:   []float64{0.0005, 0.001, 0.002, 0.005, 0.01, 0.02, 0.05},
			},
		),
	}

	for _, c := range []prometheus.Collector{m.operations, m.signSeconds, m.verifySeconds} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Operations exposes the call counter.
func (m *Metrics) Operations() *prometheus.CounterVec { return m.operations }

// Instrument wraps p so that every call reaching the engine is counted and
// timed. Inputs rejected by the Adapter never get here.
func Instrument(p dilithium.Primitive, m *Metrics) dilithium.Primitive {
	if m == nil {
		return p
	}
	return &instrumented{next: p, m: m}
}

type instrumented struct {
	next dilithium.Primitive
	m    *Metrics
}

func (i *instrumented) Name() string { return i.next.Name() }

func (i *instrumented) Generate(seed []byte) (dilithium.PrivateKey, dilithium.PublicKey, error) {
	sk, pk, err := i.next.Generate(seed)
	i.m.operations.WithLabelValues(opGenerate, classify(err)).Inc()
	return sk, pk, err
}

func (i *instrumented) Sign(sk dilithium.PrivateKey, msg []byte) (dilithium.Signature, error) {
	start := time.Now()
	sig, err := i.next.Sign(sk, msg)
	i.m.signSeconds.Observe(time.Since(start).Seconds())
	i.m.operations.WithLabelValues(opSign, classify(err)).Inc()
	return sig, err
}

func (i *instrumented) Verify(pk dilithium.PublicKey, msg []byte, sig dilithium.Signature) bool {
	start := time.Now()
	ok := i.next.Verify(pk, msg, sig)
	i.m.verifySeconds.Observe(time.Since(start).Seconds())
	result := resultOK
	if !ok {
		result = resultInvalid
	}
	i.m.operations.WithLabelValues(opVerify, result).Inc()
	return ok
}

func classify(err error) string {
	if err != nil {
		return resultError
	}
	return resultOK
}
