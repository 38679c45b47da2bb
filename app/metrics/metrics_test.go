package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"wasmcrypto/crypto/pqc/dilithium"
)

func TestInstrumentCountsEngineCalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	a, err := dilithium.NewAdapter(Instrument(dilithium.Default(), m))
	require.NoError(t, err)

	seed := bytes.Repeat([]byte{0x42}, dilithium.SeedSize)
	msg := []byte("metrics")

	kp, err := a.GenerateKeypair(seed)
	require.NoError(t, err)
	sig, err := a.Sign(seed, msg)
	require.NoError(t, err)

	require.True(t, a.Verify(sig, msg, kp.PublicKey()))
	require.False(t, a.Verify(sig, []byte("other"), kp.PublicKey()))
	// Fast-rejected, never reaches the engine.
	require.False(t, a.Verify(sig[:10], msg, kp.PublicKey()))

	ops := m.Operations()
	require.Equal(t, 2.0, testutil.ToFloat64(ops.WithLabelValues(opGenerate, resultOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues(opSign, resultOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues(opVerify, resultOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues(opVerify, resultInvalid)))

	n, err := testutil.GatherAndCount(reg, "wasmcrypto_pqc_sign_seconds", "wasmcrypto_pqc_verify_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestNewRejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)
	_, err = New(reg)
	require.Error(t, err)
}

func TestInstrumentNilMetrics(t *testing.T) {
	p := dilithium.Default()
	require.Equal(t, p, Instrument(p, nil))
}
