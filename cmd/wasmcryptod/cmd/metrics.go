package cmd

import (
	"io"

	"github.com/prometheus/common/expfmt"

	"wasmcrypto/app"
)

// printMetrics writes the app registry to w in the Prometheus text format.
func printMetrics(w io.Writer, a *app.App) error {
	families, err := a.Registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
