package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/tauclang/tauc/internal/diag"
	"github.com/tauclang/tauc/internal/token"
)

func TestRecordCompile_SuccessIncrementsSuccessCounter(t *testing.T) {
	before := testutil.ToFloat64(compileSuccess)
	RecordCompile(nil)
	require.Equal(t, before+1, testutil.ToFloat64(compileSuccess))
}

func TestRecordCompile_FailureIncrementsKindCounter(t *testing.T) {
	before := testutil.ToFloat64(compileFailures.WithLabelValues(string(diag.TypeError)))
	RecordCompile(diag.New(diag.TypeError, token.Span{}, "boom"))
	require.Equal(t, before+1, testutil.ToFloat64(compileFailures.WithLabelValues(string(diag.TypeError))))
}
