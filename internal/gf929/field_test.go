package gf929

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpLogAreInverses(t *testing.T) {
	for v := 1; v < Prime; v++ {
		require.Equal(t, v, Exp(Log(v)), "Exp(Log(%d))", v)
	}
}

func TestExpIsPeriodic(t *testing.T) {
	require.Equal(t, Exp(0), Exp(Prime-1))
}

func TestModBaseNormalizesNegatives(t *testing.T) {
	require.Equal(t, modBase(Prime-2), modBase(-1))
	require.True(t, modBase(-1) >= 0 && modBase(-1) < Prime-1)
}
