package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutput(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	versionCmd.Run(versionCmd, nil)

	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("styler ")), buf.String())
}

func TestResolveVersionPrefersStamped(t *testing.T) {
	old := version
	version = "1.2.3"
	defer func() { version = old }()

	require.Equal(t, "1.2.3", resolveVersion())
}
