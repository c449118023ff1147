package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/harun/pbrctl/pkg/pbr"
	"github.com/harun/pbrctl/pkg/source/image"
	"github.com/harun/pbrctl/pkg/source/memory"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args after restoring every flag default
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := GetRootCmd()
	resetFlags(cmd)
	t.Setenv("HOME", t.TempDir())

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func sampleSession() memory.Session {
	return memory.Session{
		Buffer: []byte{0x50, 0x42, 0x52, 0x00, 0x01, 0xff},
		Tags: []pbr.Tag{
			{Signature: pbr.CLISignature, Name: "show -dimm", Description: "0", Partitions: []pbr.PartitionInfo{
				{Signature: pbr.PassThroughSignature, CurrentOffset: 64},
			}},
			{Signature: pbr.CLISignature, Name: "show -region", Description: "0", Partitions: []pbr.PartitionInfo{
				{Signature: pbr.PassThroughSignature, CurrentOffset: 128},
			}},
			{Signature: pbr.CLISignature, Name: "show -goal", Description: "3", Partitions: []pbr.PartitionInfo{
				{Signature: pbr.PassThroughSignature, CurrentOffset: 256},
			}},
		},
		Playback: map[pbr.Signature]pbr.PlaybackInfo{
			pbr.PassThroughSignature: {TotalItems: 3, TotalSize: 2048, CurrentOffset: 128},
		},
	}
}

func writeImage(t *testing.T, session memory.Session) string {
	t.Helper()
	data, err := image.Encode(session)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}
