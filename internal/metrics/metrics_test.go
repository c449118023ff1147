package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/harun/pbrctl/pkg/pbr"
	"github.com/harun/pbrctl/pkg/source/memory"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	require.NotNil(t, m)
	assert.NotNil(t, m.Registry())
	assert.NotNil(t, m.QueriesTotal)
	assert.NotNil(t, m.QueryDuration)
	assert.NotNil(t, m.CommandsTotal)
	assert.NotNil(t, m.DumpedBytesTotal)
}

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "success"},
		{fmt.Errorf("wrap: %w", pbr.ErrNotFound), "not_found"},
		{pbr.ErrInvalidArgument, "invalid_argument"},
		{pbr.ErrOutOfMemory, "out_of_memory"},
		{pbr.ErrAborted, "aborted"},
		{fmt.Errorf("disk on fire"), "aborted"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestInstrumentBackend(t *testing.T) {
	m := NewMetrics()
	session := memory.Session{
		Buffer: []byte{1, 2, 3},
		Tags:   []pbr.Tag{{Signature: pbr.CLISignature}},
		Playback: map[pbr.Signature]pbr.PlaybackInfo{
			pbr.PassThroughSignature: {CurrentOffset: 0},
		},
	}
	store := pbr.NewStore(InstrumentBackend(memory.New(session), m))

	_, err := pbr.Show(store)
	require.NoError(t, err)
	_, err = store.GetTag(5)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("get_playback_info", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("get_tag_count", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("get_tag", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("get_tag", "not_found")))
}

func TestWriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.RecordCommand("dump", nil)
	m.RecordDump(512)

	path := filepath.Join(t.TempDir(), "pbrctl.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `pbr_commands_total{command="dump",status="success"} 1`)
	assert.Contains(t, string(data), "pbr_dumped_bytes_total 512")
}
