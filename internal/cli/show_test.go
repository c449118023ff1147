package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harun/pbrctl/pkg/pbr"
	"github.com/harun/pbrctl/pkg/source/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowSession(t *testing.T) {
	t.Run("table marks current tag", func(t *testing.T) {
		path := writeImage(t, sampleSession())

		out, _, err := execute(t, "show", "session", "--source", path)
		require.NoError(t, err)

		assert.Contains(t, out, "TagId")
		assert.Contains(t, out, "0x0 ")
		assert.Contains(t, out, "0x1*")
		assert.Contains(t, out, "show -region")
		assert.Equal(t, 1, strings.Count(out, "*"))
	})

	t.Run("list format", func(t *testing.T) {
		path := writeImage(t, sampleSession())

		out, _, err := execute(t, "show", "session", "--source", path, "-o", "list")
		require.NoError(t, err)

		assert.Contains(t, out, "---TagId=0x1*---\n   ExitCode=0\n   CliArgs=show -region\n")
		assert.Contains(t, out, "---TagId=0x2---\n   ExitCode=3\n   CliArgs=show -goal\n")
	})

	t.Run("no matching tag renders without selection", func(t *testing.T) {
		session := sampleSession()
		session.Playback[pbr.PassThroughSignature] = pbr.PlaybackInfo{CurrentOffset: 999}
		path := writeImage(t, session)

		out, _, err := execute(t, "show", "session", "--source", path, "-o", "json")
		require.NoError(t, err)

		var listing pbr.Listing
		require.NoError(t, json.Unmarshal([]byte(out), &listing))
		assert.Equal(t, pbr.NoCurrentTag, listing.Current)
		assert.Len(t, listing.Rows, 3)
		for _, row := range listing.Rows {
			assert.False(t, row.Selected)
		}
	})

	t.Run("empty session", func(t *testing.T) {
		path := writeImage(t, memory.Session{Tags: []pbr.Tag{}})

		out, _, err := execute(t, "show", "session", "--source", path, "-o", "json")
		require.NoError(t, err)

		var listing pbr.Listing
		require.NoError(t, json.Unmarshal([]byte(out), &listing))
		assert.Empty(t, listing.Rows)
	})

	t.Run("missing source", func(t *testing.T) {
		_, _, err := execute(t, "show", "session", "--source", filepath.Join(t.TempDir(), "none.json"))
		assert.ErrorIs(t, err, pbr.ErrNotFound)
	})

	t.Run("sqlite driver", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "session.db")
		_, _, err := execute(t, "convert", writeImage(t, sampleSession()), "--db", dbPath)
		require.NoError(t, err)

		out, _, err := execute(t, "show", "session", "--driver", "sqlite", "--source", dbPath, "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "0x1*")
		assert.Contains(t, out, "current: 1")
	})
}
