package pbr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagValidate(t *testing.T) {
	t.Run("no partitions", func(t *testing.T) {
		assert.NoError(t, Tag{Signature: CLISignature}.Validate())
	})

	t.Run("single pass-through partition", func(t *testing.T) {
		assert.NoError(t, cliTag("a", 10).Validate())
	})

	t.Run("two pass-through partitions", func(t *testing.T) {
		tag := cliTag("a", 10)
		tag.Partitions = append(tag.Partitions, PartitionInfo{Signature: PassThroughSignature, CurrentOffset: 20})
		assert.ErrorIs(t, tag.Validate(), ErrInvalidArgument)
	})
}

func TestTagPassThroughPartition(t *testing.T) {
	part, ok := cliTag("a", 128).PassThroughPartition()
	assert.True(t, ok)
	assert.Equal(t, uint32(128), part.CurrentOffset)

	_, ok = Tag{Signature: CLISignature}.PassThroughPartition()
	assert.False(t, ok)
}

func TestTagClone(t *testing.T) {
	orig := cliTag("a", 1)
	clone := orig.Clone()
	clone.Partitions[1].CurrentOffset = 99
	assert.Equal(t, uint32(1), orig.Partitions[1].CurrentOffset)

	empty := Tag{}.Clone()
	assert.Nil(t, empty.Partitions)
}
