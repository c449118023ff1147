package pbr

import "fmt"

// PartitionInfo describes one partition of a tag's recorded data.
type PartitionInfo struct {
	Signature     Signature `json:"signature" yaml:"signature"`
	CurrentOffset uint32    `json:"current_offset" yaml:"current_offset"`
}

// Tag is one recorded command invocation.
// Name and Description are empty when the backend has none.
type Tag struct {
	Signature   Signature       `json:"signature" yaml:"signature"`
	Name        string          `json:"name,omitempty" yaml:"name,omitempty"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Partitions  []PartitionInfo `json:"partitions,omitempty" yaml:"partitions,omitempty"`
}

// PlaybackInfo is the aggregate playback state of one data class.
type PlaybackInfo struct {
	TotalItems    uint32 `json:"total_items" yaml:"total_items"`
	TotalSize     uint32 `json:"total_size" yaml:"total_size"`
	CurrentOffset uint32 `json:"current_offset" yaml:"current_offset"`
}

// IsCLI reports whether the tag was recorded for a CLI invocation.
func (t Tag) IsCLI() bool {
	return t.Signature == CLISignature
}

// PassThroughPartition returns the tag's pass-through partition, if any.
func (t Tag) PassThroughPartition() (PartitionInfo, bool) {
	for _, p := range t.Partitions {
		if p.Signature == PassThroughSignature {
			return p, true
		}
	}
	return PartitionInfo{}, false
}

// Validate checks that the tag holds at most one pass-through partition.
func (t Tag) Validate() error {
	count := 0
	for _, p := range t.Partitions {
		if p.Signature == PassThroughSignature {
			count++
		}
	}
	if count > 1 {
		return fmt.Errorf("%w: tag has %d pass-through partitions", ErrInvalidArgument, count)
	}
	return nil
}

// Clone returns a deep copy of the tag.
func (t Tag) Clone() Tag {
	out := t
	if t.Partitions != nil {
		out.Partitions = make([]PartitionInfo, len(t.Partitions))
		copy(out.Partitions, t.Partitions)
	}
	return out
}
