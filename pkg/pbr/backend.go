package pbr

// Backend is the query service that owns the live PBR session.
// Implementations return ErrNotFound when the requested item does not exist
// and wrap every other failure with ErrAborted.
type Backend interface {
	// GetSessionBuffer returns the raw session bytes. A nil result means no session buffer.
	GetSessionBuffer() ([]byte, error)

	// GetTagCount returns the number of recorded tags.
	GetTagCount() (int, error)

	// GetTag returns the tag at index in recording order.
	GetTag(index int) (Tag, error)

	// GetPlaybackInfo returns aggregate playback state for one data class.
	GetPlaybackInfo(dataClass Signature) (PlaybackInfo, error)
}
