package metrics

import (
	"time"

	"github.com/harun/pbrctl/pkg/pbr"
)

// Backend records metrics for every query passing through to a pbr.Backend
type Backend struct {
	next    pbr.Backend
	metrics *Metrics
}

// InstrumentBackend wraps next so its queries are counted and timed
func InstrumentBackend(next pbr.Backend, m *Metrics) *Backend {
	return &Backend{next: next, metrics: m}
}

func (b *Backend) GetSessionBuffer() ([]byte, error) {
	start := time.Now()
	buf, err := b.next.GetSessionBuffer()
	b.metrics.RecordQuery("get_session_buffer", time.Since(start), err)
	return buf, err
}

func (b *Backend) GetTagCount() (int, error) {
	start := time.Now()
	count, err := b.next.GetTagCount()
	b.metrics.RecordQuery("get_tag_count", time.Since(start), err)
	return count, err
}

func (b *Backend) GetTag(index int) (pbr.Tag, error) {
	start := time.Now()
	tag, err := b.next.GetTag(index)
	b.metrics.RecordQuery("get_tag", time.Since(start), err)
	return tag, err
}

func (b *Backend) GetPlaybackInfo(dataClass pbr.Signature) (pbr.PlaybackInfo, error) {
	start := time.Now()
	info, err := b.next.GetPlaybackInfo(dataClass)
	b.metrics.RecordQuery("get_playback_info", time.Since(start), err)
	return info, err
}
