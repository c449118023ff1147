package pbr

import (
	"github.com/stretchr/testify/mock"
)

// MockBackend is a mock implementation of Backend
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) GetSessionBuffer() ([]byte, error) {
	args := m.Called()
	buf, _ := args.Get(0).([]byte)
	return buf, args.Error(1)
}

func (m *MockBackend) GetTagCount() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockBackend) GetTag(index int) (Tag, error) {
	args := m.Called(index)
	return args.Get(0).(Tag), args.Error(1)
}

func (m *MockBackend) GetPlaybackInfo(dataClass Signature) (PlaybackInfo, error) {
	args := m.Called(dataClass)
	return args.Get(0).(PlaybackInfo), args.Error(1)
}

// fixture is a minimal in-package Backend over canned data
type fixture struct {
	buffer   []byte
	tags     []Tag
	playback PlaybackInfo
}

func (f *fixture) GetSessionBuffer() ([]byte, error) {
	return f.buffer, nil
}

func (f *fixture) GetTagCount() (int, error) {
	return len(f.tags), nil
}

func (f *fixture) GetTag(index int) (Tag, error) {
	if index >= len(f.tags) {
		return Tag{}, ErrNotFound
	}
	return f.tags[index], nil
}

func (f *fixture) GetPlaybackInfo(dataClass Signature) (PlaybackInfo, error) {
	if dataClass != PassThroughSignature {
		return PlaybackInfo{}, ErrNotFound
	}
	return f.playback, nil
}

func cliTag(name string, passThroughOffset uint32) Tag {
	return Tag{
		Signature:   CLISignature,
		Name:        name,
		Description: "0",
		Partitions: []PartitionInfo{
			{Signature: Sig32('S', 'M', 'B', 'I'), CurrentOffset: 7},
			{Signature: PassThroughSignature, CurrentOffset: passThroughOffset},
		},
	}
}
