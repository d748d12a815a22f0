package soundscape

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"focusdeck/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBucket = "focusdeck-audio"

func objectChannel(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}

func TestList(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, testBucket).Return(true, nil)
	client.On("ListObjects", mock.Anything, testBucket, mock.Anything).Return(objectChannel(
		minio.ObjectInfo{Key: "soundscapes/rain.mp3", Size: 1024},
		minio.ObjectInfo{Key: "soundscapes/cover.png", Size: 99},
		minio.ObjectInfo{Key: "soundscapes/cafe.ogg", Size: 2048},
	))

	scapes, err := NewService(client, testBucket, nil).List(context.Background())
	require.NoError(t, err)

	require.Len(t, scapes, 2, "non-audio objects are skipped")
	assert.Equal(t, "cafe", scapes[0].Name)
	assert.Equal(t, "audio/ogg", scapes[0].ContentType)
	assert.Equal(t, "rain", scapes[1].Name)
	assert.EqualValues(t, 1024, scapes[1].SizeBytes)
	client.AssertExpectations(t)
}

func TestList_MissingBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, testBucket).Return(false, nil)

	_, err := NewService(client, testBucket, nil).List(context.Background())
	assert.ErrorContains(t, err, "does not exist")
}

func TestStream(t *testing.T) {
	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, testBucket, "soundscapes/rain.mp3", mock.Anything).
		Return(minio.ObjectInfo{Key: "soundscapes/rain.mp3", Size: 1024}, nil)
	client.On("GetObject", mock.Anything, testBucket, "soundscapes/rain.mp3", mock.Anything).
		Return(io.NopCloser(strings.NewReader("audio-bytes")), nil)

	reader, info, err := NewService(client, testBucket, nil).Stream(context.Background(), "rain.mp3")
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "rain", info.Name)
	assert.Equal(t, "audio/mpeg", info.ContentType)
	assert.EqualValues(t, 1024, info.SizeBytes)

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "audio-bytes", string(data))
}

func TestStream_RejectsBadNames(t *testing.T) {
	client := new(mocks.Client)
	svc := NewService(client, testBucket, nil)

	for _, name := range []string{
		"../secret.mp3",
		"rain.png",
		"rain",
		".hidden.mp3",
		"Rain.MP3/../../etc",
	} {
		_, _, err := svc.Stream(context.Background(), name)
		assert.Error(t, err, "name %q", name)
	}
	client.AssertNotCalled(t, "GetObject")
}

func TestUpload(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, testBucket, "soundscapes/wind.m4a",
		mock.Anything, int64(11), mock.Anything).
		Return(minio.UploadInfo{Size: 11}, nil)

	svc := NewService(client, testBucket, nil)
	err := svc.Upload(context.Background(), "wind.m4a", strings.NewReader("audio-bytes"), 11)
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestUpload_RejectsUnsupportedFiles(t *testing.T) {
	client := new(mocks.Client)
	svc := NewService(client, testBucket, nil)

	for _, name := range []string{"cover.png", "../evil.mp3", "notes.txt"} {
		err := svc.Upload(context.Background(), name, strings.NewReader(""), 0)
		assert.Error(t, err, "name %q", name)
	}
	client.AssertNotCalled(t, "PutObject")
}

func TestStream_StatFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, testBucket, "soundscapes/gone.mp3", mock.Anything).
		Return(minio.ObjectInfo{}, fmt.Errorf("not found"))

	_, _, err := NewService(client, testBucket, nil).Stream(context.Background(), "gone.mp3")
	assert.Error(t, err)
	client.AssertNotCalled(t, "GetObject")
}
