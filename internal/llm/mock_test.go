package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProviderFIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`)},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)

	resp, err := mock.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":1}`, string(resp.Content))
	assert.Equal(t, "mock", resp.Model)

	resp, err = mock.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":2}`, string(resp.Content))

	// Queue drained.
	_, err = mock.Generate(context.Background(), Request{})
	var unavailable *ErrProviderUnavailable
	require.ErrorAs(t, err, &unavailable)

	assert.Equal(t, 3, mock.CallCount())
}

func TestMockProviderCannedError(t *testing.T) {
	boom := errors.New("boom")
	mock := NewMockProvider(MockResponse{Err: boom})

	_, err := mock.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, boom)
}

func TestMockProviderRecordsRequests(t *testing.T) {
	mock := NewMockProvider()
	req := Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "hello"}}}

	_, _ = mock.Generate(context.Background(), req)

	require.Len(t, mock.Calls, 1)
	assert.Equal(t, "sys", mock.Calls[0].System)
	assert.Equal(t, "hello", mock.Calls[0].Messages[0].Content)
}

func TestMockProviderAddResponse(t *testing.T) {
	mock := NewMockProvider()
	mock.AddResponse(MockResponse{Content: json.RawMessage(`{}`)})

	resp, err := mock.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "end", resp.StopReason)
}
