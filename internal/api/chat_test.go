package api_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clique360/backend/internal/entity"
)

func TestHandler_Chat_SSE(t *testing.T) {
	t.Parallel()

	ts := newServer(t)

	stream := &fakeStream{chunks: []entity.ChatChunk{
		{Text: "Claro, "},
		{Text: "a abrir os clientes."},
		{FunctionCalls: []entity.FunctionCall{{
			Name: entity.FunctionNavigateTo,
			Args: json.RawMessage(`{"view":"clients"}`),
		}}},
	}}

	ts.provider.EXPECT().
		StreamGenerateContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(stream, nil)

	resp := ts.chatRequest(t, `{"message":"mostra os clientes","history":[]}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	frames := readFrames(t, resp.Body)
	require.Len(t, frames, 5)

	require.Equal(t, "Claro, ", frames[0].Text)
	require.Equal(t, "a abrir os clientes.", frames[1].Text)

	require.Len(t, frames[2].FunctionCalls, 1)
	require.Equal(t, entity.FunctionNavigateTo, frames[2].FunctionCalls[0].Name)

	// The dispatched call is confirmed in a follow-up text frame.
	require.Equal(t, "Navegado para a secção clients.", frames[3].Text)

	require.True(t, frames[4].Done)
}

func TestHandler_Chat_PreStreamError(t *testing.T) {
	t.Parallel()

	ts := newServer(t)

	ts.provider.EXPECT().
		StreamGenerateContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, entity.ErrProvider)

	resp := ts.chatRequest(t, `{"message":"olá","history":[]}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}

func TestHandler_Chat_EmptyMessage(t *testing.T) {
	t.Parallel()

	ts := newServer(t)

	resp := ts.chatRequest(t, `{"message":"","history":[]}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandler_Chat_MidStreamError(t *testing.T) {
	t.Parallel()

	ts := newServer(t)

	stream := &fakeStream{
		chunks: []entity.ChatChunk{{Text: "parcial"}},
		err:    entity.ErrProvider,
	}

	ts.provider.EXPECT().
		StreamGenerateContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(stream, nil)

	resp := ts.chatRequest(t, `{"message":"olá","history":[]}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	frames := readFrames(t, resp.Body)
	require.Len(t, frames, 3)
	require.Equal(t, "parcial", frames[0].Text)
	require.Contains(t, frames[1].Text, "Erro no servidor")
	require.True(t, frames[2].Done)
}

func (ts *tester) chatRequest(t *testing.T, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.server.URL+"/api/chat", strings.NewReader(body))
	require.NoError(t, err)

	resp, err := ts.server.Client().Do(req)
	require.NoError(t, err)

	return resp
}

func readFrames(t *testing.T, body io.Reader) []entity.ChatChunk {
	t.Helper()

	var frames []entity.ChatChunk

	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())

		data, ok := bytes.CutPrefix(line, []byte("data: "))
		if !ok {
			continue
		}

		var chunk entity.ChatChunk
		require.NoError(t, json.Unmarshal(data, &chunk))

		frames = append(frames, chunk)
	}

	require.NoError(t, scanner.Err())

	return frames
}

// fakeStream yields its chunks, then err (io.EOF when unset).
type fakeStream struct {
	chunks []entity.ChatChunk
	err    error
	i      int
}

func (s *fakeStream) Recv() (entity.ChatChunk, error) {
	if s.i < len(s.chunks) {
		chunk := s.chunks[s.i]
		s.i++

		return chunk, nil
	}

	if s.err != nil {
		return entity.ChatChunk{}, s.err
	}

	return entity.ChatChunk{}, io.EOF
}

func (s *fakeStream) Close() error { return nil }
