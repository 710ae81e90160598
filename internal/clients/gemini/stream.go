package gemini

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/clique360/backend/internal/entity"
)

var dataPrefix = []byte("data: ")

// stream reads the SSE body line by line. Each "data:" event carries one
// generateContent response with a partial candidate.
type stream struct {
	body io.ReadCloser
	r    *bufio.Reader
}

func newStream(body io.ReadCloser) *stream {
	return &stream{
		body: body,
		r:    bufio.NewReader(body),
	}
}

type generateResponse struct {
	Candidates []struct {
		Content Content `json:"content"`
	} `json:"candidates"`
}

func (s *stream) Recv() (entity.ChatChunk, error) {
	for {
		line, err := s.r.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				return entity.ChatChunk{}, io.EOF
			}

			return entity.ChatChunk{}, fmt.Errorf("read stream: %w", err)
		}

		line = bytes.TrimSpace(line)

		data, ok := bytes.CutPrefix(line, dataPrefix)
		if !ok {
			// Comments, event names and blank keep-alive lines.
			continue
		}

		var resp generateResponse

		err = json.Unmarshal(data, &resp)
		if err != nil {
			return entity.ChatChunk{}, fmt.Errorf("%w: decode chunk: %s", entity.ErrProvider, err)
		}

		chunk := toChunk(resp)
		if chunk.Text == "" && len(chunk.FunctionCalls) == 0 {
			continue
		}

		return chunk, nil
	}
}

func (s *stream) Close() error {
	return s.body.Close()
}

func toChunk(resp generateResponse) entity.ChatChunk {
	var chunk entity.ChatChunk

	if len(resp.Candidates) == 0 {
		return chunk
	}

	for _, p := range resp.Candidates[0].Content.Parts {
		chunk.Text += p.Text

		if p.FunctionCall != nil {
			chunk.FunctionCalls = append(chunk.FunctionCalls, entity.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			})
		}
	}

	return chunk
}
