package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/handiism/zvuk-downloader/internal/catalog/dto"
	"github.com/handiism/zvuk-downloader/internal/model"
)

// Audiobooks live behind the GraphQL endpoint rather than the tiny
// REST API. The two queries below are the ones the web player issues.
const (
	audiobookQuery = `
query getAudioBookData($id: Int!) {
  book: audioBook(id: $id) {
    id
    title
    authorName
    chapters {
      id
      title
    }
  }
}
`

	chapterQuery = `
query getAudioBookChapter($id: Int!) {
  chapter(id: $id) {
    id
    title
    mid
  }
}
`
)

// GetAudiobook fetches an audiobook's metadata and chapter list.
func (c *Client) GetAudiobook(ctx context.Context, id string) (*model.Audiobook, error) {
	numID, err := strconv.Atoi(id)
	if err != nil {
		return nil, fmt.Errorf("audiobook id %q is not numeric", id)
	}

	var resp dto.AudiobookResponse
	if err := c.graphql(ctx, "getAudioBookData", audiobookQuery, numID, &resp); err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("audiobook %s: graphql: %s", id, resp.Errors[0].Message)
	}
	if resp.Data.Book == nil {
		return nil, fmt.Errorf("audiobook %s not found", id)
	}
	return resp.Data.Book.ToAudiobook(), nil
}

// GetChapterStreamURL fetches the direct audio URL for one chapter.
func (c *Client) GetChapterStreamURL(ctx context.Context, chapterID string) (string, error) {
	numID, err := strconv.Atoi(chapterID)
	if err != nil {
		return "", fmt.Errorf("chapter id %q is not numeric", chapterID)
	}

	var resp dto.ChapterResponse
	if err := c.graphql(ctx, "getAudioBookChapter", chapterQuery, numID, &resp); err != nil {
		return "", err
	}
	if len(resp.Errors) > 0 {
		return "", fmt.Errorf("chapter %s: graphql: %s", chapterID, resp.Errors[0].Message)
	}
	if resp.Data.Chapter == nil {
		return "", fmt.Errorf("chapter %s not found", chapterID)
	}
	if resp.Data.Chapter.Mid == "" {
		return "", fmt.Errorf("chapter %s has no stream url", chapterID)
	}
	return resp.Data.Chapter.Mid, nil
}

// graphql posts one query to the GraphQL endpoint and decodes the
// response into out.
func (c *Client) graphql(ctx context.Context, operation, query string, id int, out any) error {
	payload, err := json.Marshal(dto.GraphQLRequest{
		OperationName: operation,
		Variables:     map[string]any{"id": id},
		Query:         query,
	})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", operation, err)
	}

	url := fmt.Sprintf("%s/api/v1/graphql", c.BaseURL)
	body, err := c.client.Post(ctx, url, payload)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}
