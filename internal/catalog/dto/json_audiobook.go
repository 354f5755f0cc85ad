package dto

import "github.com/handiism/zvuk-downloader/internal/model"

// GraphQLRequest is the request envelope for /api/v1/graphql.
type GraphQLRequest struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	Query         string         `json:"query"`
}

// GraphQLError is one error entry in a GraphQL response.
type GraphQLError struct {
	Message string `json:"message"`
}

// AudiobookResponse is the response of the getAudioBookData query.
type AudiobookResponse struct {
	Data struct {
		Book *JSONAudiobook `json:"book"`
	} `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

// JSONAudiobook represents an audiobook with its chapter list.
type JSONAudiobook struct {
	ID         int64         `json:"id"`
	Title      string        `json:"title"`
	AuthorName string        `json:"authorName"`
	Chapters   []JSONChapter `json:"chapters"`
}

// JSONChapter is one chapter reference inside an audiobook.
type JSONChapter struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// ToAudiobook converts a JSONAudiobook to a model.Audiobook. Chapters
// are numbered by their order in the listing, starting at 1.
func (ja *JSONAudiobook) ToAudiobook() *model.Audiobook {
	book := &model.Audiobook{
		ID:     formatID(ja.ID),
		Title:  ja.Title,
		Author: ja.AuthorName,
	}
	for i, ch := range ja.Chapters {
		book.Chapters = append(book.Chapters, model.Chapter{
			ID:       formatID(ch.ID),
			Title:    ch.Title,
			Position: i + 1,
		})
	}
	return book
}

// ChapterResponse is the response of the getAudioBookChapter query.
type ChapterResponse struct {
	Data struct {
		Chapter *JSONChapterDetail `json:"chapter"`
	} `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

// JSONChapterDetail carries the stream reference for one chapter. The
// mid field is the direct audio URL.
type JSONChapterDetail struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Mid   string `json:"mid"`
}

// ProfileResponse is the envelope of /api/v2/tiny/profile. Only the
// subscription flag matters here.
type ProfileResponse struct {
	Result struct {
		IsPrime bool `json:"is_prime"`
	} `json:"result"`
}
