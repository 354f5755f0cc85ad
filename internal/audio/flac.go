package audio

import (
	"fmt"
	"strconv"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// FLACTagger writes vorbis comments and a front cover picture block
// into a FLAC file.
type FLACTagger struct{}

// Apply replaces the file's vorbis comment block with one built from
// tags and swaps in artwork as the front cover. Empty fields are left
// out of the comment block entirely.
func (ft *FLACTagger) Apply(path string, tags TrackTags, artwork []byte) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse flac: %w", err)
	}

	cmtIdx := -1
	for idx, block := range f.Meta {
		if block.Type == flac.VorbisComment {
			cmtIdx = idx
			break
		}
	}

	cmt := flacvorbis.New()
	if tags.Title != "" {
		if err := cmt.Add(flacvorbis.FIELD_TITLE, tags.Title); err != nil {
			return fmt.Errorf("add title: %w", err)
		}
	}
	if tags.Artist != "" {
		if err := cmt.Add(flacvorbis.FIELD_ARTIST, tags.Artist); err != nil {
			return fmt.Errorf("add artist: %w", err)
		}
	}
	if tags.Album != "" {
		if err := cmt.Add(flacvorbis.FIELD_ALBUM, tags.Album); err != nil {
			return fmt.Errorf("add album: %w", err)
		}
	}
	if tags.Year != "" {
		if err := cmt.Add(flacvorbis.FIELD_DATE, tags.Year); err != nil {
			return fmt.Errorf("add date: %w", err)
		}
	}
	if tags.Position > 0 {
		if err := cmt.Add(flacvorbis.FIELD_TRACKNUMBER, strconv.Itoa(tags.Position)); err != nil {
			return fmt.Errorf("add track number: %w", err)
		}
	}

	cmtBlock := cmt.Marshal()
	if cmtIdx >= 0 {
		f.Meta[cmtIdx] = &cmtBlock
	} else {
		f.Meta = append(f.Meta, &cmtBlock)
	}

	if len(artwork) > 0 {
		if err := embedFrontCover(f, artwork); err != nil {
			return fmt.Errorf("embed cover: %w", err)
		}
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save flac: %w", err)
	}

	return nil
}

// embedFrontCover strips any existing picture blocks and appends
// artwork as the front cover.
func embedFrontCover(f *flac.File, artwork []byte) error {
	picture, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "Cover", artwork, "image/jpeg")
	if err != nil {
		return err
	}
	pictureBlock := picture.Marshal()

	for i := len(f.Meta) - 1; i >= 0; i-- {
		if f.Meta[i].Type == flac.Picture {
			f.Meta = append(f.Meta[:i], f.Meta[i+1:]...)
		}
	}
	f.Meta = append(f.Meta, &pictureBlock)

	return nil
}
