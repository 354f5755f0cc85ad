package audio

import (
	"fmt"
	"strconv"

	"github.com/bogem/id3v2"
)

// MP3Tagger writes ID3v2 frames into an MP3 file.
type MP3Tagger struct{}

// Apply writes tags as ID3v2.4 frames. An existing tag is parsed first
// so frames not covered here survive; the attached picture is replaced
// when artwork is given.
func (mt *MP3Tagger) Apply(path string, tags TrackTags, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open mp3 for tagging: %w", err)
	}
	defer tag.Close()

	tag.SetTitle(tags.Title)
	tag.SetArtist(tags.Artist)
	tag.SetAlbum(tags.Album)

	if tags.Artist != "" {
		tag.DeleteFrames("TPE2")
		tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, tags.Artist)
	}
	if tags.Year != "" {
		tag.DeleteFrames("TYER")
		tag.AddTextFrame("TYER", id3v2.EncodingUTF8, tags.Year)
	}
	if tags.Position > 0 {
		tag.DeleteFrames("TRCK")
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, strconv.Itoa(tags.Position))
	}

	if len(artwork) > 0 {
		tag.DeleteFrames(tag.CommonID("Attached picture"))
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     artwork,
		})
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save mp3 tags: %w", err)
	}

	return nil
}
