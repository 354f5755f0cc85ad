package model

import "fmt"

// Quality represents an audio quality tier offered by the stream endpoint.
//
// The catalog serves three tiers. The tier determines both the value of
// the stream request's quality parameter and the extension of the file
// written to disk.
type Quality int

const (
	// QualityMid is MP3 at 128 kbps.
	QualityMid Quality = iota + 1

	// QualityHigh is MP3 at 320 kbps.
	QualityHigh

	// QualityFLAC is lossless FLAC.
	QualityFLAC
)

// QualityFromFormat maps the --format flag value to a Quality.
//
// Accepted values:
//   - 1: MP3 128 kbps
//   - 2: MP3 320 kbps
//   - 3: FLAC
func QualityFromFormat(format int) (Quality, error) {
	switch format {
	case 1:
		return QualityMid, nil
	case 2:
		return QualityHigh, nil
	case 3:
		return QualityFLAC, nil
	default:
		return 0, fmt.Errorf("invalid format %d, must be 1, 2 or 3", format)
	}
}

// String returns the quality parameter value expected by the stream endpoint.
func (q Quality) String() string {
	switch q {
	case QualityMid:
		return "mid"
	case QualityHigh:
		return "high"
	case QualityFLAC:
		return "flac"
	default:
		return "unknown"
	}
}

// Extension returns the file extension for media of this quality, including the dot.
func (q Quality) Extension() string {
	if q == QualityFLAC {
		return ".flac"
	}
	return ".mp3"
}

// IsLossless reports whether the tier is FLAC.
func (q Quality) IsLossless() bool {
	return q == QualityFLAC
}
