package models

import "time"

// AppearanceType defines the closed set of media appearance kinds.
type AppearanceType string

const (
	AppearanceTypePodcast   AppearanceType = "podcast"
	AppearanceTypeYouTube   AppearanceType = "youtube"
	AppearanceTypeTalk      AppearanceType = "talk"
	AppearanceTypeInterview AppearanceType = "interview"
)

// IsValid reports whether t is one of the known appearance types.
func (t AppearanceType) IsValid() bool {
	switch t {
	case AppearanceTypePodcast, AppearanceTypeYouTube, AppearanceTypeTalk, AppearanceTypeInterview:
		return true
	}
	return false
}

// Appearance is one external media mention: a podcast episode, YouTube
// video, conference talk, or interview.
type Appearance struct {
	ID          string         `json:"id" yaml:"id"`
	Type        AppearanceType `json:"type" yaml:"type"`
	Title       string         `json:"title" yaml:"title"`
	Date        time.Time      `json:"date" yaml:"date"` // used only for descending sort
	URL         string         `json:"url" yaml:"url"`
	ShowArtwork string         `json:"show_artwork,omitempty" yaml:"show_artwork"`
	Featured    bool           `json:"featured,omitempty" yaml:"featured"`
}
