package types

import "fmt"

type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// MipmapTarget is one density bucket of the Android resource tree.
type MipmapTarget struct {
	Folder string `json:"folder"`
	Size   Size   `json:"size"`
}

// FolderResult lists the files written into a single mipmap folder.
type FolderResult struct {
	Folder string   `json:"folder"`
	Size   Size     `json:"size"`
	Files  []string `json:"files"`
}

type Report struct {
	SourceSize       Size           `json:"sourceSize"`
	Folders          []FolderResult `json:"folders"`
	Skipped          []string       `json:"skipped"`
	PublicDirCreated bool           `json:"publicDirCreated"`
	WebIconPath      string         `json:"webIconPath"`
	WebIconSize      Size           `json:"webIconSize"`
}
