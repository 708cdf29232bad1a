package media

import (
	"path/filepath"
	"strings"
)

// uploadExtensions are the video container formats accepted for transcription.
var uploadExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true,
}

func IsSupportedVideo(name string) bool {
	return uploadExtensions[strings.ToLower(filepath.Ext(name))]
}
