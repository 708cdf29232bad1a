package media

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

type probeResult struct {
	Format  probeFormat   `json:"format"`
	Streams []probeStream `json:"streams"`
}

type probeFormat struct {
	Duration string `json:"duration"`
}

type probeStream struct {
	CodecType string `json:"codec_type"` // video, audio, subtitle
}

// Info describes the properties of a media file relevant to transcription.
type Info struct {
	Duration float64 // seconds
	HasAudio bool
}

// Probe inspects a media file with ffprobe.
func Probe(filePath string) (*Info, error) {
	cmd := exec.Command("ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		filePath,
	)

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe: %w", err)
	}

	return parseProbe(output)
}

func parseProbe(output []byte) (*Info, error) {
	var result probeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w", err)
	}

	info := &Info{}
	if result.Format.Duration != "" {
		d, err := strconv.ParseFloat(result.Format.Duration, 64)
		if err != nil {
			return nil, fmt.Errorf("parse duration %q: %w", result.Format.Duration, err)
		}
		info.Duration = d
	}

	for _, s := range result.Streams {
		if s.CodecType == "audio" {
			info.HasAudio = true
			break
		}
	}

	return info, nil
}
