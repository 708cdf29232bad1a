package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// ExtractAudio uses FFmpeg to extract a video's audio track as WAV 16kHz mono
// (the input format whisper expects). The caller removes the returned file.
func ExtractAudio(ctx context.Context, videoPath string) (string, error) {
	tmpFile, err := os.CreateTemp("", "transcribe-audio-*.wav")
	if err != nil {
		return "", err
	}
	tmpFile.Close()

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-hide_banner",
		"-loglevel", "error",
		"-i", videoPath,
		"-vn", // no video
		"-acodec", "pcm_s16le",
		"-ar", "16000", // 16kHz
		"-ac", "1", // mono
		"-y", // overwrite
		tmpFile.Name(),
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("ffmpeg: %s: %w", string(output), err)
	}

	return tmpFile.Name(), nil
}

// CheckFFmpeg reports whether the ffmpeg binary is available on PATH.
func CheckFFmpeg() bool {
	return exec.Command("ffmpeg", "-version").Run() == nil
}
