package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port            int
	WhisperURL      string
	OpenAIKey       string
	WhisperModel    string
	Language        string
	MaxVideoSeconds int
	MaxUploadBytes  int64
	CORSOrigins     []string
}

func Load() *Config {
	port, _ := strconv.Atoi(getEnv("PORT", "5000"))
	maxSeconds, _ := strconv.Atoi(getEnv("MAX_VIDEO_SECONDS", "120"))
	maxUpload, _ := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "209715200"), 10, 64) // 200MB

	// CORS origins: comma-separated list or "*" (default)
	corsOrigins := []string{"*"}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		corsOrigins = make([]string, 0, len(origins))
		for _, o := range origins {
			o = strings.TrimSpace(o)
			if o != "" {
				corsOrigins = append(corsOrigins, o)
			}
		}
	}

	return &Config{
		Port:            port,
		WhisperURL:      os.Getenv("WHISPER_URL"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		WhisperModel:    os.Getenv("WHISPER_MODEL"),
		Language:        getEnv("WHISPER_LANGUAGE", "en"),
		MaxVideoSeconds: maxSeconds,
		MaxUploadBytes:  maxUpload,
		CORSOrigins:     corsOrigins,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
