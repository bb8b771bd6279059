package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(path string) error {
	_, err := l.decoded(path)
	return err
}

// LoadSFX returns a new player for a cached sound effect each time.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	data, err := l.decoded(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

func (l *AudioLoader) decoded(path string) ([]byte, error) {
	if cached, ok := l.sfxCache[path]; ok {
		return cached, nil
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".wav" {
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	data, err := audioFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}

	l.sfxCache[path] = decoded
	return decoded, nil
}
