package systems

import (
	"log"
	"sync"

	"github.com/automoto/penaltykick/assets"
	"github.com/automoto/penaltykick/components"
	cfg "github.com/automoto/penaltykick/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - an ebiten audio context may only be created once
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Printf("Warning: preload sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays the sound effects queued since the last frame.
func UpdateAudio(ecs *ecs.ECS) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	initGlobalAudio()

	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID, audioData.SFXVolume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID, volume float64) {
	if volume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// QueueSFX queues a sound effect for the next UpdateAudio.
func QueueSFX(ecs *ecs.ECS, sound cfg.SoundID) {
	audioData := getOrCreateAudio(ecs)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

func getOrCreateAudio(ecs *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  cfg.Audio.DefaultSFXVol,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
