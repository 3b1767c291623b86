package audio

import (
	"testing"

	"github.com/lixenwraith/fireworks/parameter"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected default master volume 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != parameter.AudioSampleRate {
		t.Errorf("Expected default sample rate %d, got %d", parameter.AudioSampleRate, cfg.SampleRate)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for %s to be set", st)
		}
	}
}

// TestLoadAudioConfigEnv verifies environment overrides with clamping
func TestLoadAudioConfigEnv(t *testing.T) {
	t.Setenv("FIREWORKS_SOUND", "0")
	t.Setenv("FIREWORKS_MASTER_VOLUME", "150")
	t.Setenv("FIREWORKS_SFX_VOLUMES", `{"explosion": 0.25, "launch": -2, "bogus": 1}`)
	t.Setenv("FIREWORKS_SAMPLE_RATE", "44100")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected master volume clamped to 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundExplosion] != 0.25 {
		t.Errorf("Expected explosion volume 0.25, got %f", cfg.EffectVolumes[SoundExplosion])
	}
	if cfg.EffectVolumes[SoundLaunch] != 0 {
		t.Errorf("Expected launch volume clamped to 0, got %f", cfg.EffectVolumes[SoundLaunch])
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected sample rate 44100, got %d", cfg.SampleRate)
	}
}

// TestLoadAudioConfigInvalid verifies malformed values keep defaults
func TestLoadAudioConfigInvalid(t *testing.T) {
	t.Setenv("FIREWORKS_MASTER_VOLUME", "loud")
	t.Setenv("FIREWORKS_SFX_VOLUMES", "{not json")
	t.Setenv("FIREWORKS_SAMPLE_RATE", "-1")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults, got volume %f rate %d", cfg.MasterVolume, cfg.SampleRate)
	}
	if cfg.EffectVolumes[SoundExplosion] != def.EffectVolumes[SoundExplosion] {
		t.Errorf("Expected default explosion volume, got %f", cfg.EffectVolumes[SoundExplosion])
	}
}
