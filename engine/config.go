package engine

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/fireworks/parameter"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// EvictionPolicy selects which firework is dropped when the live cap is reached
type EvictionPolicy int

const (
	EvictOldest EvictionPolicy = iota
	EvictRandom
)

func (p EvictionPolicy) String() string {
	switch p {
	case EvictOldest:
		return "oldest"
	case EvictRandom:
		return "random"
	default:
		return fmt.Sprintf("EvictionPolicy(%d)", int(p))
	}
}

// ParseEvictionPolicy accepts "oldest" or "random"
func ParseEvictionPolicy(s string) (EvictionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oldest", "":
		return EvictOldest, nil
	case "random":
		return EvictRandom, nil
	default:
		return EvictOldest, fmt.Errorf("%w: unknown eviction policy %q", ErrInvalidConfig, s)
	}
}

// Config holds every tunable of the simulation
// Random draws use the form min + rand*range
type Config struct {
	// Seed for the simulation RNG, 0 seeds from the clock
	Seed uint64

	// Particles
	ParticleCount     int
	ParticleGravity   float64
	ParticleDrag      float64
	ParticleSpeed     float64
	ParticleSizeMin   float64
	ParticleSizeRange float64
	FadeMin           float64
	FadeRange         float64
	HueJitter         float64
	TwinkleChance     float64
	TwinkleBoost      float64

	// Rockets
	FireworkGravity  float64
	LaunchSpeedMin   float64
	LaunchSpeedRange float64
	LaunchDrift      float64
	HeartChance      float64
	RocketRadius     float64

	// Admission control, MaxFireworks 0 means unlimited
	MaxFireworks int
	Eviction     EvictionPolicy

	// Launcher timers, zero interval disables the timer
	LaunchInterval  time.Duration
	SpecialInterval time.Duration
	SpecialChance   float64
	CatchCount      int
	CatchSpacing    time.Duration

	// TrailAlpha is the per-frame black overlay opacity
	TrailAlpha float64

	SoundEnabled bool
}

// DefaultConfig returns the stock show
func DefaultConfig() *Config {
	return &Config{
		ParticleCount:     parameter.ParticleCount,
		ParticleGravity:   parameter.ParticleGravity,
		ParticleDrag:      parameter.ParticleDrag,
		ParticleSpeed:     parameter.ParticleSpeed,
		ParticleSizeMin:   parameter.ParticleSizeMin,
		ParticleSizeRange: parameter.ParticleSizeRange,
		FadeMin:           parameter.ParticleFadeMin,
		FadeRange:         parameter.ParticleFadeRange,
		HueJitter:         parameter.ParticleHueJitter,
		TwinkleChance:     parameter.TwinkleChance,
		TwinkleBoost:      parameter.TwinkleBoost,

		FireworkGravity:  parameter.FireworkGravity,
		LaunchSpeedMin:   parameter.LaunchSpeedMin,
		LaunchSpeedRange: parameter.LaunchSpeedRange,
		LaunchDrift:      parameter.LaunchDrift,
		HeartChance:      parameter.HeartChance,
		RocketRadius:     parameter.RocketRadius,

		MaxFireworks: parameter.MaxFireworks,
		Eviction:     EvictOldest,

		LaunchInterval:  parameter.LaunchInterval,
		SpecialInterval: parameter.SpecialInterval,
		SpecialChance:   parameter.SpecialChance,
		CatchCount:      parameter.CatchCount,
		CatchSpacing:    parameter.CatchSpacing,

		TrailAlpha: parameter.TrailAlpha,

		SoundEnabled: true,
	}
}

// LoadConfig returns DefaultConfig with FIREWORKS_* environment overrides applied
// Malformed values are ignored
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if seed := os.Getenv("FIREWORKS_SEED"); seed != "" {
		if val, err := strconv.ParseUint(seed, 10, 64); err == nil {
			cfg.Seed = val
		}
	}

	if limit := os.Getenv("FIREWORKS_MAX"); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil && val >= 0 {
			cfg.MaxFireworks = val
		}
	}

	if policy := os.Getenv("FIREWORKS_EVICTION"); policy != "" {
		if val, err := ParseEvictionPolicy(policy); err == nil {
			cfg.Eviction = val
		}
	}

	if interval := os.Getenv("FIREWORKS_LAUNCH_MS"); interval != "" {
		if val, err := strconv.Atoi(interval); err == nil && val >= 0 {
			cfg.LaunchInterval = time.Duration(val) * time.Millisecond
		}
	}

	if enabled := os.Getenv("FIREWORKS_SOUND"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.SoundEnabled = val
		}
	}

	return cfg
}

// Validate checks basic bounds
func (c *Config) Validate() error {
	switch {
	case c.ParticleCount < 0:
		return fmt.Errorf("%w: particle count %d is negative", ErrInvalidConfig, c.ParticleCount)
	case c.ParticleDrag <= 0 || c.ParticleDrag > 1:
		return fmt.Errorf("%w: particle drag %v outside (0,1]", ErrInvalidConfig, c.ParticleDrag)
	case c.FadeMin <= 0 || c.FadeRange < 0:
		return fmt.Errorf("%w: fade rate [%v,+%v] must be positive", ErrInvalidConfig, c.FadeMin, c.FadeRange)
	case c.FireworkGravity <= 0:
		return fmt.Errorf("%w: firework gravity %v must be positive to reach an apex", ErrInvalidConfig, c.FireworkGravity)
	case c.LaunchSpeedMin < 0 || c.LaunchSpeedRange < 0:
		return fmt.Errorf("%w: launch speed [%v,+%v] is negative", ErrInvalidConfig, c.LaunchSpeedMin, c.LaunchSpeedRange)
	case c.MaxFireworks < 0:
		return fmt.Errorf("%w: max fireworks %d is negative", ErrInvalidConfig, c.MaxFireworks)
	case c.Eviction != EvictOldest && c.Eviction != EvictRandom:
		return fmt.Errorf("%w: eviction policy %v", ErrInvalidConfig, c.Eviction)
	case c.LaunchInterval < 0 || c.SpecialInterval < 0 || c.CatchSpacing < 0:
		return fmt.Errorf("%w: negative launcher interval", ErrInvalidConfig)
	case c.CatchCount < 0:
		return fmt.Errorf("%w: catch count %d is negative", ErrInvalidConfig, c.CatchCount)
	}

	for name, p := range map[string]float64{
		"twinkle chance": c.TwinkleChance,
		"heart chance":   c.HeartChance,
		"special chance": c.SpecialChance,
		"trail alpha":    c.TrailAlpha,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s %v outside [0,1]", ErrInvalidConfig, name, p)
		}
	}

	return nil
}
