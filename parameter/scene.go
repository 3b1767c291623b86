package parameter

import "time"

// Balloons
const (
	BalloonCount        = 15
	BalloonSizeMin      = 20.0
	BalloonSizeRange    = 20.0
	BalloonSpeedMin     = 0.5
	BalloonSpeedRange   = 0.5
	BalloonWobbleMin    = 0.01
	BalloonWobbleRange  = 0.02
	BalloonWobbleAmp    = 0.5
	BalloonOpacityMin   = 0.8
	BalloonOpacityRange = 0.2
	// BalloonRespawnDepth is how far below the bottom edge balloons respawn
	BalloonRespawnDepth = 100.0
	// BalloonStringLength is the string length under the balloon body
	BalloonStringLength = 40.0
)

// Stars
const (
	StarCount     = 30
	StarSizeMin   = 5.0
	StarSizeRange = 10.0
	// StarTwinkleRate scales time into the noise domain (noise units per second)
	StarTwinkleRate = 0.8
)

// Floating Hearts
const (
	// HeartInterval is the period between new hearts
	HeartInterval = 1500 * time.Millisecond

	HeartSizeMin       = 15.0
	HeartSizeRange     = 20.0
	HeartDurationMin   = 8 * time.Second
	HeartDurationRange = 7 * time.Second
	HeartLife          = 15 * time.Second
	HeartAlpha         = 0.9

	// HeartDelayMax is the longest wait before a new heart starts rising
	HeartDelayMax = 8 * time.Second
)

// Confetti
const (
	// ConfettiInterval is the period between volleys of ConfettiVolley pieces
	ConfettiInterval = 3 * time.Second
	ConfettiVolley   = 50

	// ConfettiStagger separates pieces of one volley
	ConfettiStagger = 50 * time.Millisecond

	ConfettiDelayMax      = 3 * time.Second
	ConfettiDurationMin   = 3 * time.Second
	ConfettiDurationRange = 2 * time.Second
	ConfettiSizeMin       = 5.0
	ConfettiSizeRange     = 15.0
	ConfettiLife          = 5 * time.Second
)

// Pointer Trail
const (
	TrailMaxDots   = 8
	TrailDotRadius = 12.5
	TrailDotLife   = 500 * time.Millisecond
	TrailDotAlpha  = 0.8

	// TrailSpringFrequency and TrailSpringDamping shape the trail head spring
	TrailSpringFrequency = 18.0
	TrailSpringDamping   = 1.0
)

// Catch Burst Sparks
const (
	BurstSparks      = 20
	BurstSpeedMin    = 5.0
	BurstSpeedRange  = 10.0
	BurstFade        = 0.02
	BurstSparkRadius = 5.0
	BurstHeartChance = 0.3

	// BannerLife is how long a catch banner stays on screen
	BannerLife = 2 * time.Second
)
