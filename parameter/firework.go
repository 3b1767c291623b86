package parameter

// Firework Rocket
const (
	// FireworkGravity is heavier than ParticleGravity so the ascent bends to an apex
	FireworkGravity = 0.3

	// LaunchSpeedMin and LaunchSpeedRange give upward speed = min + rand*range (px/frame)
	LaunchSpeedMin   = 10.0
	LaunchSpeedRange = 15.0

	// LaunchDrift is the spread of horizontal launch velocity: (rand-0.5)*LaunchDrift
	LaunchDrift = 2.0

	// HeartChance is the probability a firework bursts into hearts
	HeartChance = 0.3

	// RocketRadius is the radius of the ascending rocket dot
	RocketRadius = 3.0
)

// Admission Control
const (
	// MaxFireworks caps live fireworks, 0 disables the cap
	MaxFireworks = 0
)
