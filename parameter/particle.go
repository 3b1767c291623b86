package parameter

// Detonation Particles
const (
	// ParticleCount is the number of particles a single detonation produces
	ParticleCount = 70

	// ParticleGravity is added to vertical velocity every frame (px/frame²)
	ParticleGravity = 0.1

	// ParticleDrag is the per-frame multiplicative velocity decay on both axes
	ParticleDrag = 0.98

	// ParticleSpeed is the spread of each initial velocity component: (rand-0.5)*ParticleSpeed
	ParticleSpeed = 10.0

	// ParticleSizeMin and ParticleSizeRange give radius = min + rand*range
	ParticleSizeMin   = 1.0
	ParticleSizeRange = 3.0

	// ParticleFadeMin and ParticleFadeRange give opacity loss per frame = min + rand*range
	ParticleFadeMin   = 0.01
	ParticleFadeRange = 0.02

	// ParticleHueJitter is the maximum hue offset in degrees from the parent firework
	ParticleHueJitter = 15.0

	// ParticleHeartScale multiplies particle size for the heart glyph
	ParticleHeartScale = 1.5
)

// Twinkle
const (
	// TwinkleChance is the per-frame probability of an opacity uptick
	TwinkleChance = 0.05
	// TwinkleBoost is the opacity added by a twinkle, capped at 1
	TwinkleBoost = 0.2
)
