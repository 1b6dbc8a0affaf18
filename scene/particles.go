package scene

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// BlendMode controls how overlapping fragments composite.
type BlendMode int

const (
	BlendAlpha    BlendMode = iota // src-alpha, one-minus-src-alpha
	BlendAdditive                  // src-alpha, one
)

func (b BlendMode) String() string {
	switch b {
	case BlendAdditive:
		return "additive"
	default:
		return "alpha"
	}
}

const (
	// ParticleSpawnExtent is the side of the square particles spawn in, centred on the origin.
	ParticleSpawnExtent = 1.8
	// ParticleMaxSpeed bounds each velocity component.
	ParticleMaxSpeed = 0.01
	// ParticleFloats is the size of one particle in the storage buffer: pos.xy, vel.xy.
	ParticleFloats = 4
	// InstanceFloats is the size of one instance record: offset.xy, scale, angle, rgb.
	InstanceFloats = 7
)

// Particle matches the storage buffer layout read and written by the compute kernel.
type Particle struct {
	X, Y   float32
	VX, VY float32
}

// SeedParticles scatters n particles over the spawn square with small random
// velocities.
func SeedParticles(n int, rng *rand.Rand) []Particle {
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = Particle{
			X:  (rng.Float32() - 0.5) * ParticleSpawnExtent,
			Y:  (rng.Float32() - 0.5) * ParticleSpawnExtent,
			VX: (rng.Float32() - 0.5) * ParticleMaxSpeed,
			VY: (rng.Float32() - 0.5) * ParticleMaxSpeed,
		}
	}
	return particles
}

// Instance is one per-instance vertex record of the instancing sample.
type Instance struct {
	OffsetX, OffsetY float32
	Scale            float32
	Angle            float32
	R, G, B          float32
}

// SeedInstances places n instances across clip space with random size, spin
// phase and colour.
func SeedInstances(n int, rng *rand.Rand) []Instance {
	instances := make([]Instance, n)
	for i := range instances {
		instances[i] = Instance{
			OffsetX: (rng.Float32() - 0.5) * 1.9,
			OffsetY: (rng.Float32() - 0.5) * 1.9,
			Scale:   0.02 + rng.Float32()*0.06,
			Angle:   rng.Float32() * 2 * math32.Pi,
			R:       0.3 + rng.Float32()*0.7,
			G:       0.3 + rng.Float32()*0.7,
			B:       0.3 + rng.Float32()*0.7,
		}
	}
	return instances
}

// NewRand returns a PCG source seeded from seed. Zero picks a random seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
