// ABOUTME: Particle system package
// ABOUTME: Seedable particles that burst outward and fade
// Package particle implements short-lived decaying point emitters.
//
// Particles spawn with a random heading, speed, decay rate and size, drift
// each tick and fade out as their life runs down. All randomness comes from
// a Rand so callers can inject a seeded generator.
package particle
