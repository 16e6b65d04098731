// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termscroll

import "time"

const (
	// velocityWindow is how far back samples count toward the estimate.
	velocityWindow = 100 * time.Millisecond

	// velocitySampleCap bounds the ring buffer; at terminal mouse-report
	// rates this comfortably covers the window.
	velocitySampleCap = 20
)

type velocitySample struct {
	t        time.Time
	position float64
}

// VelocityTracker estimates pointer velocity from recent position
// samples. Terminals deliver no velocity of their own, so the tracker
// fits a least-squares line through the samples of the last 100ms and
// reports its slope in position units per second.
//
// The zero value is ready to use.
type VelocityTracker struct {
	samples [velocitySampleCap]velocitySample
	next    int
	count   int
}

// AddSample records the pointer position at time t. Samples must be
// added in non-decreasing time order.
func (v *VelocityTracker) AddSample(t time.Time, position float64) {
	v.samples[v.next] = velocitySample{t: t, position: position}
	v.next = (v.next + 1) % velocitySampleCap
	if v.count < velocitySampleCap {
		v.count++
	}
}

// Reset discards all samples.
func (v *VelocityTracker) Reset() {
	v.next = 0
	v.count = 0
}

// Velocity returns the estimated velocity at the newest sample, or 0
// when fewer than two samples fall inside the window.
func (v *VelocityTracker) Velocity() float64 {
	if v.count == 0 {
		return 0
	}
	return v.VelocityAt(v.samples[(v.next+velocitySampleCap-1)%velocitySampleCap].t)
}

// VelocityAt estimates the velocity as of time t: only samples within
// the window before t count, so a pointer that rested before release
// reads as stopped even though its approach was fast.
func (v *VelocityTracker) VelocityAt(t time.Time) float64 {
	if v.count == 0 {
		return 0
	}
	newest := v.samples[(v.next+velocitySampleCap-1)%velocitySampleCap]
	cutoff := t.Add(-velocityWindow)

	// Least-squares fit of position against time, with time measured in
	// seconds before the newest sample.
	var n, sumT, sumP, sumTT, sumTP float64
	for i := 0; i < v.count; i++ {
		s := v.samples[(v.next+velocitySampleCap-1-i)%velocitySampleCap]
		if s.t.Before(cutoff) {
			break
		}
		dt := s.t.Sub(newest.t).Seconds()
		n++
		sumT += dt
		sumP += s.position
		sumTT += dt * dt
		sumTP += dt * s.position
	}
	if n < 2 {
		return 0
	}
	denom := n*sumTT - sumT*sumT
	if denom == 0 {
		// All samples share one timestamp.
		return 0
	}
	return (n*sumTP - sumT*sumP) / denom
}
