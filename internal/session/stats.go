package session

import "time"

// populationWeight is the weight of the newest sample in AveragePopulation.
const populationWeight = 0.1

// Stats tracks progress of a session.
type Stats struct {
	Generation           int
	LiveCells            int
	AveragePopulation    float64
	GenerationsPerSecond float64
	StartTime            time.Time

	samples int
}

// NewStats returns Stats starting now.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a finished generation. AveragePopulation is an exponential
// moving average over every recorded generation and GenerationsPerSecond is
// the rate since StartTime.
func (s *Stats) Update(generation, population int) {
	s.Generation = generation
	s.LiveCells = population

	if s.samples == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = s.AveragePopulation*(1-populationWeight) + float64(population)*populationWeight
	}
	s.samples++

	if elapsed := s.Elapsed(); elapsed > 0 {
		s.GenerationsPerSecond = float64(s.Generation) / elapsed.Seconds()
	}
}

// Elapsed returns the time since the stats were created.
func (s *Stats) Elapsed() time.Duration { return time.Since(s.StartTime) }
