// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-porcle/internal/defs"
)

// PRNGService это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed actually used, so a session can be replayed.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a float in [min, max). Equal bounds return min.
func (s *PRNGService) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// RangeInclusive returns a float in [min, max], hitting max only on rounding.
func (s *PRNGService) RangeInclusive(min, max float64) float64 {
	v := s.Range(min, max)
	if v > max {
		return max
	}
	return v
}

// ChooseWeighted выполняет взвешенный случайный выбор из таблицы.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
func (s *PRNGService) ChooseWeighted(entries []defs.KindWeight) (defs.EnemyKind, bool) {
	if len(entries) == 0 {
		return 0, false
	}

	totalWeight := 0
	for _, entry := range entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}

	if totalWeight <= 0 {
		return entries[0].Kind, true
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.Kind, true
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].Kind, true
}
