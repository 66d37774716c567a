package stats

import "math"

type Welford struct {
	count uint64
	mean  float64
	m2    float64
}

func NewWelford() *Welford {
	return &Welford{
		count: 0,
		mean:  0,
		m2:    0,
	}
}

func (welford *Welford) Update(value float64) {
	welford.count++
	delta := value - welford.mean
	welford.mean += delta / float64(welford.count)
	delta2 := value - welford.mean
	welford.m2 += delta * delta2
}

// UpdateN folds n copies of value in one step (Chan et al. pairwise merge).
func (welford *Welford) UpdateN(value float64, n uint64) {
	if n == 0 {
		return
	}
	prev := float64(welford.count)
	welford.count += n
	total := float64(welford.count)
	delta := value - welford.mean
	welford.mean += delta * float64(n) / total
	welford.m2 += delta * delta * prev * float64(n) / total
}

func (welford *Welford) GetCount() uint64 {
	return welford.count
}

func (welford *Welford) GetMean() float64 {
	return welford.mean
}

func (welford *Welford) GetVariance() float64 {
	if welford.count < 2 {
		return 0
	}
	return welford.m2 / float64(welford.count)
}

func (welford *Welford) GetSampleVariance() float64 {
	if welford.count < 2 {
		return 0
	}
	return welford.m2 / float64(welford.count-1)
}

func (welford *Welford) GetSD() float64 {
	return math.Sqrt(welford.GetSampleVariance())
}

func (welford *Welford) GetCV() float64 {
	if welford.count < 2 || welford.mean == 0 {
		return 0
	}
	return welford.GetSD() / welford.GetMean()
}
