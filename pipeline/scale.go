package pipeline

// Scaler holds per-column min-max parameters fitted on the training matrix
// only. The same fitted parameters are applied to validation, test and future
// matrices, never refit, so nothing outside train can influence the
// transform.
type Scaler struct {
	Min []float64
	Max []float64
}

// FitScaler computes per-column minima and maxima from the training matrix.
func FitScaler(train [][]float64) (*Scaler, error) {
	if len(train) == 0 {
		return nil, &DataQualityError{Reason: "cannot fit scaler on an empty training matrix"}
	}

	cols := len(train[0])
	s := &Scaler{Min: make([]float64, cols), Max: make([]float64, cols)}
	copy(s.Min, train[0])
	copy(s.Max, train[0])

	for _, row := range train[1:] {
		for j, v := range row {
			if v < s.Min[j] {
				s.Min[j] = v
			}
			if v > s.Max[j] {
				s.Max[j] = v
			}
		}
	}
	return s, nil
}

// Transform scales every column into [0, 1] using the fitted parameters.
// Columns that were constant in train map to 0. Values outside the train
// range are allowed to fall outside [0, 1]; clamping them would hide drift.
func (s *Scaler) Transform(x [][]float64) [][]float64 {
	out := make([][]float64, len(x))
	for i, row := range x {
		scaled := make([]float64, len(row))
		for j, v := range row {
			span := s.Max[j] - s.Min[j]
			if span == 0 {
				scaled[j] = 0
				continue
			}
			scaled[j] = (v - s.Min[j]) / span
		}
		out[i] = scaled
	}
	return out
}
