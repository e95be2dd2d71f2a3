package similarity

// Matrix is a dense row-major matrix.
type Matrix struct {
	Rows, Cols int
	Data       []float64
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

// CosineMatrix computes the rows x cols matrix S with S[i][j] = Cosine(rows[i], cols[j]).
// Both sides are normalized once, then multiplied as U·Vᵀ, so zero-norm vectors
// produce zero rows/columns instead of dividing by zero.
// All vectors must share one dimension.
func CosineMatrix(rows, cols [][]float64) Matrix {
	u := normalizeAll(rows)
	v := normalizeAll(cols)

	m := Matrix{Rows: len(u), Cols: len(v), Data: make([]float64, len(u)*len(v))}
	for i, ui := range u {
		out := m.Data[i*m.Cols : (i+1)*m.Cols]
		for j, vj := range v {
			var dot float64
			for k := range ui {
				dot += ui[k] * vj[k]
			}
			out[j] = dot
		}
	}
	return m
}

// ColumnMeans returns the arithmetic mean of every column. An empty matrix yields zeros.
func (m *Matrix) ColumnMeans() []float64 {
	means := make([]float64, m.Cols)
	if m.Rows == 0 {
		return means
	}
	for i := 0; i < m.Rows; i++ {
		row := m.Data[i*m.Cols : (i+1)*m.Cols]
		for j, x := range row {
			means[j] += x
		}
	}
	n := float64(m.Rows)
	for j := range means {
		means[j] /= n
	}
	return means
}

func normalizeAll(vs [][]float64) [][]float64 {
	out := make([][]float64, len(vs))
	for i, v := range vs {
		out[i] = Normalized(v)
	}
	return out
}
