// Package matrix manages matrices of expressions.
package matrix

import (
	"strings"

	"go.uber.org/multierr"

	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/matherr"
	"zappem.net/pub/math/symalg/terms"
)

// Matrix is a dense matrix. A nil element is zero.
type Matrix struct {
	// row count and col count
	rows, cols int
	// The matrix elements arranged, [r=0,c=0], [0,1], [0,2] ...
	data []terms.Expression
}

// NewMatrix creates a rows x cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matherr.Calculationf("need positive dimensions, not %dx%d", rows, cols)
	}
	m := &Matrix{
		rows: rows,
		cols: cols,
		data: make([]terms.Expression, rows*cols),
	}
	return m, nil
}

// Parse builds a matrix from rows of text cells. Every cell that fails
// to parse is reported.
func Parse(p terms.Parser, cells [][]string) (*Matrix, error) {
	if len(cells) == 0 {
		return nil, matherr.Parsingf("no rows")
	}
	m, err := NewMatrix(len(cells), len(cells[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range cells {
		if len(row) != m.cols {
			err = multierr.Append(err, matherr.Parsingf("row %d has %d cells, want %d", r, len(row), m.cols))
			continue
		}
		for c, text := range row {
			e, err2 := p.Parse(text)
			if err2 != nil {
				err = multierr.Append(err, matherr.Parsingf("cell [%d,%d]: %v", r, c, err2))
				continue
			}
			m.data[c+m.cols*r] = e
		}
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// String serializes a matrix for displaying.
func (m *Matrix) String() string {
	return m.Text(factor.Default)
}

// Text serializes a matrix with its elements in format f.
func (m *Matrix) Text(f factor.Format) string {
	var rs []string
	for r := 0; r < m.rows; r++ {
		var cs []string
		for c := 0; c < m.cols; c++ {
			if e := m.data[c+m.cols*r]; e != nil {
				cs = append(cs, e.Text(f))
			} else {
				cs = append(cs, "0")
			}
		}
		rs = append(rs, "["+strings.Join(cs, ", ")+"]")
	}
	return "[" + strings.Join(rs, ", ") + "]"
}

// Set sets the value of a matrix element.
func (m *Matrix) Set(row, col int, e terms.Expression) error {
	if row < 0 || col < 0 || row >= m.rows || col >= m.cols {
		return matherr.Calculationf("bad cell: [%d,%d] in %dx%d matrix", row, col, m.rows, m.cols)
	}
	m.data[col+m.cols*row] = e
	return nil
}

// El returns the row,col element of the matrix.
func (m *Matrix) El(row, col int) terms.Expression {
	return m.data[col+m.cols*row]
}

// Identity returns a square identity matrix of dimension n.
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, matherr.Calculationf("invalid identity matrix of dimension n=%d", n)
	}
	m, _ := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, factor.Int(1))
	}
	return m, nil
}

// Transpose returns the transpose of a specified matrix.
func (m *Matrix) Transpose() *Matrix {
	n, err := NewMatrix(m.cols, m.rows)
	if err != nil {
		panic(err)
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			n.Set(j, i, m.El(i, j))
		}
	}
	return n
}

// Mul multiplies m x n with conventional matrix multiplication.
func (m *Matrix) Mul(n *Matrix) (*Matrix, error) {
	if m.cols != n.rows {
		return nil, matherr.Calculationf("a cols(%d) != b rows(%d)", m.cols, n.rows)
	}
	a, err := NewMatrix(m.rows, n.cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			var e []terms.Expression
			for i := 0; i < m.cols; i++ {
				x, y := m.El(r, i), n.El(i, c)
				if x != nil && y != nil {
					e = append(e, terms.Mul(x, y))
				}
			}
			if len(e) == 0 {
				continue
			}
			sum, err := terms.AddAll(e...)
			if err != nil {
				return nil, err
			}
			a.Set(r, c, sum)
		}
	}
	return a, nil
}

// Mx multiplies two matrices and panics on error.
func (m *Matrix) Mx(n *Matrix) *Matrix {
	a, err := m.Mul(n)
	if err != nil {
		panic(err)
	}
	return a
}

// Sum adds scale times n to m.
func (m *Matrix) Sum(n *Matrix, scale terms.Expression) (*Matrix, error) {
	if m.rows != n.rows || m.cols != n.cols {
		return nil, matherr.Calculationf("inequivalent dimensions %dx%d != %dx%d", m.rows, m.cols, n.rows, n.cols)
	}
	a, _ := NewMatrix(m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if q := n.El(r, c); q == nil {
				a.Set(r, c, m.El(r, c))
			} else if p := m.El(r, c); p == nil {
				a.Set(r, c, terms.Mul(q, scale))
			} else {
				a.Set(r, c, terms.Add(p, terms.Mul(q, scale)))
			}
		}
	}
	return a, nil
}

// Add adds two matrices, and panics on error.
func (m *Matrix) Add(n *Matrix, scale terms.Expression) *Matrix {
	a, err := m.Sum(n, scale)
	if err != nil {
		panic(err)
	}
	return a
}

// Substitute replaces target with repl in all elements of a matrix.
func (m *Matrix) Substitute(target, repl terms.Expression) *Matrix {
	n, _ := NewMatrix(m.rows, m.cols)
	for i, e := range m.data {
		if e != nil {
			n.data[i] = terms.Substitute(e, target, repl)
		}
	}
	return n
}

// Simplify normalizes every element of a matrix.
func (m *Matrix) Simplify() *Matrix {
	n, _ := NewMatrix(m.rows, m.cols)
	for i, e := range m.data {
		if e != nil {
			n.data[i] = terms.Normalize(e)
		}
	}
	return n
}

// Equal reports whether m and n have the same shape and symbolically
// equal elements. Nil elements equal zero.
func (m *Matrix) Equal(n *Matrix) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i, e := range m.data {
		f := n.data[i]
		if e == nil {
			e = factor.Int(0)
		}
		if f == nil {
			f = factor.Int(0)
		}
		if !terms.Equal(e, f) {
			return false
		}
	}
	return true
}
