package tensor

import (
	"errors"
	"slices"
	"testing"

	"github.com/born-ml/linalg/internal/algebra"
)

func TestDenseValidate(t *testing.T) {
	if _, err := NewDense(Shape{2, 2}, []algebra.Real{1, 2, 3}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("short data: got %v", err)
	}
	if _, err := NewDense(Shape{2, -1}, []algebra.Real{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative dim: got %v", err)
	}

	d, err := NewDense(Shape{2, 3}, []algebra.Real{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	v, err := d.At(1, 2)
	if err != nil || v != 6 {
		t.Errorf("At(1, 2) = %v, %v; want 6", v, err)
	}

	c := d.Clone()
	c.Data[0] = 9
	c.Shape[0] = 7
	if d.Data[0] != 1 || d.Shape[0] != 2 {
		t.Error("Clone shares storage with the original")
	}
}

func TestZerosDense(t *testing.T) {
	z := ZerosDense[algebra.Rational](Shape{2, 2})
	for i, v := range z.Data {
		if !v.IsZero() {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}

func TestCOOValidate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"vector ok", COOVector[algebra.Real]{Size: 3, Indices: []int{0, 2}, Values: []algebra.Real{1, 2}}.Validate(), nil},
		{"vector bounds", COOVector[algebra.Real]{Size: 3, Indices: []int{3}, Values: []algebra.Real{1}}.Validate(), ErrIndexOutOfBounds},
		{"vector lengths", COOVector[algebra.Real]{Size: 3, Indices: []int{0}}.Validate(), ErrShapeMismatch},
		{"matrix bounds", COOMatrix[algebra.Real]{Rows: 2, Cols: 2, RowIndices: []int{0}, ColIndices: []int{2}, Values: []algebra.Real{1}}.Validate(), ErrIndexOutOfBounds},
		{"tensor rank", COOTensor[algebra.Real]{Shape: Shape{2, 2}, Indices: [][]int{{0}}, Values: []algebra.Real{1}}.Validate(), ErrInvalidRank},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want == nil && tt.err != nil {
				t.Fatalf("unexpected error %v", tt.err)
			}
			if tt.want != nil && !errors.Is(tt.err, tt.want) {
				t.Errorf("got %v, want %v", tt.err, tt.want)
			}
		})
	}
}

func TestCOOIsCanonical(t *testing.T) {
	m := COOMatrix[algebra.Real]{
		Rows: 3, Cols: 3,
		RowIndices: []int{0, 1, 1},
		ColIndices: []int{2, 0, 1},
		Values:     []algebra.Real{1, 2, 3},
	}
	if !m.IsCanonical() {
		t.Error("sorted matrix reported non-canonical")
	}
	m.ColIndices[2] = 0
	if m.IsCanonical() {
		t.Error("duplicate coordinate reported canonical")
	}

	tt := COOTensor[algebra.Real]{Shape: Shape{2, 2}, Indices: [][]int{{1, 0}, {0, 1}}, Values: []algebra.Real{1, 2}}
	if tt.IsCanonical() {
		t.Error("unsorted tensor reported canonical")
	}
}

func TestCSRValidateAndFind(t *testing.T) {
	m := CSRMatrix[algebra.Real]{
		Rows: 2, Cols: 3,
		RowPointers: []int{0, 2, 3},
		ColIndices:  []int{0, 2, 1},
		Values:      []algebra.Real{1, 2, 3},
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if p, ok := m.Find(0, 2); !ok || m.Values[p] != 2 {
		t.Errorf("Find(0, 2) = %d, %v", p, ok)
	}
	if p, ok := m.Find(1, 2); ok || p != 3 {
		t.Errorf("Find(1, 2) = %d, %v; want insertion point 3", p, ok)
	}

	bad := m
	bad.ColIndices = []int{2, 0, 1}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unsorted row: got %v", err)
	}
	bad = m
	bad.RowPointers = []int{0, 2}
	if err := bad.Validate(); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("short row pointers: got %v", err)
	}
	bad = m
	bad.RowPointers = []int{0, 3, 2}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("decreasing row pointers: got %v", err)
	}

	// A middle pointer past nnz must be reported, not followed.
	overrun := CSRMatrix[algebra.Real]{
		Rows: 2, Cols: 10,
		RowPointers: []int{0, 5, 3},
		ColIndices:  []int{0, 1, 2},
		Values:      []algebra.Real{1, 2, 3},
	}
	if err := overrun.Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("row pointer past nnz: got %v", err)
	}
}

func TestSparseOffsets(t *testing.T) {
	v := COOVector[algebra.Real]{Size: 5, Indices: []int{4, 1}, Values: []algebra.Real{1, 2}}
	m := COOMatrix[algebra.Real]{Rows: 2, Cols: 3, RowIndices: []int{1, 0}, ColIndices: []int{2, 1}, Values: []algebra.Real{1, 2}}
	tt := COOTensor[algebra.Real]{Shape: Shape{2, 3, 4}, Indices: [][]int{{1, 2, 3}, {0, 1, 0}}, Values: []algebra.Real{1, 2}}
	c := CSRMatrix[algebra.Real]{Rows: 2, Cols: 3, RowPointers: []int{0, 1, 2}, ColIndices: []int{1, 2}, Values: []algebra.Real{2, 1}}

	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{"vector", v.Offsets(), []int{4, 1}},
		{"matrix", m.Offsets(), []int{5, 1}},
		{"tensor", tt.Offsets(), []int{23, 4}},
		{"csr", c.Offsets(), []int{1, 5}},
	}
	for _, tc := range tests {
		if !slices.Equal(tc.got, tc.want) {
			t.Errorf("%s offsets = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestWithEntriesCopiesStructure(t *testing.T) {
	tt := COOTensor[algebra.Real]{Shape: Shape{2, 2}, Indices: [][]int{{0, 1}}, Values: []algebra.Real{1}}
	out := tt.WithEntries([]algebra.Real{5})
	out.Indices[0][0] = 1
	out.Shape[0] = 9
	if tt.Indices[0][0] != 0 || tt.Shape[0] != 2 {
		t.Error("WithEntries shares coordinates with the original")
	}
	if out.Values[0] != 5 || tt.Values[0] != 1 {
		t.Errorf("values = %v / %v", out.Values, tt.Values)
	}

	c := CSRMatrix[algebra.Real]{Rows: 1, Cols: 2, RowPointers: []int{0, 1}, ColIndices: []int{1}, Values: []algebra.Real{3}}
	oc := c.WithEntries([]algebra.Real{4})
	oc.ColIndices[0] = 0
	if c.ColIndices[0] != 1 {
		t.Error("WithEntries shares column indices with the original")
	}
}
