package interval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vipcxj/intervals/internal/domain"
)

func TestRelate_Examples(t *testing.T) {
	cases := []struct {
		name string
		x, y Span
		exp  Relation
	}{
		{"equals", closed32(1, 5), Must[int32](Open[int32](0, 6)), RelationEquals},
		{"meets", closed32(1, 5), closed32(6, 10), RelationMeets},
		{"met_by", closed32(6, 10), closed32(1, 5), RelationMetBy},
		{"before", closed32(1, 5), closed32(7, 10), RelationBefore},
		{"after", closed32(7, 10), closed32(1, 5), RelationAfter},
		{"overlaps", closed32(1, 5), closed32(5, 10), RelationOverlaps},
		{"overlapped_by", closed32(5, 10), closed32(1, 5), RelationOverlappedBy},
		{"includes", closed32(1, 10), closed32(3, 4), RelationIncludes},
		{"during", closed32(3, 4), closed32(1, 10), RelationDuring},
		{"starts", closed32(1, 9), closed32(1, 5), RelationStarts},
		{"started_by", closed32(1, 5), closed32(1, 9), RelationStartedBy},
		{"finishes", closed32(1, 9), closed32(4, 9), RelationFinishes},
		{"finished_by", closed32(4, 9), closed32(1, 9), RelationFinishedBy},
		{"open_end_meets", Must[int32](New[int32](1, 5, false, true)), closed32(5, 9), RelationMeets},
		{"cross_kind_before", closed16(1, 5), closed64(5.5, 10), RelationBefore},
		{"double_meets", closed64(1, 2), closed64(math.Nextafter(2, 3), 4), RelationMeets},
		{"double_open_meets", Must[float64](New[float64](1, 2, false, true)), closed64(2, 4), RelationMeets},
		{"unbounded_includes", Unbounded[int8](), closed16(-5, 5), RelationIncludes},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, Relate(tc.x, tc.y))
			assert.True(t, Holds(tc.exp, tc.x, tc.y))
			assert.Equal(t, tc.exp.Inverse(), Relate(tc.y, tc.x))
		})
	}
}

// Meets steps the end of x within x's domain and MetBy steps the start of x
// within its own, so across kinds the pair is not symmetric.
func TestRelate_CrossKindMeets(t *testing.T) {
	x, y := closed16(1, 5), closed64(6, 10)
	assert.Equal(t, RelationMeets, Relate(x, y))
	assert.Equal(t, RelationAfter, Relate(y, x))

	assert.Equal(t, RelationMetBy, Relate(closed16(6, 10), closed64(1, 5)))
}

func TestRelationTo(t *testing.T) {
	assert.Equal(t, RelationMeets, closed32(1, 5).RelationTo(closed32(6, 10)))
	assert.Equal(t, RelationIncludes, closed32(1, 10).RelationTo(closed32(3, 4)))
	assert.Equal(t, RelationDuring, closed32(3, 4).RelationTo(closed32(1, 10)))
}

func gridOf[T domain.Number](points []T) []Span {
	var spans []Span
	for _, s := range points {
		for _, e := range points {
			for _, os := range []bool{false, true} {
				for _, oe := range []bool{false, true} {
					if iv, err := New(s, e, os, oe); err == nil {
						spans = append(spans, iv)
					}
				}
			}
		}
	}
	return spans
}

func TestRelate_ExactlyOneHolds(t *testing.T) {
	cases := []struct {
		name    string
		spans   []Span
		inverse bool
	}{
		{"int", gridOf([]int32{1, 2, 3, 4, 5}), true},
		{"double", gridOf([]float64{0, 0.5, 1, 1.5}), true},
		{"mixed", append(gridOf([]int16{1, 2, 3}), gridOf([]float64{1, 1.5, 2.5})...), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, x := range tc.spans {
				assert.Equal(t, RelationEquals, Relate(x, x), x.String())
				for _, y := range tc.spans {
					var held []Relation
					for _, r := range RelationValues() {
						if Holds(r, x, y) {
							held = append(held, r)
						}
					}
					require.Len(t, held, 1, "%v vs %v: %v", x, y, held)
					assert.Equal(t, held[0], Relate(x, y))
					if tc.inverse {
						assert.Equal(t, Relate(x, y).Inverse(), Relate(y, x), "%v vs %v", x, y)
					}
				}
			}
		})
	}
}

func TestRelation_Strings(t *testing.T) {
	assert.Equal(t, "met-by", RelationMetBy.String())
	assert.Equal(t, "overlapped-by", RelationOverlappedBy.String())
	assert.Len(t, RelationValues(), 13)

	r, err := RelationString("finished-by")
	require.NoError(t, err)
	assert.Equal(t, RelationFinishedBy, r)

	for _, r := range RelationValues() {
		assert.Equal(t, r, r.Inverse().Inverse())
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		x, y Span
		exp  bool
	}{
		{"shared_endpoint", closed32(1, 5), closed32(5, 9), true},
		{"adjacent", closed32(1, 5), closed32(6, 9), false},
		{"open_end", Must[int32](New[int32](1, 5, false, true)), closed32(5, 9), false},
		{"contained", closed32(1, 9), closed32(3, 4), true},
		{"cross_kind", closed16(1, 5), closed64(4.5, 6), true},
		{"unbounded", Unbounded[int64](), closed32(-3, 3), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, Overlap(tc.x, tc.y))
			assert.Equal(t, tc.exp, Overlap(tc.y, tc.x))
		})
	}
	assert.True(t, closed32(1, 5).Overlaps(closed32(5, 9)))
}

func TestContains(t *testing.T) {
	iv := closed32(1, 5)
	assert.True(t, iv.Contains(domain.Of(int32(1))))
	assert.True(t, iv.Contains(domain.Of(5.0)))
	assert.False(t, iv.Contains(domain.Of(5.5)))
	assert.True(t, iv.Contains(domain.Of(int8(3))))

	open := Must[int32](Open[int32](1, 5))
	assert.False(t, open.Contains(domain.Of(int32(1))))
	assert.True(t, open.Contains(domain.Of(int32(4))))
	assert.True(t, Contains(open, domain.Of(1.5)))
}
