package textfit

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestFit_AppendsEllipsisAndSpacer(t *testing.T) {
	face := FixedFace{Advance: 10}

	// 110 - ellipsis(10) - spacer(20) leaves 80 for the prefix
	got := Fit("Very long key name", face, 110, false)
	assert.Equal(t, "Very lon…  ", got)
	assert.Equal(t, 110, face.Measure(got))
}

func TestFit_PrependsSpacer(t *testing.T) {
	face := FixedFace{Advance: 10}

	got := Fit("0123456789", face, 60, true)
	assert.Equal(t, "  012…", got)
}

func TestFit_EmptyPrefixWhenOnlyDecorationsFit(t *testing.T) {
	face := FixedFace{Advance: 10}

	assert.Equal(t, "…  ", Fit("abcdef", face, 30, false))
	assert.Equal(t, "  …", Fit("abcdef", face, 35, true))
}

func TestFit_DropsDecorationsThatDoNotFit(t *testing.T) {
	face := FixedFace{Advance: 10}

	assert.Equal(t, "a…", Fit("abcdef", face, 20, false))
	assert.Equal(t, "…", Fit("abcdef", face, 10, true))
	assert.Equal(t, "", Fit("abcdef", face, 9, false))
	assert.Equal(t, "", Fit("abcdef", face, 0, false))
	assert.Equal(t, "", Fit("abcdef", face, -5, true))
}

func TestFit_NeverExceedsMaxWidth(t *testing.T) {
	faces := []Face{
		FixedFace{Advance: 7},
		NewCellFace(),
		NewPixelFace("basicfont-7x13", basicfont.Face7x13),
	}
	alphabet := []rune("abcXYZ 0123-_界世…éü")
	rng := rand.New(rand.NewSource(42))

	for _, face := range faces {
		t.Run(face.Name(), func(t *testing.T) {
			for i := 0; i < 500; i++ {
				var b strings.Builder
				for n := rng.Intn(30); n > 0; n-- {
					b.WriteRune(alphabet[rng.Intn(len(alphabet))])
				}
				maxWidth := rng.Intn(120)
				for _, prepend := range []bool{false, true} {
					got := Fit(b.String(), face, maxWidth, prepend)
					require.LessOrEqual(t, face.Measure(got), maxWidth,
						"text %q max %d prepend %v gave %q", b.String(), maxWidth, prepend, got)
				}
			}
		})
	}
}

func TestDecorationWidths_Memoized(t *testing.T) {
	face := &countingFace{FixedFace: FixedFace{Advance: 3}}

	Fit("abcdefgh", face, 12, false)
	Fit("ijklmnop", face, 12, true)
	Fit("qrstuvwx", face, 15, false)

	assert.Equal(t, 2, face.measured, "ellipsis and spacer measured once")
}

type countingFace struct {
	FixedFace
	measured int
}

func (f *countingFace) Name() string {
	return "counting-3"
}

func (f *countingFace) Measure(s string) int {
	f.measured++
	return f.FixedFace.Measure(s)
}
