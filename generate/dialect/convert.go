/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package dialect

import (
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// RemUnits is the fixed rem multiplier: 1rem equals 16 density-independent
// units on every mobile platform.
const RemUnits = 16

// DimensionToUnits converts a CSS dimension string to platform-native
// numeric units. "1rem" yields 16, "24px" yields 24, and a bare number is
// taken as already-native. Anything else does not convert.
func DimensionToUnits(value string) (float64, bool) {
	v := strings.TrimSpace(value)
	switch {
	case strings.HasSuffix(v, "rem"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(v, "rem"), 64)
		if err != nil {
			return 0, false
		}
		return n * RemUnits, true
	case strings.HasSuffix(v, "px"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
}

// RGBA is a color decomposed into 8-bit channels.
type RGBA struct {
	R, G, B, A uint8
}

// ParseColor parses any CSS color value (hex, rgb(), named) into channels.
func ParseColor(value string) (RGBA, bool) {
	c, err := csscolorparser.Parse(strings.TrimSpace(value))
	if err != nil {
		return RGBA{}, false
	}
	r, g, b, a := c.RGBA255()
	return RGBA{R: r, G: g, B: b, A: a}, true
}

// ARGBHex returns the color as an 8-digit AARRGGBB hex string, the ordering
// Android and Compose color constructors expect.
func (c RGBA) ARGBHex() string {
	const digits = "0123456789ABCDEF"
	out := make([]byte, 8)
	for i, b := range []uint8{c.A, c.R, c.G, c.B} {
		out[i*2] = digits[b>>4]
		out[i*2+1] = digits[b&0xf]
	}
	return string(out)
}

// Channel returns a channel scaled to 0..1 for platforms that construct
// colors from floats.
func Channel(b uint8) float64 {
	return float64(b) / 255
}

// Shadow is a box-shadow composite decomposed into platform-native fields.
type Shadow struct {
	OffsetX float64
	OffsetY float64
	Blur    float64
	Spread  float64
	Color   string
}

// ParseShadow decomposes a "Xpx Ypx blur [spread] color" composite value.
// The color part is whatever trails the numeric run; missing parts default
// to zero.
func ParseShadow(value string) (Shadow, bool) {
	fields := strings.Fields(strings.TrimSpace(value))
	if len(fields) < 3 {
		return Shadow{}, false
	}

	var nums []float64
	i := 0
	for ; i < len(fields) && i < 4; i++ {
		n, ok := DimensionToUnits(fields[i])
		if !ok {
			break
		}
		nums = append(nums, n)
	}
	if len(nums) < 2 {
		return Shadow{}, false
	}

	s := Shadow{OffsetX: nums[0], OffsetY: nums[1]}
	if len(nums) > 2 {
		s.Blur = nums[2]
	}
	if len(nums) > 3 {
		s.Spread = nums[3]
	}
	s.Color = strings.Join(fields[i:], " ")
	return s, true
}

// SplitFontFamily splits a comma-separated font stack into an ordered list
// of trimmed, unquoted family names.
func SplitFontFamily(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, `"'`)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FormatNumber renders a float without a trailing ".0" run, matching how a
// person would write the literal.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
