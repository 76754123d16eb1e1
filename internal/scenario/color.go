package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/motion"
)

// ParseColor accepts an SVG color name ("tomato"), "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (motion.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return motion.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: float64(c.A) / 255,
		}, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return motion.Color{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return motion.Color{}, fmt.Errorf("invalid color %q", s)
	}
	return motion.Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// decodeColor accepts a color string or an [r, g, b, a] sequence in [0, 1].
func decodeColor(n *yaml.Node) (motion.Color, error) {
	if n.Kind == yaml.SequenceNode {
		var ch []float64
		if err := n.Decode(&ch); err != nil {
			return motion.Color{}, err
		}
		switch len(ch) {
		case 3:
			return motion.Color{R: ch[0], G: ch[1], B: ch[2], A: 1}, nil
		case 4:
			return motion.Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
		}
		return motion.Color{}, fmt.Errorf("line %d: color needs 3 or 4 channels, got %d", n.Line, len(ch))
	}
	var s string
	if err := n.Decode(&s); err != nil {
		return motion.Color{}, err
	}
	c, err := ParseColor(s)
	if err != nil {
		return motion.Color{}, fmt.Errorf("line %d: %w", n.Line, err)
	}
	return c, nil
}
