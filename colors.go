package styler

import (
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// namedColors is the CSS color keyword list the heuristic recognizes,
// plus the special keywords transparent and currentcolor. Theme color
// names like red-500 are matched by shape, not listed here.
var namedColors = map[string]bool{
	"transparent": true, "currentcolor": true,
	"black": true, "silver": true, "gray": true, "grey": true,
	"white": true, "maroon": true, "red": true, "purple": true,
	"fuchsia": true, "green": true, "lime": true, "olive": true,
	"yellow": true, "navy": true, "blue": true, "teal": true,
	"aqua": true, "orange": true, "aliceblue": true, "antiquewhite": true,
	"aquamarine": true, "azure": true, "beige": true, "bisque": true,
	"blanchedalmond": true, "blueviolet": true, "brown": true,
	"burlywood": true, "cadetblue": true, "chartreuse": true,
	"chocolate": true, "coral": true, "cornflowerblue": true,
	"cornsilk": true, "crimson": true, "cyan": true, "darkblue": true,
	"darkcyan": true, "darkgoldenrod": true, "darkgray": true,
	"darkgreen": true, "darkgrey": true, "darkkhaki": true,
	"darkmagenta": true, "darkolivegreen": true, "darkorange": true,
	"darkorchid": true, "darkred": true, "darksalmon": true,
	"darkseagreen": true, "darkslateblue": true, "darkslategray": true,
	"darkturquoise": true, "darkviolet": true, "deeppink": true,
	"deepskyblue": true, "dimgray": true, "dodgerblue": true,
	"firebrick": true, "floralwhite": true, "forestgreen": true,
	"gainsboro": true, "ghostwhite": true, "gold": true,
	"goldenrod": true, "greenyellow": true, "honeydew": true,
	"hotpink": true, "indianred": true, "indigo": true, "ivory": true,
	"khaki": true, "lavender": true, "lavenderblush": true,
	"lawngreen": true, "lemonchiffon": true, "lightblue": true,
	"lightcoral": true, "lightcyan": true, "lightgray": true,
	"lightgreen": true, "lightpink": true, "lightsalmon": true,
	"lightseagreen": true, "lightskyblue": true, "lightslategray": true,
	"lightyellow": true, "limegreen": true, "linen": true,
	"magenta": true, "mediumblue": true, "mediumorchid": true,
	"mediumpurple": true, "mediumseagreen": true, "midnightblue": true,
	"mintcream": true, "mistyrose": true, "moccasin": true,
	"navajowhite": true, "oldlace": true, "olivedrab": true,
	"orangered": true, "orchid": true, "palegoldenrod": true,
	"palegreen": true, "paleturquoise": true, "palevioletred": true,
	"papayawhip": true, "peachpuff": true, "peru": true, "pink": true,
	"plum": true, "powderblue": true, "rosybrown": true,
	"royalblue": true, "saddlebrown": true, "salmon": true,
	"sandybrown": true, "seagreen": true, "seashell": true,
	"sienna": true, "skyblue": true, "slateblue": true,
	"slategray": true, "snow": true, "springgreen": true,
	"steelblue": true, "tan": true, "thistle": true, "tomato": true,
	"turquoise": true, "violet": true, "wheat": true,
	"whitesmoke": true, "yellowgreen": true,
}

var (
	hexColorRe      = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	colorFunctionRe = regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla)\(`)
	gradientRe      = regexp.MustCompile(`^(?:linear|radial|conic|repeating-linear|repeating-radial)-gradient\(`)
)

// IsColorValue reports whether a raw value denotes a color: 3/6/8 digit
// hex with or without the leading #, rgb()/rgba()/hsl()/hsla(), or a
// color keyword. Pure numbers and number+unit values are never colors;
// unrecognized shapes default to "not a color" since sizes are far more
// common inside arbitrary class brackets.
func IsColorValue(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return false
	}
	if isNumericValue(v) {
		return false
	}
	if namedColors[v] {
		return true
	}
	if colorFunctionRe.MatchString(v) {
		return true
	}
	return hexColorRe.MatchString(v)
}

// IsImageValue reports whether a raw value denotes an image or gradient
// reference: url(...), an absolute http(s):// or data: URI, or a
// gradient function call. A value classified as a color is never an
// image.
func IsImageValue(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return false
	}
	if IsColorValue(v) {
		return false
	}
	if strings.HasPrefix(v, "url(") ||
		strings.HasPrefix(v, "http://") ||
		strings.HasPrefix(v, "https://") ||
		strings.HasPrefix(v, "data:") {
		return true
	}
	return gradientRe.MatchString(v)
}

// isNumericValue reports whether the whole value is a single CSS
// number, dimension, or percentage token. It drives the size-vs-color
// bias: "100", "1.5rem" and "50%" are sizes even though "100" also has
// a valid 3-digit hex shape.
func isNumericValue(value string) bool {
	lexer := css.NewLexer(parse.NewInputString(value))
	tt, _ := lexer.Next()
	switch tt {
	case css.NumberToken, css.DimensionToken, css.PercentageToken:
	default:
		return false
	}
	tt, _ = lexer.Next()
	return tt == css.ErrorToken
}

// isBareNumber reports whether the value is a plain unitless number.
func isBareNumber(value string) bool {
	lexer := css.NewLexer(parse.NewInputString(value))
	tt, _ := lexer.Next()
	if tt != css.NumberToken {
		return false
	}
	tt, _ = lexer.Next()
	return tt == css.ErrorToken
}
