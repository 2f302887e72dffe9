package lzwcodec

import (
	"fmt"
	"strings"
)

// Kind selects which pipeline the codec runs for a source.
type Kind int

const (
	KindText Kind = iota
	KindGrayLevel
	KindGrayDifference
	KindColorLevel
	KindColorDifference
)

// Alphabet sizes for the two symbol domains. Residuals lie in [-255, 255] and
// are shifted by ResidualOffset before coding.
const (
	ByteAlphabetSize     = 256
	ResidualAlphabetSize = 511
	ResidualOffset       = 255
)

var kindNames = map[Kind]string{
	KindText:            "text",
	KindGrayLevel:       "gray",
	KindGrayDifference:  "gray-diff",
	KindColorLevel:      "color",
	KindColorDifference: "color-diff",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsImage returns true for every kind that works on pixel planes.
func (k Kind) IsImage() bool {
	return k != KindText
}

// IsColor returns true if the kind splits the image into R, G, and B planes.
func (k Kind) IsColor() bool {
	return k == KindColorLevel || k == KindColorDifference
}

// UsesDifference returns true if the predictive filter runs before coding.
func (k Kind) UsesDifference() bool {
	return k == KindGrayDifference || k == KindColorDifference
}

// AlphabetSize gives the number of base symbols in the initial dictionary.
func (k Kind) AlphabetSize() int {
	if k.UsesDifference() {
		return ResidualAlphabetSize
	}
	return ByteAlphabetSize
}

// ParseKind converts a name as returned by [Kind.String] back to a Kind.
// Matching is case-insensitive.
func ParseKind(name string) (Kind, error) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for kind, kindName := range kindNames {
		if kindName == lowered {
			return kind, nil
		}
	}
	return KindText, ErrUnsupportedFormat.WithMessage(
		fmt.Sprintf("unknown kind %q", name))
}

// KindNames returns the names of all kinds, in declaration order.
func KindNames() []string {
	names := make([]string, 0, len(kindNames))
	for k := KindText; k <= KindColorDifference; k++ {
		names = append(names, kindNames[k])
	}
	return names
}

// ChannelSuffixes are appended to an artifact's base name to get the file for
// each color plane, in R, G, B order.
var ChannelSuffixes = [3]string{"_R", "_G", "_B"}
