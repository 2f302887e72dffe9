package compression

import (
	"fmt"

	"github.com/dargueta/lzwcodec"
)

// Decode rebuilds the symbols encoded in `codes`. The alphabet size must match
// the one used to encode, and `codeWidth` is the width recorded in the stream.
// The dictionary never grows past 2^codeWidth entries.
//
// If any code is neither in the dictionary nor the next code to be assigned,
// Decode fails with [lzwcodec.ErrCorruptStream] and returns no symbols.
func Decode(codes []Code, alphabetSize int, codeWidth uint8) ([]Symbol, error) {
	if err := checkAlphabetSize(alphabetSize); err != nil {
		return nil, err
	}
	if codeWidth < 1 || codeWidth > MaxCodeWidth {
		return nil, lzwcodec.ErrMalformedStream.WithMessage(
			fmt.Sprintf("code width %d not in range [1, %d]", codeWidth, MaxCodeWidth))
	}

	minimumWidth := CodeWidthFor(alphabetSize)
	if codeWidth < minimumWidth {
		return nil, lzwcodec.ErrMalformedStream.WithMessage(
			fmt.Sprintf(
				"code width %d is too small for an alphabet of %d symbols (need %d)",
				codeWidth,
				alphabetSize,
				minimumWidth))
	}

	if len(codes) == 0 {
		return []Symbol{}, nil
	}

	table := newDecoderTable(alphabetSize, 1<<codeWidth)
	if int(codes[0]) >= alphabetSize {
		return nil, lzwcodec.ErrCorruptStream.WithMessage(
			fmt.Sprintf(
				"first code %d isn't in the base alphabet of %d symbols",
				codes[0],
				alphabetSize))
	}

	output := make([]Symbol, 0, len(codes)*2)
	previous := int32(codes[0])
	output = table.appendPhrase(output, previous)

	for i, code := range codes[1:] {
		var first Symbol
		switch {
		case int(code) < table.size():
			start := len(output)
			output = table.appendPhrase(output, int32(code))
			first = output[start]
		case int(code) == table.size() && !table.full():
			// The code refers to the entry being defined by this very step,
			// which can only be the previous phrase plus its own first symbol.
			first = table.phrases[previous].first
			output = table.appendPhrase(output, previous)
			output = append(output, first)
		default:
			return nil, lzwcodec.ErrCorruptStream.WithMessage(
				fmt.Sprintf(
					"code %d at position %d; dictionary has %d entries",
					code,
					i+1,
					table.size()))
		}

		table.insert(previous, first)
		previous = int32(code)
	}
	return output, nil
}

// DecodeBytes is a convenience wrapper around [Decode] for byte output.
func DecodeBytes(codes []Code, codeWidth uint8) ([]byte, error) {
	symbols, err := Decode(codes, lzwcodec.ByteAlphabetSize, codeWidth)
	if err != nil {
		return nil, err
	}
	return SymbolsToBytes(symbols)
}
