package compression

import (
	"fmt"
	"math/bits"

	"github.com/dargueta/lzwcodec"
)

// EncodeResult holds the output of one call to [Encode].
type EncodeResult struct {
	Codes []Code
	// CodeWidth is the number of bits needed to store any code in the final
	// dictionary.
	CodeWidth uint8
	// DictionarySize is the number of entries in the dictionary after the last
	// insertion, including the base alphabet.
	DictionarySize int
}

// CodeWidthFor returns ceil(log2(dictionarySize)), with a minimum of 1.
func CodeWidthFor(dictionarySize int) uint8 {
	if dictionarySize <= 2 {
		return 1
	}
	return uint8(bits.Len(uint(dictionarySize - 1)))
}

func checkAlphabetSize(alphabetSize int) error {
	if alphabetSize < 1 || alphabetSize > MaxDictionarySize {
		return lzwcodec.ErrDomain.WithMessage(
			fmt.Sprintf(
				"alphabet size %d not in range [1, %d]", alphabetSize, MaxDictionarySize))
	}
	return nil
}

// Encode compresses `symbols` using an initial dictionary of `alphabetSize`
// entries. Every symbol must be less than `alphabetSize`.
//
// An empty input gives no codes and the code width of the bare alphabet.
func Encode(symbols []Symbol, alphabetSize int) (EncodeResult, error) {
	if err := checkAlphabetSize(alphabetSize); err != nil {
		return EncodeResult{}, err
	}
	for i, symbol := range symbols {
		if int(symbol) >= alphabetSize {
			return EncodeResult{}, lzwcodec.ErrDomain.WithMessage(
				fmt.Sprintf(
					"symbol %d at position %d not in range [0, %d)",
					symbol,
					i,
					alphabetSize))
		}
	}

	table := newEncoderTable(alphabetSize, MaxDictionarySize)
	if len(symbols) == 0 {
		return EncodeResult{
			Codes:          []Code{},
			CodeWidth:      CodeWidthFor(table.size),
			DictionarySize: table.size,
		}, nil
	}

	codes := make([]Code, 0, len(symbols)/2+1)
	current := int32(symbols[0])
	for _, symbol := range symbols[1:] {
		if code, ok := table.lookup(current, symbol); ok {
			current = int32(code)
			continue
		}

		codes = append(codes, Code(current))
		table.insert(current, symbol)
		current = int32(symbol)
	}
	codes = append(codes, Code(current))

	return EncodeResult{
		Codes:          codes,
		CodeWidth:      CodeWidthFor(table.size),
		DictionarySize: table.size,
	}, nil
}

// EncodeBytes is a convenience wrapper around [Encode] for byte input.
func EncodeBytes(data []byte) (EncodeResult, error) {
	return Encode(BytesToSymbols(data), lzwcodec.ByteAlphabetSize)
}

// BytesToSymbols widens each byte to a [Symbol].
func BytesToSymbols(data []byte) []Symbol {
	symbols := make([]Symbol, len(data))
	for i, b := range data {
		symbols[i] = Symbol(b)
	}
	return symbols
}

// SymbolsToBytes narrows each symbol to a byte. All symbols must be less than
// 256.
func SymbolsToBytes(symbols []Symbol) ([]byte, error) {
	data := make([]byte, len(symbols))
	for i, symbol := range symbols {
		if symbol > 0xff {
			return nil, lzwcodec.ErrDomain.WithMessage(
				fmt.Sprintf("symbol %d at position %d doesn't fit in a byte", symbol, i))
		}
		data[i] = byte(symbol)
	}
	return data, nil
}
