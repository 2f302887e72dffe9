package compression

// Symbol is one unit of input: a byte, a pixel intensity, or a shifted
// residual.
type Symbol uint16

// Code is the index of a phrase in the dictionary.
type Code uint16

// MaxCodeWidth is the widest code a stream can hold.
const MaxCodeWidth = 16

// MaxDictionarySize is the number of entries at which dictionaries stop
// growing.
const MaxDictionarySize = 1 << MaxCodeWidth

// noPrefix marks the phrases of the base alphabet.
const noPrefix = -1

// phraseKey identifies a phrase as an existing phrase plus one more symbol.
// This lets the encoder extend a match in constant time instead of hashing the
// whole sequence.
type phraseKey struct {
	prefix int32
	symbol Symbol
}

// phrase is one decoder dictionary entry.
type phrase struct {
	prefix int32
	last   Symbol
	first  Symbol
	length int
}

// encoderTable maps (prefix, symbol) pairs to codes.
type encoderTable struct {
	codes        map[phraseKey]Code
	alphabetSize int
	size         int
	maxSize      int
}

func newEncoderTable(alphabetSize, maxSize int) *encoderTable {
	return &encoderTable{
		codes:        make(map[phraseKey]Code, 1024),
		alphabetSize: alphabetSize,
		size:         alphabetSize,
		maxSize:      maxSize,
	}
}

// lookup returns the code for `prefix` extended by `symbol`, if there is one.
func (t *encoderTable) lookup(prefix int32, symbol Symbol) (Code, bool) {
	code, ok := t.codes[phraseKey{prefix, symbol}]
	return code, ok
}

// insert assigns the next free code to `prefix` extended by `symbol`. It does
// nothing once the table is full.
func (t *encoderTable) insert(prefix int32, symbol Symbol) {
	if t.size >= t.maxSize {
		return
	}
	t.codes[phraseKey{prefix, symbol}] = Code(t.size)
	t.size++
}

// decoderTable stores phrases by code so they can be expanded by walking the
// prefix chain backwards.
type decoderTable struct {
	phrases []phrase
	maxSize int
}

func newDecoderTable(alphabetSize, maxSize int) *decoderTable {
	initialCapacity := maxSize
	if initialCapacity > 4096 {
		initialCapacity = 4096
	}
	if initialCapacity < alphabetSize {
		initialCapacity = alphabetSize
	}

	t := &decoderTable{
		phrases: make([]phrase, alphabetSize, initialCapacity),
		maxSize: maxSize,
	}
	for i := range t.phrases {
		t.phrases[i] = phrase{
			prefix: noPrefix,
			last:   Symbol(i),
			first:  Symbol(i),
			length: 1,
		}
	}
	return t
}

func (t *decoderTable) size() int {
	return len(t.phrases)
}

func (t *decoderTable) full() bool {
	return len(t.phrases) >= t.maxSize
}

// insert adds the phrase for `prefix` followed by `symbol`. It does nothing once
// the table is full.
func (t *decoderTable) insert(prefix int32, symbol Symbol) {
	if t.full() {
		return
	}
	base := t.phrases[prefix]
	t.phrases = append(t.phrases, phrase{
		prefix: prefix,
		last:   symbol,
		first:  base.first,
		length: base.length + 1,
	})
}

// appendPhrase expands `code` onto the end of `output`.
func (t *decoderTable) appendPhrase(output []Symbol, code int32) []Symbol {
	length := t.phrases[code].length
	start := len(output)
	for i := 0; i < length; i++ {
		output = append(output, 0)
	}

	// Walk the prefix chain, filling in from the back.
	for i := start + length - 1; code != noPrefix; i-- {
		entry := &t.phrases[code]
		output[i] = entry.last
		code = entry.prefix
	}
	return output
}
