// Package compression implements the LZW dictionary coder used by every
// container this module produces.
//
// Input is a sequence of symbols drawn from a fixed base alphabet: 256 symbols
// for bytes and pixel intensities, or 511 for residuals produced by the
// predictive filter and shifted into [0, 510]. The dictionary starts with one
// entry per base symbol and grows by one entry for every code emitted, except
// the last. For example, encoding "TOBEORNOTTOBEORTOBEORNOT" over the byte
// alphabet gives
//
//	T O B E O R N O T 256 258 260 265 259 261 263
//
// where 256 is "TO", 258 is "BE", and so on.
//
// The width of each code on the wire is fixed for a whole stream and is
// derived from the final dictionary size, so the encoder has to finish before
// anything can be serialized. Dictionaries stop growing at 2^[MaxCodeWidth]
// entries. Past that point the encoder keeps matching against existing phrases
// and the decoder skips insertions the same way, so the two stay in lockstep.
//
// Every call to [Encode] or [Decode] builds its own dictionary. Nothing is
// shared between calls, so they're safe to run concurrently.
package compression
