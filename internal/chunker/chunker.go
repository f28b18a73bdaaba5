// Package chunker splits long texts into segments that fit the translation
// service's per-document size limit.
package chunker

import "regexp"

// DefaultMaxBytes is the default segment cap. Amazon Translate rejects
// documents over 10,000 bytes; stay under it with headroom for encoding.
const DefaultMaxBytes = 9500

// sentenceRe matches one sentence including its terminator, covering both
// Latin and CJK punctuation.
var sentenceRe = regexp.MustCompile(`[^.!?。！？]*[.!?。！？]+\s*`)

// Split breaks text into segments of at most maxBytes bytes, cutting on
// sentence boundaries where possible. Content and order are preserved:
// concatenating the segments reproduces the input exactly. A single
// sentence longer than maxBytes is hard-split at the cap.
func Split(text string, maxBytes int) []string {
	if text == "" {
		return nil
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if len(text) <= maxBytes {
		return []string{text}
	}

	var segments []string
	var current string

	flush := func() {
		if current != "" {
			segments = append(segments, current)
			current = ""
		}
	}

	for _, piece := range splitSentences(text) {
		// Hard-split pieces that alone exceed the cap.
		for len(piece) > maxBytes {
			flush()
			cut := runeSafeCut(piece, maxBytes)
			segments = append(segments, piece[:cut])
			piece = piece[cut:]
		}
		if len(current)+len(piece) > maxBytes {
			flush()
		}
		current += piece
	}
	flush()

	return segments
}

// splitSentences returns the text as a sequence of sentences; any trailing
// run without a terminator becomes the final piece.
func splitSentences(text string) []string {
	matches := sentenceRe.FindAllString(text, -1)
	consumed := 0
	for _, m := range matches {
		consumed += len(m)
	}
	if consumed < len(text) {
		matches = append(matches, text[consumed:])
	}
	return matches
}

// runeSafeCut returns the largest index <= max that does not split a
// UTF-8 sequence.
func runeSafeCut(s string, max int) int {
	cut := max
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	if cut == 0 {
		return max
	}
	return cut
}
