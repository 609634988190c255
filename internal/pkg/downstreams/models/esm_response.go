package models

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// ResultPair is one Name/Value (or Name/Result) pair from a generic eSM
// Retrieve or Submit response. The platform reports every task and attribute
// this way, in document order, so the pair sequence is the whole payload.
type ResultPair struct {
	Name  string
	Value string
}

// ParseResultPairs walks the response body and collects Name/Value pairs in
// document order. A pair is a <Name> element followed by the next element
// whose local name begins with V or R (Value, Result), matching how the
// platform interleaves task results with attribute values.
func ParseResultPairs(body []byte) ([]ResultPair, error) {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	var pairs []ResultPair
	var pendingName string
	var hasPending bool

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		local := start.Name.Local
		switch {
		case local == "Name":
			text, err := elementContent(decoder)
			if err != nil {
				return pairs, err
			}
			pendingName = text
			hasPending = true
		case hasPending && (strings.HasPrefix(local, "V") || strings.HasPrefix(local, "R")):
			text, err := elementContent(decoder)
			if err != nil {
				return pairs, err
			}
			pairs = append(pairs, ResultPair{Name: pendingName, Value: text})
			hasPending = false
		}
	}
	return pairs, nil
}

// ElementText returns the character data of the first element with the given
// local name, at any depth.
func ElementText(body []byte, local string) (string, bool) {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := decoder.Token()
		if err != nil {
			return "", false
		}
		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == local {
			text, err := elementContent(decoder)
			if err != nil {
				return "", false
			}
			return text, true
		}
	}
}

// elementContent reads character data up to the matching end element,
// assuming the decoder just consumed the start element.
func elementContent(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := decoder.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 1 {
				sb.Write(t)
			}
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
