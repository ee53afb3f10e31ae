package oneinch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type tokenMeta struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
	LogoURI  string `json:"logoURI"`
}

type objectEntry struct {
	key   string
	value json.RawMessage
}

// decodeTokenMap turns the address-keyed token map into a list, keeping the
// document's key order. The map may be bare or wrapped as {"tokens": {...}}.
// The key is the token address; on a repeated address the first entry wins.
func decodeTokenMap(b []byte) ([]Token, error) {
	entries, err := orderedObject(b)
	if err != nil {
		return nil, err
	}
	if len(entries) == 1 && entries[0].key == "tokens" {
		entries, err = orderedObject(entries[0].value)
		if err != nil {
			return nil, fmt.Errorf("tokens: %w", err)
		}
	}

	seen := make(map[string]struct{}, len(entries))
	tokens := make([]Token, 0, len(entries))
	for _, e := range entries {
		k := strings.ToLower(e.key)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		var m tokenMeta
		if err := json.Unmarshal(e.value, &m); err != nil {
			return nil, fmt.Errorf("token %s: %w", e.key, err)
		}
		tokens = append(tokens, Token{
			Address:  e.key,
			Symbol:   m.Symbol,
			Name:     m.Name,
			Decimals: m.Decimals,
			LogoURI:  m.LogoURI,
		})
	}
	return tokens, nil
}

// orderedObject splits a JSON object into its members without losing order.
func orderedObject(b []byte) ([]objectEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("expected a JSON object")
	}

	var out []objectEntry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("value of %s: %w", key, err)
		}
		out = append(out, objectEntry{key: key, value: v})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}
