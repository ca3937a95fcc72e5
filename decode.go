// FILE: lixenwraith/hhopts/decode.go
package hhopts

import (
	"fmt"
	"strconv"
	"strings"
)

// Decoder selects how a raw value string is turned into a Value.
// The set of decoders is closed; Decode dispatches on the tag.
type Decoder int

const (
	// DecodeString wraps the raw string unchanged. It is the default decoder.
	DecodeString Decoder = iota
	// DecodeInt parses a base-10 signed integer of platform int width.
	DecodeInt
	// DecodeCSVStrings splits on ',' into a list of strings.
	DecodeCSVStrings
	// DecodeCSVKeyValue splits on ',' into key:value pairs.
	DecodeCSVKeyValue
)

// String returns the decoder name accepted by ParseDecoder.
func (d Decoder) String() string {
	switch d {
	case DecodeString:
		return "string"
	case DecodeInt:
		return "int"
	case DecodeCSVStrings:
		return "csv"
	case DecodeCSVKeyValue:
		return "csv-kv"
	default:
		return fmt.Sprintf("Decoder(%d)", int(d))
	}
}

// ParseDecoder returns the decoder with the given name.
func ParseDecoder(name string) (Decoder, error) {
	for _, d := range Decoders() {
		if d.String() == name {
			return d, nil
		}
	}
	return DecodeString, fmt.Errorf("%w: %q", ErrUnknownDecoder, name)
}

// Decoders returns all decoders in tag order.
func Decoders() []Decoder {
	return []Decoder{DecodeString, DecodeInt, DecodeCSVStrings, DecodeCSVKeyValue}
}

// Result is the outcome of DecodeDetailed.
type Result struct {
	Value Value
	// Dropped lists CSV key/value entries that had no ':' and were skipped
	Dropped []string
}

// Decode converts raw into a Value.
// Only DecodeInt can fail; the error wraps ErrInvalidValue.
func (d Decoder) Decode(raw string) (Value, error) {
	res, err := d.DecodeDetailed(raw)
	return res.Value, err
}

// DecodeDetailed is like Decode but also reports entries the CSV key/value
// decoder skipped. The decoded value is identical to Decode's.
func (d Decoder) DecodeDetailed(raw string) (Result, error) {
	switch d {
	case DecodeString:
		return Result{Value: StringValue(raw)}, nil
	case DecodeInt:
		v, err := parseInt(raw)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: v}, nil
	case DecodeCSVStrings:
		return Result{Value: parseCSVStrings(raw)}, nil
	case DecodeCSVKeyValue:
		v, dropped := parseCSVKeyValue(raw)
		return Result{Value: v, Dropped: dropped}, nil
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownDecoder, d)
	}
}

// parseInt accepts an optional sign followed by decimal digits only.
// Whitespace, underscores and base prefixes are rejected.
func parseInt(raw string) (Value, error) {
	i, err := strconv.ParseInt(raw, 10, strconv.IntSize)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q is not a decimal integer", ErrInvalidValue, raw)
	}
	return IntValue(int(i)), nil
}

func parseCSVStrings(raw string) Value {
	return ListValue(strings.Split(raw, ","))
}

// parseCSVKeyValue splits each entry at its first ':'. Entries without ':'
// are returned in dropped and left out of the map. Later keys overwrite earlier ones.
func parseCSVKeyValue(raw string) (Value, []string) {
	m := make(map[string]string)
	var dropped []string
	for _, entry := range strings.Split(raw, ",") {
		key, val, found := strings.Cut(entry, ":")
		if !found {
			dropped = append(dropped, entry)
			continue
		}
		m[key] = val
	}
	return MapValue(m), dropped
}
