package types

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pgsqlite/pgsqlite/pkg/util/pgerror"
	"github.com/shopspring/decimal"
)

// Converter is the per-OID value converter contract from spec.md §4.3:
// TextEncode/TextDecode and BinaryEncode/BinaryDecode must round-trip on the
// storage representation.
type Converter interface {
	OID() uint32
	TextEncode(storage any) ([]byte, error)
	TextDecode(wire []byte) (any, error)
	BinaryEncode(storage any) ([]byte, error)
	BinaryDecode(wire []byte) (any, error)
}

// ConverterFor returns the converter for a given OID, falling back to the
// text converter for anything not specially handled — PostgreSQL clients
// generally accept text format for types they don't negotiate binary for.
func ConverterFor(oid uint32) Converter {
	switch oid {
	case pgtype.BoolOID:
		return boolConverter{}
	case pgtype.Int2OID, pgtype.Int4OID, pgtype.Int8OID, pgtype.OIDOID:
		return intConverter{oid: oid}
	case pgtype.Float4OID, pgtype.Float8OID:
		return floatConverter{oid: oid}
	case pgtype.NumericOID:
		return numericConverter{}
	case pgtype.DateOID:
		return dateConverter{}
	case pgtype.TimeOID:
		return timeConverter{}
	case pgtype.TimestampOID, pgtype.TimestamptzOID:
		return timestampConverter{oid: oid}
	case pgtype.ByteaOID:
		return byteaConverter{}
	case pgtype.UUIDOID:
		return uuidConverter{}
	case pgtype.JSONOID, pgtype.JSONBOID:
		return jsonConverter{oid: oid}
	default:
		return textConverter{oid: oid}
	}
}

// --- text ---

type textConverter struct{ oid uint32 }

func (c textConverter) OID() uint32 { return c.oid }
func (c textConverter) TextEncode(storage any) ([]byte, error) {
	return []byte(fmt.Sprintf("%v", storage)), nil
}
func (c textConverter) TextDecode(wire []byte) (any, error) { return string(wire), nil }
func (c textConverter) BinaryEncode(storage any) ([]byte, error) {
	return c.TextEncode(storage)
}
func (c textConverter) BinaryDecode(wire []byte) (any, error) { return c.TextDecode(wire) }

// --- bool: storage INTEGER 0/1, wire text 't'/'f' ---

type boolConverter struct{}

func (boolConverter) OID() uint32 { return pgtype.BoolOID }
func (boolConverter) TextEncode(storage any) ([]byte, error) {
	v, err := asBool(storage)
	if err != nil {
		return nil, err
	}
	if v {
		return []byte("t"), nil
	}
	return []byte("f"), nil
}
func (boolConverter) TextDecode(wire []byte) (any, error) {
	switch string(wire) {
	case "t", "true", "1":
		return true, nil
	case "f", "false", "0":
		return false, nil
	default:
		return nil, pgerror.New(pgerrcode.InvalidTextRepresentation, "invalid boolean text representation")
	}
}
func (boolConverter) BinaryEncode(storage any) ([]byte, error) {
	v, err := asBool(storage)
	if err != nil {
		return nil, err
	}
	if v {
		return []byte{1}, nil
	}
	return []byte{0}, nil
}
func (boolConverter) BinaryDecode(wire []byte) (any, error) {
	if len(wire) != 1 {
		return nil, pgerror.New(pgerrcode.ProtocolViolation, "bad boolean binary length")
	}
	return wire[0] != 0, nil
}

func asBool(storage any) (bool, error) {
	switch v := storage.(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case int:
		return v != 0, nil
	default:
		return false, pgerror.New(pgerrcode.DatatypeMismatch, "value is not boolean")
	}
}

// --- integers ---

type intConverter struct{ oid uint32 }

func (c intConverter) OID() uint32 { return c.oid }
func (c intConverter) TextEncode(storage any) ([]byte, error) {
	i, err := asInt64(storage)
	if err != nil {
		return nil, err
	}
	return []byte(strconv.FormatInt(i, 10)), nil
}
func (c intConverter) TextDecode(wire []byte) (any, error) {
	i, err := strconv.ParseInt(string(wire), 10, 64)
	if err != nil {
		return nil, pgerror.New(pgerrcode.InvalidTextRepresentation, "invalid integer text representation")
	}
	return i, nil
}
func (c intConverter) BinaryEncode(storage any) ([]byte, error) {
	i, err := asInt64(storage)
	if err != nil {
		return nil, err
	}
	switch c.oid {
	case pgtype.Int2OID:
		if i < math.MinInt16 || i > math.MaxInt16 {
			return nil, pgerror.New(pgerrcode.NumericValueOutOfRange, "smallint out of range")
		}
		buf := make([]byte, 2)
		binary.BigEndian.PutUint16(buf, uint16(i))
		return buf, nil
	case pgtype.Int4OID, pgtype.OIDOID:
		if i < math.MinInt32 || i > math.MaxInt32 {
			return nil, pgerror.New(pgerrcode.NumericValueOutOfRange, "integer out of range")
		}
		buf := make([]byte, 4)
		binary.BigEndian.PutUint32(buf, uint32(i))
		return buf, nil
	default:
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(i))
		return buf, nil
	}
}
func (c intConverter) BinaryDecode(wire []byte) (any, error) {
	switch len(wire) {
	case 2:
		return int64(int16(binary.BigEndian.Uint16(wire))), nil
	case 4:
		return int64(int32(binary.BigEndian.Uint32(wire))), nil
	case 8:
		return int64(binary.BigEndian.Uint64(wire)), nil
	default:
		return nil, pgerror.New(pgerrcode.ProtocolViolation, "bad integer binary length")
	}
}

func asInt64(storage any) (int64, error) {
	switch v := storage.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case string:
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, pgerror.New(pgerrcode.DatatypeMismatch, "value is not an integer")
		}
		return i, nil
	default:
		return 0, pgerror.New(pgerrcode.DatatypeMismatch, "value is not an integer")
	}
}

// --- floats ---

type floatConverter struct{ oid uint32 }

func (c floatConverter) OID() uint32 { return c.oid }
func (c floatConverter) TextEncode(storage any) ([]byte, error) {
	f, err := asFloat64(storage)
	if err != nil {
		return nil, err
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}
func (c floatConverter) TextDecode(wire []byte) (any, error) {
	f, err := strconv.ParseFloat(string(wire), 64)
	if err != nil {
		return nil, pgerror.New(pgerrcode.InvalidTextRepresentation, "invalid float text representation")
	}
	return f, nil
}
func (c floatConverter) BinaryEncode(storage any) ([]byte, error) {
	f, err := asFloat64(storage)
	if err != nil {
		return nil, err
	}
	if c.oid == pgtype.Float4OID {
		buf := make([]byte, 4)
		binary.BigEndian.PutUint32(buf, math.Float32bits(float32(f)))
		return buf, nil
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(f))
	return buf, nil
}
func (c floatConverter) BinaryDecode(wire []byte) (any, error) {
	switch len(wire) {
	case 4:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(wire))), nil
	case 8:
		return math.Float64frombits(binary.BigEndian.Uint64(wire)), nil
	default:
		return nil, pgerror.New(pgerrcode.ProtocolViolation, "bad float binary length")
	}
}

func asFloat64(storage any) (float64, error) {
	switch v := storage.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, pgerror.New(pgerrcode.DatatypeMismatch, "value is not a float")
		}
		return f, nil
	default:
		return 0, pgerror.New(pgerrcode.DatatypeMismatch, "value is not a float")
	}
}

// --- numeric: storage is text, formatted per (precision,scale) via shopspring/decimal ---

type numericConverter struct{}

func (numericConverter) OID() uint32 { return pgtype.NumericOID }
func (numericConverter) TextEncode(storage any) ([]byte, error) {
	switch v := storage.(type) {
	case string:
		return []byte(v), nil
	case decimal.Decimal:
		return []byte(v.String()), nil
	default:
		return []byte(fmt.Sprintf("%v", v)), nil
	}
}
func (numericConverter) TextDecode(wire []byte) (any, error) {
	if _, err := decimal.NewFromString(string(wire)); err != nil {
		return nil, pgerror.New(pgerrcode.InvalidTextRepresentation, "invalid numeric text representation")
	}
	return string(wire), nil
}
func (c numericConverter) BinaryEncode(storage any) ([]byte, error) { return c.TextEncode(storage) }
func (c numericConverter) BinaryDecode(wire []byte) (any, error)    { return c.TextDecode(wire) }

// FormatNumeric rounds and zero-pads a decimal string to (precision,scale),
// used by the Numeric Format Translator (spec §4.5 stage 7).
func FormatNumeric(raw string, precision, scale int32) (string, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "", pgerror.New(pgerrcode.InvalidTextRepresentation, "invalid numeric value")
	}
	rounded := d.Round(scale)
	maxDigits := precision - scale
	intPart := rounded.Truncate(0).Abs()
	if maxDigits >= 0 && intPart.GreaterThanOrEqual(decimal.New(1, maxDigits)) {
		return "", pgerror.New(pgerrcode.NumericValueOutOfRange, fmt.Sprintf("numeric field overflow for NUMERIC(%d,%d)", precision, scale))
	}
	return rounded.StringFixed(scale), nil
}

// --- date/time: storage is integer (days/seconds/microseconds since epoch) ---

type dateConverter struct{}

func (dateConverter) OID() uint32 { return pgtype.DateOID }
func (dateConverter) TextEncode(storage any) ([]byte, error) {
	days, err := asInt64(storage)
	if err != nil {
		return nil, err
	}
	t := time.Unix(days*86400, 0).UTC()
	return []byte(t.Format("2006-01-02")), nil
}
func (dateConverter) TextDecode(wire []byte) (any, error) {
	t, err := time.Parse("2006-01-02", string(wire))
	if err != nil {
		return nil, pgerror.New(pgerrcode.InvalidTextRepresentation, "invalid date text representation")
	}
	return t.Unix() / 86400, nil
}
func (c dateConverter) BinaryEncode(storage any) ([]byte, error) { return c.TextEncode(storage) }
func (c dateConverter) BinaryDecode(wire []byte) (any, error)    { return c.TextDecode(wire) }

type timeConverter struct{}

func (timeConverter) OID() uint32 { return pgtype.TimeOID }
func (timeConverter) TextEncode(storage any) ([]byte, error) {
	secs, err := asInt64(storage)
	if err != nil {
		return nil, err
	}
	h, m, s := secs/3600, (secs/60)%60, secs%60
	return []byte(fmt.Sprintf("%02d:%02d:%02d", h, m, s)), nil
}
func (timeConverter) TextDecode(wire []byte) (any, error) {
	t, err := time.Parse("15:04:05", string(wire))
	if err != nil {
		return nil, pgerror.New(pgerrcode.InvalidTextRepresentation, "invalid time text representation")
	}
	return int64(t.Hour()*3600 + t.Minute()*60 + t.Second()), nil
}
func (c timeConverter) BinaryEncode(storage any) ([]byte, error) { return c.TextEncode(storage) }
func (c timeConverter) BinaryDecode(wire []byte) (any, error)    { return c.TextDecode(wire) }

type timestampConverter struct{ oid uint32 }

func (c timestampConverter) OID() uint32 { return c.oid }
func (c timestampConverter) TextEncode(storage any) ([]byte, error) {
	micros, err := asInt64(storage)
	if err != nil {
		return nil, err
	}
	t := time.UnixMicro(micros).UTC()
	return []byte(t.Format("2006-01-02 15:04:05.999999")), nil
}
func (c timestampConverter) TextDecode(wire []byte) (any, error) {
	for _, layout := range []string{"2006-01-02 15:04:05.999999", "2006-01-02 15:04:05", "2006-01-02T15:04:05Z07:00"} {
		if t, err := time.Parse(layout, string(wire)); err == nil {
			return t.UnixMicro(), nil
		}
	}
	return nil, pgerror.New(pgerrcode.InvalidTextRepresentation, "invalid timestamp text representation")
}
func (c timestampConverter) BinaryEncode(storage any) ([]byte, error) { return c.TextEncode(storage) }
func (c timestampConverter) BinaryDecode(wire []byte) (any, error)    { return c.TextDecode(wire) }

// --- bytea ---

type byteaConverter struct{}

func (byteaConverter) OID() uint32 { return pgtype.ByteaOID }
func (byteaConverter) TextEncode(storage any) ([]byte, error) {
	b, ok := storage.([]byte)
	if !ok {
		return nil, pgerror.New(pgerrcode.DatatypeMismatch, "value is not bytea")
	}
	out := make([]byte, 0, 2+len(b)*2)
	out = append(out, '\\', 'x')
	const hex = "0123456789abcdef"
	for _, c := range b {
		out = append(out, hex[c>>4], hex[c&0xf])
	}
	return out, nil
}
func (byteaConverter) TextDecode(wire []byte) (any, error) {
	s := string(wire)
	if !strings.HasPrefix(s, "\\x") {
		return nil, pgerror.New(pgerrcode.InvalidTextRepresentation, "invalid bytea text representation")
	}
	s = s[2:]
	if len(s)%2 != 0 {
		return nil, pgerror.New(pgerrcode.InvalidTextRepresentation, "invalid bytea hex length")
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		var b byte
		if _, err := fmt.Sscanf(s[i*2:i*2+2], "%02x", &b); err != nil {
			return nil, pgerror.New(pgerrcode.InvalidTextRepresentation, "invalid bytea hex digit")
		}
		out[i] = b
	}
	return out, nil
}
func (byteaConverter) BinaryEncode(storage any) ([]byte, error) {
	b, ok := storage.([]byte)
	if !ok {
		return nil, pgerror.New(pgerrcode.DatatypeMismatch, "value is not bytea")
	}
	return b, nil
}
func (byteaConverter) BinaryDecode(wire []byte) (any, error) { return wire, nil }

// --- uuid: storage canonical lowercase 36-char text ---

type uuidConverter struct{}

func (uuidConverter) OID() uint32 { return pgtype.UUIDOID }
func (uuidConverter) TextEncode(storage any) ([]byte, error) {
	s, ok := storage.(string)
	if !ok {
		return nil, pgerror.New(pgerrcode.DatatypeMismatch, "value is not uuid")
	}
	return []byte(strings.ToLower(s)), nil
}
func (uuidConverter) TextDecode(wire []byte) (any, error) {
	s := strings.ToLower(string(wire))
	if len(s) != 36 {
		return nil, pgerror.New(pgerrcode.InvalidTextRepresentation, "invalid uuid text representation")
	}
	return s, nil
}
func (c uuidConverter) BinaryEncode(storage any) ([]byte, error) { return c.TextEncode(storage) }
func (c uuidConverter) BinaryDecode(wire []byte) (any, error)    { return c.TextDecode(wire) }

// --- json/jsonb: storage is JSON text ---

type jsonConverter struct{ oid uint32 }

func (c jsonConverter) OID() uint32 { return c.oid }
func (jsonConverter) TextEncode(storage any) ([]byte, error) {
	s, ok := storage.(string)
	if !ok {
		return nil, pgerror.New(pgerrcode.DatatypeMismatch, "value is not json")
	}
	return []byte(s), nil
}
func (jsonConverter) TextDecode(wire []byte) (any, error) {
	var probe any
	if err := json.Unmarshal(wire, &probe); err != nil {
		return nil, pgerror.New(pgerrcode.InvalidTextRepresentation, "invalid json text representation")
	}
	return string(wire), nil
}
func (c jsonConverter) BinaryEncode(storage any) ([]byte, error) { return c.TextEncode(storage) }
func (c jsonConverter) BinaryDecode(wire []byte) (any, error)    { return c.TextDecode(wire) }
