package guigrid

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Parser parses the string values of grid cells into primitive Go types.
// It is used by Row.Scan and ScanRows.
//
// Grid cells contain values as displayed by the host,
// so a Parser has to cope with locale specific formatting
// like comma decimal separators or trailing minus signs.
type Parser interface {
	// IsNil reports if str represents an absent value.
	IsNil(str string) bool

	ParseInt(string) (int64, error)
	ParseUint(string) (uint64, error)
	ParseFloat(string) (float64, error)
	ParseBool(string) (bool, error)
	ParseTime(string) (time.Time, error)
	ParseDuration(string) (time.Duration, error)
}

// Ensure StringParser implements Parser
var _ Parser = new(StringParser)

// StringParser is a configurable implementation of the Parser interface.
//
// Numbers may use a trailing minus sign ("12-") as displayed by
// many ERP grids, floats may use a comma as decimal separator
// and dots or spaces as thousands separators ("1.234,56").
//
// Example:
//
//	parser := guigrid.NewStringParser()
//	parser.TrueStrings = append(parser.TrueStrings, "on")
//	b, _ := parser.ParseBool("on")         // true
//	f, _ := parser.ParseFloat("1.234,5-")  // -1234.5
//	t, _ := parser.ParseTime("15.03.2024") // German date
type StringParser struct {
	// TrueStrings lists all strings that should be parsed as boolean true.
	TrueStrings []string `json:"trueStrings"`

	// FalseStrings lists all strings that should be parsed as boolean false.
	FalseStrings []string `json:"falseStrings"`

	// NilStrings lists all strings that represent absent values.
	NilStrings []string `json:"nilStrings"`

	// TimeFormats lists time layout strings to try when parsing time values.
	// Formats are tried in order until one succeeds.
	TimeFormats []string `json:"timeFormats"`
}

// NewStringParser creates a new StringParser with default configurations:
//   - TrueStrings: "true", "True", "TRUE", "yes", "Yes", "YES", "1", "X"
//   - FalseStrings: "false", "False", "FALSE", "no", "No", "NO", "0", ""
//   - NilStrings: "", "nil", "<nil>", "null", "NULL"
//   - TimeFormats: ISO, RFC and German date formats
//
// "X" and the empty string are the checkbox values of ERP grids.
func NewStringParser() *StringParser {
	return &StringParser{
		TrueStrings:  []string{"true", "True", "TRUE", "yes", "Yes", "YES", "1", "X"},
		FalseStrings: []string{"false", "False", "FALSE", "no", "No", "NO", "0", ""},
		NilStrings:   []string{"", "nil", "<nil>", "null", "NULL"},
		TimeFormats:  timeFormats,
	}
}

func (p *StringParser) IsNil(str string) bool {
	return slices.Contains(p.NilStrings, strings.TrimSpace(str))
}

// normalizeSign moves a trailing minus sign to the front.
func normalizeSign(str string) string {
	str = strings.TrimSpace(str)
	if len(str) > 1 && strings.HasSuffix(str, "-") && !strings.HasPrefix(str, "-") {
		return "-" + strings.TrimSpace(str[:len(str)-1])
	}
	return str
}

func (p *StringParser) ParseInt(str string) (int64, error) {
	return strconv.ParseInt(normalizeSign(str), 10, 64)
}

func (p *StringParser) ParseUint(str string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(str), 10, 64)
}

// ParseFloat parses str as float64 after moving a trailing minus sign
// to the front. If strconv.ParseFloat fails, a single comma is tried
// as decimal separator with dots or spaces as thousands separators
// ("123,45", "1.234,56"). The original error is returned if both fail.
func (p *StringParser) ParseFloat(str string) (float64, error) {
	str = normalizeSign(str)
	f, err := strconv.ParseFloat(str, 64)
	if err == nil {
		return f, nil
	}
	// Comma decimal separator with optional
	// dot or space thousands separators before it
	if strings.Count(str, ",") == 1 && strings.LastIndexByte(str, '.') < strings.IndexByte(str, ',') {
		f, e := strconv.ParseFloat(strings.NewReplacer(".", "", " ", "", ",", ".").Replace(str), 64)
		if e == nil {
			return f, nil
		}
	}
	return 0, err
}

func (p *StringParser) ParseBool(str string) (bool, error) {
	str = strings.TrimSpace(str)
	if slices.Contains(p.TrueStrings, str) {
		return true, nil
	}
	if slices.Contains(p.FalseStrings, str) {
		return false, nil
	}
	return false, fmt.Errorf("cannot parse %q as bool", str)
}

func (p *StringParser) ParseTime(str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	for _, format := range p.TimeFormats {
		t, err := time.Parse(format, str)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as time", str)
}

func (p *StringParser) ParseDuration(str string) (time.Duration, error) {
	return time.ParseDuration(strings.TrimSpace(str))
}

// timeFormats is the default list of time layout strings tried when parsing time values.
var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	formatDateTimeMinute,
	time.DateOnly,
	formatDateTimeGerman,
	formatDateGerman,
	formatDateUS,
	time.TimeOnly,
	formatTimeMinute,
}

const (
	formatDateTimeMinute = "2006-01-02 15:04"
	formatDateTimeGerman = "02.01.2006 15:04:05"
	formatDateGerman     = "02.01.2006"
	formatDateUS         = "01/02/2006"
	formatTimeMinute     = "15:04"
)
