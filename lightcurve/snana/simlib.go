package snana

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrBadObservation   = errors.New("snana: improperly formatted observation line")
	ErrObservationOrder = errors.New("snana: observation line precedes LIBID, TELESCOPE, or PIXSIZE")
	ErrFieldBeforeLibID = errors.New("snana: field keyword defined before LIBID")
)

// Field holds the characteristics of one simlib field, keyed by LIBID.
type Field struct {
	RA    float64
	Dec   float64
	MWEBV float64
}

// Obs is a single simlib observation. Search is true for "S:" lines and
// false for "T:" (template) lines.
type Obs struct {
	FieldID   int
	Search    bool
	Date      float64
	IDExpt    int
	Telescope string
	Band      string
	PixSize   float64
	Gain      float64
	Noise     float64
	SkySig    float64
	PSF1      float64
	PSF2      float64
	PSFRatio  float64
	ZPTAvg    float64
	ZPTSig    float64
	Mag       float64
}

// Simlib is the parsed content of an SNANA simlib file.
type Simlib struct {
	// Header collects keywords not claimed by field or observation
	// handling.
	Header map[string]string
	// Fields maps LIBID to field characteristics; FieldOrder preserves
	// the order of first appearance.
	Fields     map[int]Field
	FieldOrder []int
	Obs        []Obs
}

// Keywords given special treatment while parsing.
const (
	keyFieldID   = "LIBID"
	keyTelescope = "TELESCOPE"
	keyPixSize   = "PIXSIZE"
)

var fieldKeys = map[string]bool{"RA": true, "DECL": true, "MWEBV": true}

var ignoreKeys = map[string]bool{
	"FIELD": true, "NOBS": true, "END_LIBID": true, "END_OF_SIMLIB": true,
}

// ReadSimlib parses an SNANA simlib stream.
func ReadSimlib(r io.Reader) (*Simlib, error) {
	s := &Simlib{
		Header: make(map[string]string),
		Fields: make(map[int]Field),
	}

	// Most recently encountered context, applied to each observation.
	var (
		fieldID     int
		haveField   bool
		telescope   string
		haveScope   bool
		pixSize     float64
		havePixSize bool
	)

	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := stripComment(scanner.Text())

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		if words[0] == "S:" || words[0] == "T:" {
			if len(words) < 13 {
				return nil, fmt.Errorf("%w: %q", ErrBadObservation, line)
			}

			if !haveField || !haveScope || !havePixSize {
				return nil, ErrObservationOrder
			}

			obs, err := parseObs(words, fieldID, telescope, pixSize)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrBadObservation, line, err)
			}

			s.Obs = append(s.Obs, obs)

			continue
		}

		for key, val := range parseKeywords(words) {
			switch {
			case key == keyFieldID:
				id, err := strconv.Atoi(val)
				if err != nil {
					return nil, fmt.Errorf("snana: bad LIBID %q: %w", val, err)
				}

				fieldID = id
				haveField = true

				if _, seen := s.Fields[id]; !seen {
					s.Fields[id] = Field{}
					s.FieldOrder = append(s.FieldOrder, id)
				}

			case key == keyTelescope:
				telescope = val
				haveScope = true

			case key == keyPixSize:
				v, err := strconv.ParseFloat(val, 64)
				if err != nil {
					return nil, fmt.Errorf("snana: bad PIXSIZE %q: %w", val, err)
				}

				pixSize = v
				havePixSize = true

			case fieldKeys[key]:
				if !haveField {
					return nil, ErrFieldBeforeLibID
				}

				v, err := strconv.ParseFloat(val, 64)
				if err != nil {
					return nil, fmt.Errorf("snana: bad %s %q: %w", key, val, err)
				}

				f := s.Fields[fieldID]

				switch key {
				case "RA":
					f.RA = v
				case "DECL":
					f.Dec = v
				case "MWEBV":
					f.MWEBV = v
				}

				s.Fields[fieldID] = f

			case ignoreKeys[key]:
				// Block delimiters and counts carry no information of
				// their own.

			default:
				s.Header[key] = val
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("snana: read failed: %w", err)
	}

	return s, nil
}

// parseObs decodes the 12 values following an S:/T: prefix.
func parseObs(words []string, fieldID int, telescope string, pixSize float64) (Obs, error) {
	vals := make([]float64, 12)

	for i, w := range words[1:13] {
		// The exposure id (index 1) and band (index 2) are not floats.
		if i == 1 || i == 2 {
			continue
		}

		v, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return Obs{}, err
		}

		vals[i] = v
	}

	idexpt, err := strconv.Atoi(words[2])
	if err != nil {
		return Obs{}, err
	}

	return Obs{
		FieldID:   fieldID,
		Search:    words[0] == "S:",
		Date:      vals[0],
		IDExpt:    idexpt,
		Telescope: telescope,
		Band:      words[3],
		PixSize:   pixSize,
		Gain:      vals[3],
		Noise:     vals[4],
		SkySig:    vals[5],
		PSF1:      vals[6],
		PSF2:      vals[7],
		PSFRatio:  vals[8],
		ZPTAvg:    vals[9],
		ZPTSig:    vals[10],
		Mag:       vals[11],
	}, nil
}

// parseKeywords splits a non-observation line into keyword/value pairs.
// Words before the first keyword are ignored; the value of a keyword is
// all words up to the next one, joined by single spaces.
func parseKeywords(words []string) map[string]string {
	vals := make(map[string]string)

	var current string

	for _, word := range words {
		if isKeyword(word) {
			current = strings.TrimSuffix(word, ":")
			vals[current] = ""

			continue
		}

		if current == "" {
			continue
		}

		if vals[current] == "" {
			vals[current] = word
		} else {
			vals[current] += " " + word
		}
	}

	// Keywords with no value carry nothing to act on.
	for key, val := range vals {
		if val == "" {
			delete(vals, key)
		}
	}

	return vals
}

// isKeyword reports whether a word names a keyword: it ends in ':' and
// its letters are all uppercase, with at least one letter present.
func isKeyword(word string) bool {
	if len(word) < 2 || !strings.HasSuffix(word, ":") {
		return false
	}

	name := word[:len(word)-1]
	hasLetter := false

	for _, r := range name {
		if unicode.IsLetter(r) {
			hasLetter = true

			if !unicode.IsUpper(r) {
				return false
			}
		}
	}

	return hasLetter
}

// stripComment removes everything from the first '#' onward.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}

	return line
}
