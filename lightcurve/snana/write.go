package snana

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrVarlistLength = errors.New("snana: varlist length must match column count")
	ErrRowLength     = errors.New("snana: row length must match column count")
)

// MetaEntry is one ordered key/value pair of light-curve metadata.
type MetaEntry struct {
	Key   string
	Value string
}

// WriteLC writes rows as an SNANA TERSE light-curve file. Metadata keys
// and column names are uppercased on output. varlist overrides the
// printed column names; when nil, the uppercased column names are used.
func WriteLC(w io.Writer, meta []MetaEntry, columns []string, rows [][]string, varlist []string) error {
	if varlist == nil {
		varlist = make([]string, len(columns))
		for i, c := range columns {
			varlist[i] = strings.ToUpper(c)
		}
	} else if len(varlist) != len(columns) {
		return ErrVarlistLength
	}

	for _, m := range meta {
		if _, err := fmt.Fprintf(w, "%s: %s\n", strings.ToUpper(m.Key), m.Value); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n"+
		"# ==========================================\n"+
		"# TERSE LIGHT CURVE OUTPUT:\n"+
		"#\n"+
		"NOBS: %d\n"+
		"NVAR: %d\n"+
		"VARLIST: %s\n", len(rows), len(columns), strings.Join(varlist, " "))
	if err != nil {
		return err
	}

	for _, row := range rows {
		if len(row) != len(columns) {
			return ErrRowLength
		}

		if _, err := fmt.Fprintf(w, "OBS: %s\n", strings.Join(row, " ")); err != nil {
			return err
		}
	}

	return nil
}
