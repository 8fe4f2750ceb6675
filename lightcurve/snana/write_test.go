package snana

import (
	"errors"
	"strings"
	"testing"
)

func TestWriteLC(t *testing.T) {
	var sb strings.Builder

	meta := []MetaEntry{
		{Key: "survey", Value: "SDSS"},
		{Key: "ra", Value: "12.345"},
	}
	columns := []string{"date", "band", "flux"}
	rows := [][]string{
		{"55100.5", "g", "1.25"},
		{"55101.5", "r", "2.50"},
	}

	if err := WriteLC(&sb, meta, columns, rows, nil); err != nil {
		t.Fatalf("WriteLC: %v", err)
	}

	got := sb.String()
	want := "SURVEY: SDSS\n" +
		"RA: 12.345\n" +
		"\n" +
		"# ==========================================\n" +
		"# TERSE LIGHT CURVE OUTPUT:\n" +
		"#\n" +
		"NOBS: 2\n" +
		"NVAR: 3\n" +
		"VARLIST: DATE BAND FLUX\n" +
		"OBS: 55100.5 g 1.25\n" +
		"OBS: 55101.5 r 2.50\n"

	if got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteLCCustomVarlist(t *testing.T) {
	var sb strings.Builder

	err := WriteLC(&sb, nil, []string{"date", "flux"}, nil, []string{"MJD", "FLUXCAL"})
	if err != nil {
		t.Fatalf("WriteLC: %v", err)
	}

	if !strings.Contains(sb.String(), "VARLIST: MJD FLUXCAL\n") {
		t.Errorf("varlist not honored:\n%s", sb.String())
	}

	if !strings.Contains(sb.String(), "NOBS: 0\n") {
		t.Errorf("empty table should write NOBS: 0:\n%s", sb.String())
	}
}

func TestWriteLCErrors(t *testing.T) {
	var sb strings.Builder

	err := WriteLC(&sb, nil, []string{"a", "b"}, nil, []string{"A"})
	if !errors.Is(err, ErrVarlistLength) {
		t.Errorf("short varlist: got %v, want ErrVarlistLength", err)
	}

	err = WriteLC(&sb, nil, []string{"a", "b"}, [][]string{{"1"}}, nil)
	if !errors.Is(err, ErrRowLength) {
		t.Errorf("short row: got %v, want ErrRowLength", err)
	}
}
