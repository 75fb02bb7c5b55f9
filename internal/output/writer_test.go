package output

import (
	"bytes"
	"testing"

	"github.com/lgbarn/mockfish-go/internal/testutil"
)

func TestColumnWriter(t *testing.T) {
	tests := []struct {
		name    string
		perLine int
		entries []string
		want    string
	}{
		{"empty", 4, nil, ""},
		{"partial line", 4, []string{"a", "b"}, "a\tb\t\n"},
		{"exact line", 2, []string{"a", "b"}, "a\tb\t\n"},
		{"wraps", 2, []string{"a", "b", "c"}, "a\tb\t\nc\t\n"},
		{"zero defaults to four", 0, []string{"a", "b", "c", "d", "e"}, "a\tb\tc\td\t\ne\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cw := NewColumnWriter(&buf, tt.perLine)
			for _, e := range tt.entries {
				cw.Write(e)
			}
			cw.NewLine()
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestColumnWriter_NewLineIdempotent(t *testing.T) {
	var buf bytes.Buffer
	cw := NewColumnWriter(&buf, 4)
	cw.Write("x")
	cw.NewLine()
	cw.NewLine()
	testutil.AssertEqual(t, buf.String(), "x\t\n")
}
