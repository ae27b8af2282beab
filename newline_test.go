package textio

import "testing"

func TestParseNewline(t *testing.T) {
	tests := []struct {
		in      string
		want    Newline
		wantErr bool
	}{
		{"lf", LF, false},
		{"LF", LF, false},
		{"unix", LF, false},
		{"crlf", CRLF, false},
		{"CrLf", CRLF, false},
		{"dos", CRLF, false},
		{"cr", LF, true},
		{"", LF, true},
	}
	for _, tt := range tests {
		got, err := ParseNewline(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseNewline(%q) err = %v, wantErr %v",
				tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNewline(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultNewline(t *testing.T) {
	if got := defaultNewline("windows"); got != CRLF {
		t.Errorf(`defaultNewline("windows") = %v, want CRLF`, got)
	}
	if got := defaultNewline("linux"); got != LF {
		t.Errorf(`defaultNewline("linux") = %v, want LF`, got)
	}
}

func TestNewlineOfPlainDevice(t *testing.T) {
	if got := NewlineOf(new(chunkDevice)); got != DefaultNewline {
		t.Errorf("NewlineOf() = %v, want %v", got, DefaultNewline)
	}
}

func TestModeAccess(t *testing.T) {
	tests := []struct {
		mode     Mode
		readable bool
		writable bool
	}{
		{ReadWriteMode, true, true},
		{ReadMode, true, false},
		{WriteMode, false, true},
		{AppendMode, false, true},
	}
	for _, tt := range tests {
		if got := tt.mode.readable(); got != tt.readable {
			t.Errorf("%v.readable() = %v, want %v", tt.mode, got, tt.readable)
		}
		if got := tt.mode.writable(); got != tt.writable {
			t.Errorf("%v.writable() = %v, want %v", tt.mode, got, tt.writable)
		}
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{LF.String(), "LF"},
		{CRLF.String(), "CRLF"},
		{Newline(7).String(), "Newline(7)"},
		{LineBuffering.String(), "LineBuffering"},
		{BufferMode(9).String(), "BufferMode(9)"},
		{AppendMode.String(), "AppendMode"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
