package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"inkstatus/status"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
		ok   bool
	}{
		{line: "LOC Office", want: Command{Kind: KindLocation, Location: "Office"}, ok: true},
		{line: "LOC  two  spaces ", want: Command{Kind: KindLocation, Location: " two  spaces "}, ok: true},
		{line: "LOC ", want: Command{Kind: KindLocation, Location: ""}, ok: true},
		{line: "LOCATION x"},
		{line: "LOC"},
		{line: " LOC Office"},
		{line: "loc Office"},
		{line: "TH 21 55", want: Command{Kind: KindReading, Temperature: "21", Humidity: "55"}, ok: true},
		{line: "TH  -5\t9", want: Command{Kind: KindReading, Temperature: "-5", Humidity: "9"}, ok: true},
		{line: "TH 21 55 extra", want: Command{Kind: KindReading, Temperature: "21", Humidity: "55"}, ok: true},
		{line: "TH 21"},
		{line: "TH "},
		{line: "TH 215 55"},
		{line: "TH 21 555"},
		{line: "TH21 55"},
		{line: "THERMAL 1 2"},
		{line: ""},
		{line: "hello"},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.line)
		require.Equal(t, tt.ok, ok, "line %q", tt.line)
		require.Equal(t, tt.want, got, "line %q", tt.line)
	}
}

func TestApplyTouchesOnlyItsFields(t *testing.T) {
	st := status.State{Location: "a", Temperature: "1", Humidity: "2"}

	Command{Kind: KindLocation, Location: "Paris"}.Apply(&st)
	require.Equal(t, status.State{Location: "Paris", Temperature: "1", Humidity: "2"}, st)

	Command{Kind: KindReading, Temperature: "3", Humidity: "4"}.Apply(&st)
	require.Equal(t, status.State{Location: "Paris", Temperature: "3", Humidity: "4"}, st)

	Command{}.Apply(&st)
	require.Equal(t, status.State{Location: "Paris", Temperature: "3", Humidity: "4"}, st)
}

func TestFormatRoundTrip(t *testing.T) {
	line, err := FormatLocation("Kitchen table")
	require.NoError(t, err)
	require.Equal(t, "LOC Kitchen table\n", line)
	cmd, ok := Parse(line[:len(line)-1])
	require.True(t, ok)
	require.Equal(t, "Kitchen table", cmd.Location)

	line, err = FormatReading("21", "5")
	require.NoError(t, err)
	require.Equal(t, "TH 21 5\n", line)
	cmd, ok = Parse(line[:len(line)-1])
	require.True(t, ok)
	require.Equal(t, Command{Kind: KindReading, Temperature: "21", Humidity: "5"}, cmd)
}

func TestFormatRejects(t *testing.T) {
	_, err := FormatLocation("two\nlines")
	require.ErrorIs(t, err, ErrBadLocation)

	for _, tc := range [][2]string{{"100", "5"}, {"", "5"}, {"2", " 5"}, {"2", "a b"}} {
		_, err := FormatReading(tc[0], tc[1])
		require.ErrorIs(t, err, ErrBadToken, "%q %q", tc[0], tc[1])
	}
}
