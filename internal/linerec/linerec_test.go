// internal/linerec/linerec_test.go
package linerec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected Record
	}{
		{
			name: "numeric scalar record",
			line: "11          NTwInpSt    - Number of input stations",
			expected: Record{
				Value: "11",
				Label: "NTwInpSt",
				Descr: "    - Number of input stations",
				Type:  FieldNumeric,
			},
		},
		{
			name: "quoted value keeps its quotes",
			line: `"tower.dat"   TwrFile   - Tower data file`,
			expected: Record{
				Value: `"tower.dat"`,
				Label: "TwrFile",
				Descr: "   - Tower data file",
				Type:  FieldQuoted,
			},
		},
		{
			name: "boolean value",
			line: "True        CompAero  - Compute aerodynamics",
			expected: Record{
				Value: "True",
				Label: "CompAero",
				Descr: "  - Compute aerodynamics",
				Type:  FieldBoolean,
			},
		},
		{
			name: "bare text value",
			line: "NEWTOWER    TwrShad",
			expected: Record{
				Value: "NEWTOWER",
				Label: "TwrShad",
				Descr: "",
				Type:  FieldText,
			},
		},
		{
			name:     "blank line is a comment",
			line:     "   ",
			expected: Record{IsComment: true, Descr: "   "},
		},
		{
			name:     "section separator is a comment",
			line:     "---------------------- TOWER PARAMETERS -----------",
			expected: Record{IsComment: true, Descr: "---------------------- TOWER PARAMETERS -----------"},
		},
		{
			name:     "bang comment",
			line:     "! generated by hand",
			expected: Record{IsComment: true, Descr: "! generated by hand"},
		},
		{
			name: "quoted label is stripped",
			line: `1.5  "GBRatio"  - Gearbox ratio`,
			expected: Record{
				Value: "1.5",
				Label: "GBRatio",
				Descr: "  - Gearbox ratio",
				Type:  FieldNumeric,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokenize(tc.line))
		})
	}
}

func TestFields(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "whitespace delimited",
			line:     "HtFract  TMassDen  TwFAStif  TwSSStif",
			expected: []string{"HtFract", "TMassDen", "TwFAStif", "TwSSStif"},
		},
		{
			name:     "commas and tabs",
			line:     "0.0,\t3474.0, 1.0e9",
			expected: []string{"0.0", "3474.0", "1.0e9"},
		},
		{
			name:     "quoted token with spaces stays atomic",
			line:     `"foil one.dat" second`,
			expected: []string{"foil one.dat", "second"},
		},
		{
			name:     "empty line",
			line:     "",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Fields(tc.line))
		})
	}
}

func TestFirstToken(t *testing.T) {
	tok, rest := FirstToken(`"Wind1VelX"  X-direction wind`)
	require.Equal(t, "Wind1VelX", tok)
	require.Equal(t, "  X-direction wind", rest)

	tok, rest = FirstToken("END of the list")
	require.Equal(t, "END", tok)
	require.Equal(t, " of the list", rest)
}
