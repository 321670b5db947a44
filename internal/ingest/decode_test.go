package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRows(t *testing.T) {
	tests := []struct {
		name string
		data string
		want [][]string
	}{
		{
			name: "semicolon with header",
			data: "#;Equipe;Stand;Origine\n1er;Alpha;A1;France\n2ème;Beta;B2;Belgique\n",
			want: [][]string{{"1er", "Alpha", "A1", "France"}, {"2ème", "Beta", "B2", "Belgique"}},
		},
		{
			name: "utf8 bom and accented header",
			data: "\xEF\xBB\xBF#;Équipe;Stand\n1er;Alpha;A1\n",
			want: [][]string{{"1er", "Alpha", "A1"}},
		},
		{
			name: "comma delimited with embedded semicolon",
			data: `"1er;TeamX","StandA","CountryB",10,5,3,1,1` + "\n",
			want: [][]string{{"1er", "TeamX", "StandA", "CountryB", "10", "5", "3", "1", "1"}},
		},
		{
			name: "blank rows and padding",
			data: "\n1;  A1 ;Alpha ;10;7;Beta;B2\n;;;\n\n",
			want: [][]string{{"1", "A1", "Alpha", "10", "7", "Beta", "B2"}},
		},
		{
			name: "crlf line endings",
			data: "n°;Stand;Equipe 1;Score;Score;Equipe 2;Stand\r\n1;A1;Alpha;10;7;Beta;B2\r\n",
			want: [][]string{{"1", "A1", "Alpha", "10", "7", "Beta", "B2"}},
		},
		{
			name: "no header keeps first row",
			data: "1;Alpha;A1\n2;Beta;B2\n",
			want: [][]string{{"1", "Alpha", "A1"}, {"2", "Beta", "B2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := DecodeRows([]byte(tt.data))

			require.NoError(t, err)
			assert.Equal(t, tt.want, rows)
		})
	}
}

func TestDecodeRowsWindows1252(t *testing.T) {
	data := []byte("#;\xC9quipe;Stand;Origine\n1er;Les \xC9cureuils;A1;Fran\xE7ais\n")

	rows, err := DecodeRows(data)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"1er", "Les Écureuils", "A1", "Français"}, rows[0])
}

func TestDecodeRowsEmpty(t *testing.T) {
	rows, err := DecodeRows(nil)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFold(t *testing.T) {
	assert.Equal(t, "equipe", Fold("  Équipe "))
	assert.Equal(t, "2eme", Fold("2ÈME"))
	assert.Equal(t, "vict.", Fold("Vict."))
}
