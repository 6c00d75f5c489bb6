package ecert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecipients(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Basic CSV",
			input:    "name\nAda Lovelace\nGrace Hopper\n",
			expected: []string{"Ada Lovelace", "Grace Hopper"},
		},
		{
			name:     "UTF-8 BOM",
			input:    "\xEF\xBB\xBFname\r\nAda Lovelace\r\n",
			expected: []string{"Ada Lovelace"},
		},
		{
			name:     "Extra Columns",
			input:    "name,email\nAda Lovelace,ada@example.com\nGrace Hopper\n",
			expected: []string{"Ada Lovelace", "Grace Hopper"},
		},
		{
			name:     "Blank Names Skipped",
			input:    "name\nAda Lovelace\n   \n,orphan@example.com\nGrace Hopper\n",
			expected: []string{"Ada Lovelace", "Grace Hopper"},
		},
		{
			name:     "Quoted Names",
			input:    "name\n\"Hopper, Grace\"\n",
			expected: []string{"Hopper, Grace"},
		},
		{
			name:     "Space Before Quoted Name",
			input:    "name\n  \"Hopper, Grace\"\n",
			expected: []string{"Hopper, Grace"},
		},
		{
			name:     "Header Only",
			input:    "name\n",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := ReadRecipients(strings.NewReader(tt.input))
			require.NoError(t, err)

			names := make([]string, 0, list.Len())
			for _, r := range list.Recipients {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestReadRecipientsHeaderMismatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		got   string
	}{
		{"Capitalized", "Name\nAda Lovelace\n", "Name"},
		{"Plural", "names\nAda Lovelace\n", "names"},
		{"Wrong Column Order", "email,name\nada@example.com,Ada\n", "email"},
		{"Empty", "", ""},
		{"Leading Space", " name\nAda Lovelace\n", " name"},
		{"Trailing Space", "name \nAda Lovelace\n", "name "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := ReadRecipients(strings.NewReader(tt.input))
			assert.Nil(t, list)

			var headerErr *HeaderMismatchError
			require.ErrorAs(t, err, &headerErr)
			assert.Equal(t, tt.got, headerErr.Got)
			assert.ErrorIs(t, err, ErrHeaderMismatch)
		})
	}
}

func TestNewRecipientList(t *testing.T) {
	list, err := NewRecipientList("Alice", " Bob ")
	require.NoError(t, err)
	assert.Equal(t, []Recipient{{Name: "Alice"}, {Name: "Bob"}}, list.Recipients)

	_, err = NewRecipientList("Alice", " ")
	assert.Error(t, err)

	var nilList *RecipientList
	assert.Equal(t, 0, nilList.Len())
}

func TestReadRecipientsInvalidUTF8(t *testing.T) {
	_, err := ReadRecipients(strings.NewReader("name\nAda\n\xff\xfeBob\n"))
	assert.ErrorContains(t, err, "row 3")
}
