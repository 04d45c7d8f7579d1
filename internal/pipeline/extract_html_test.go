package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHTMLTable(t *testing.T) {
	html := `
<html><body>
<table><tr><td>Расписание занятий</td></tr></table>
<table>
  <tr><th>Группа</th><th> Физическое
     Лицо </th><th></th></tr>
  <tr><td>ИП-111</td><td>Петров  Иван
      Сергеевич</td><td>x</td></tr>
  <tr><td></td><td></td><td></td></tr>
  <tr><td>ИП-117</td></tr>
</table>
</body></html>`

	records, err := parseHTMLTable(html)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 2, records[0].Len(), "blank header cells drop their column")
	name, _ := records[0].Str("Физическое Лицо")
	assert.Equal(t, "Петров Иван Сергеевич", name)

	group, _ := records[1].Str("Группа")
	assert.Equal(t, "ИП-117", group)
	name, ok := records[1].Str("Физическое Лицо")
	assert.True(t, ok)
	assert.Equal(t, "", name)
}

func TestParseHTMLTableWithoutTable(t *testing.T) {
	_, err := parseHTMLTable(`<p>нет расписания</p>`)
	assert.ErrorIs(t, err, errNoTable)
}
