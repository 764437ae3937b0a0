package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/why/foundation/why"
)

func parseErr(t *testing.T, source string) error {
	t.Helper()
	_, err := why.Parse(source)
	require.Error(t, err)
	return err
}

func TestSourceLine(t *testing.T) {
	tests := []struct {
		name   string
		source string
		n      int
		want   string
		ok     bool
	}{
		{"first", "a\nb", 1, "a", true},
		{"last without newline", "a\nb", 2, "b", true},
		{"trailing newline", "a\n", 2, "", true},
		{"carriage return", "a\rb", 2, "b", true},
		{"crlf counts twice", "a\r\nb", 3, "b", true},
		{"out of range", "a", 2, "", false},
		{"zero", "a", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SourceLine(tt.source, tt.n)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_Syntax(t *testing.T) {
	source := "x = 1;\ny = (2;"
	err := parseErr(t, source)

	got := NewRenderer(true).Render("main.why", source, err)
	want := "main.why:2:7: error: " + why.ErrorMessage(err) + "\n" +
		" 2 | y = (2;\n" +
		"   |       ^\n"
	assert.Equal(t, want, got)
}

func TestRender_TypeMismatchHint(t *testing.T) {
	source := "int x = 'a';"
	got := NewRenderer(true).Render("t.why", source, parseErr(t, source))

	assert.Contains(t, got, "t.why:1:9: error: ")
	assert.Contains(t, got, "        ^\n")
	assert.Contains(t, got, "   = hint: int expects an integer literal such as 42\n")
}

func TestRender_TabsKeepCaretAligned(t *testing.T) {
	source := "\tx = ;"
	got := NewRenderer(true).Render("t.why", source, parseErr(t, source))
	assert.Contains(t, got, " 1 | \tx = ;\n   | \t    ^\n")
}

func TestRender_NoLocation(t *testing.T) {
	got := NewRenderer(true).Render("empty.why", "", parseErr(t, ""))
	assert.Equal(t, "empty.why: error: there was no text in the source\n"+
		" = hint: a program needs at least one statement\n", got)
}

func TestRender_Nil(t *testing.T) {
	assert.Empty(t, NewRenderer(true).Render("a.why", "x = 1;", nil))
}

func TestRender_Styled(t *testing.T) {
	source := "x = ;"
	got := NewRenderer(false).Render("a.why", source, parseErr(t, source))
	assert.Contains(t, got, "x = ;")
	assert.Contains(t, got, "^")
}

func TestHint(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"unterminated string", "x = \"abc;", "close the string with \""},
		{"misspelled type", "mapping@string->flaot m = &{};", "did you mean 'float'?"},
		{"array mismatch", "array@int xs = 3;", "array@int expects an array literal such as [1, 2]"},
		{"nested mismatch", "array@int xs = [1, 'b'];", "int expects an integer literal such as 42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hint(parseErr(t, tt.source)))
		})
	}

	assert.Empty(t, Hint(errors.New("plain")))
}

func TestHintDistance(t *testing.T) {
	assert.Equal(t, 0, hintDistance("x"))
	assert.Equal(t, 1, hintDistance("fro"))
	assert.Equal(t, 2, hintDistance("whille"))
}

func TestBuild(t *testing.T) {
	source := "x = 1;\ny = (2;"
	d := Build("a.why", source, parseErr(t, source))
	assert.Equal(t, 2, d.Location.Line)
	assert.Equal(t, 7, d.Location.Column)
	assert.Equal(t, "y = (2;", d.Line)
}
