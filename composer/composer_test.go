package composer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/iw2rmb/mdpane/buffer"
	"github.com/iw2rmb/mdpane/format"
	"github.com/iw2rmb/mdpane/plugins"
)

func newComposer(t *testing.T, opt Options) *Composer {
	t.Helper()
	c, err := New(opt)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func enter(t *testing.T, c *Composer) {
	t.Helper()
	handled, err := c.Key(plugins.KeyEnter)
	if err != nil || !handled {
		t.Fatalf("enter: handled=%v err=%v", handled, err)
	}
}

func blocks(c *Composer) []string {
	var out []string
	for _, b := range c.Buffer().Blocks() {
		out = append(out, b.Text)
	}
	return out
}

func TestComposer_ListEndToEnd(t *testing.T) {
	c := newComposer(t, Options{})
	c.Buffer().InsertText("- first item")
	enter(t, c)
	c.Buffer().InsertText("second item")
	enter(t, c)
	enter(t, c)

	want := []string{"- first item", "- second item", ""}
	if diff := cmp.Diff(want, blocks(c)); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestComposer_PlainEnterAndBackspaceUseDefaults(t *testing.T) {
	c := newComposer(t, Options{Text: "ab"})
	c.Buffer().SetCursor(buffer.Pos{Offset: 1})
	enter(t, c)
	if diff := cmp.Diff([]string{"a", "b"}, blocks(c)); diff != "" {
		t.Fatalf("after enter (-want +got):\n%s", diff)
	}

	if handled, err := c.Key(plugins.KeyBackspace); err != nil || !handled {
		t.Fatalf("backspace: handled=%v err=%v", handled, err)
	}
	if got, want := c.Text(), "ab"; got != want {
		t.Fatalf("after backspace: got %q, want %q", got, want)
	}

	if handled, err := c.Key(plugins.KeyTab); err != nil || !handled {
		t.Fatalf("tab: handled=%v err=%v", handled, err)
	}
	if got, want := c.Text(), "a    b"; got != want {
		t.Fatalf("after tab: got %q, want %q", got, want)
	}
}

func TestComposer_OnChangeEmitsText(t *testing.T) {
	var got []string
	c := newComposer(t, Options{Text: "x", OnChange: func(text string) { got = append(got, text) }})

	c.Buffer().SetCursor(buffer.Pos{Offset: 1})
	c.Buffer().InsertText("y")
	c.Buffer().Undo()

	if diff := cmp.Diff([]string{"xy", "x"}, got); diff != "" {
		t.Fatalf("change events mismatch (-want +got):\n%s", diff)
	}
}

func TestComposer_ToolbarDispatch(t *testing.T) {
	c := newComposer(t, Options{Text: "the quick fox"})
	c.Buffer().SetCursor(buffer.Pos{Offset: 4})

	if handled, err := c.Press(ButtonBold); err != nil || !handled {
		t.Fatalf("bold: handled=%v err=%v", handled, err)
	}
	if got, want := c.Text(), "the **quick** fox"; got != want {
		t.Fatalf("bold: got %q, want %q", got, want)
	}

	if handled, _ := c.Press(ButtonUnderline); handled {
		t.Fatalf("underline reported handled")
	}

	if handled, err := c.Press(ButtonCheckList); err != nil || !handled {
		t.Fatalf("checklist: handled=%v err=%v", handled, err)
	}
	if got, want := c.Text(), "- [ ] the **quick** fox"; got != want {
		t.Fatalf("checklist: got %q, want %q", got, want)
	}
	if items := c.Preview().Document().Items(); len(items) != 1 || items[0].Checked {
		t.Fatalf("preview items: got %d", len(items))
	}
}

func TestComposer_CodeBlockUsesSelectedLanguage(t *testing.T) {
	c := newComposer(t, Options{Text: "hello", Language: "python"})
	if got := c.Language(); got != "python" {
		t.Fatalf("language: got %q", got)
	}

	if _, err := c.Press(ButtonCodeBlock); err != nil {
		t.Fatalf("code block: %v", err)
	}
	if got, want := c.Text(), "```python\nhello\n```"; got != want {
		t.Fatalf("code block: got %q, want %q", got, want)
	}
	if _, err := c.Press(ButtonCodeBlock); err != nil {
		t.Fatalf("code block again: %v", err)
	}
	if got, want := c.Text(), "hello"; got != want {
		t.Fatalf("unwrap: got %q, want %q", got, want)
	}
}

func TestComposer_ValidationErrors(t *testing.T) {
	c := newComposer(t, Options{Text: "text"})

	if _, err := c.Press(ButtonQuote); !errors.Is(err, format.ErrEmptySelection) {
		t.Fatalf("quote without selection: got %v", err)
	}
	if _, err := c.Link("https://example.com"); !errors.Is(err, format.ErrEmptySelection) {
		t.Fatalf("link without selection: got %v", err)
	}
	if _, err := c.Press(ButtonLink); !errors.Is(err, ErrLinkNeedsURL) {
		t.Fatalf("link button: got %v", err)
	}
	if err := c.SetLanguage("cobol"); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("SetLanguage: got %v", err)
	}
	if got := c.Language(); got != plugins.DefaultLanguage {
		t.Fatalf("language after rejected change: got %q", got)
	}
	if _, err := New(Options{Language: "cobol"}); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("New with bad language: got %v", err)
	}
	if got, want := c.Text(), "text"; got != want {
		t.Fatalf("text changed: got %q, want %q", got, want)
	}
}

func TestComposer_InstancesAreIndependent(t *testing.T) {
	a := newComposer(t, Options{Text: "- a"})
	b := newComposer(t, Options{Text: "- b"})
	a.Close()

	b.Buffer().SetCursor(buffer.Pos{Offset: 3})
	enter(t, b)
	if diff := cmp.Diff([]string{"- b", "- "}, blocks(b)); diff != "" {
		t.Fatalf("second instance (-want +got):\n%s", diff)
	}
	if handled, _ := a.Key(plugins.KeyEnter); handled {
		t.Fatalf("closed instance still handles keys")
	}
}

func TestButtons(t *testing.T) {
	bs := Buttons()
	if len(bs) != 11 || bs[0] != ButtonBold || bs[len(bs)-1] != ButtonCodeBlock {
		t.Fatalf("Buttons: got %v", bs)
	}
	if got := ButtonCodeBlock.String(); got != "code block" {
		t.Fatalf("String: got %q", got)
	}
}
