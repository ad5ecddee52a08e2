package formatter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/strafe/internal/commands"
	"github.com/desertthunder/strafe/internal/models"
	"github.com/desertthunder/strafe/internal/shared"
	th "github.com/desertthunder/strafe/internal/testing"
	"github.com/muesli/termenv"
)

func plainRenderer() *Renderer {
	profile := termenv.Ascii
	return NewRenderer(RendererOpts{Output: &bytes.Buffer{}, Profile: &profile})
}

func colorRenderer() *Renderer {
	profile := termenv.ANSI256
	return NewRenderer(RendererOpts{Output: &bytes.Buffer{}, Profile: &profile})
}

func moveCode(t *testing.T) uint8 {
	t.Helper()
	c, ok := commands.Lookup("Move")
	if !ok {
		t.Fatal("Move category missing")
	}
	return c.Code()
}

func TestRender(t *testing.T) {
	t.Run("columns", func(t *testing.T) {
		line, err := plainRenderer().Render(models.Command{Tick: 1, ActionType: moveCode(t), Bytes: []byte{0x00, 0x01}})
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}

		want := "Move" + strings.Repeat(" ", 31) + " " + "    1" + ": " + "00 01 "
		if line != want {
			t.Errorf("Render() = %q, want %q", line, want)
		}
	})

	t.Run("tick padding", func(t *testing.T) {
		tc := []struct {
			name string
			tick uint32
			want string
		}{
			{name: "single digit", tick: 7, want: "    7: "},
			{name: "exact width", tick: 12345, want: "12345: "},
			{name: "wider than column", tick: 123456, want: "123456: "},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				line, err := plainRenderer().Render(models.Command{Tick: tt.tick, ActionType: moveCode(t)})
				if err != nil {
					t.Fatalf("Render failed: %v", err)
				}

				tick := line[NameColumnWidth+1:]
				if tick != tt.want {
					t.Errorf("tick column = %q, want %q", tick, tt.want)
				}
			})
		}
	})

	t.Run("hex is uppercase with trailing space", func(t *testing.T) {
		line, err := plainRenderer().Render(models.Command{Tick: 10, ActionType: moveCode(t), Bytes: []byte{0xab, 0x0f, 0xff}})
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if !strings.HasSuffix(line, ": AB 0F FF ") {
			t.Errorf("unexpected payload rendering: %q", line)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		line, err := plainRenderer().Render(models.Command{Tick: 2, ActionType: 0xFE})
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if !strings.HasPrefix(line, "Unknown(0xFE)") || !strings.HasSuffix(line, "    2: ") {
			t.Errorf("unexpected line: %q", line)
		}
		if len(line) != NameColumnWidth+1+TickColumnWidth+2 {
			t.Errorf("expected line length %d, got %d", NameColumnWidth+1+TickColumnWidth+2, len(line))
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		r := colorRenderer()
		cmd := models.Command{Tick: 99, ActionType: moveCode(t), Bytes: make([]byte, 40)}
		first, err := r.Render(cmd)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		second, _ := r.Render(cmd)
		if first != second {
			t.Errorf("expected identical output, got %q and %q", first, second)
		}
	})

	t.Run("short payloads never fail", func(t *testing.T) {
		for n := 0; n < 40; n++ {
			if _, err := colorRenderer().Render(models.Command{ActionType: moveCode(t), Bytes: make([]byte, n)}); err != nil {
				t.Errorf("payload of %d bytes: %v", n, err)
			}
		}
	})

	t.Run("disabled colour matches plain profile", func(t *testing.T) {
		display := shared.DefaultConfig().Display
		display.Color = false
		profile := termenv.TrueColor
		r := NewRenderer(RendererOpts{Output: &bytes.Buffer{}, Display: &display, Profile: &profile})

		cmd := models.Command{Tick: 3, ActionType: moveCode(t), Bytes: make([]byte, 40)}
		got, _ := r.Render(cmd)
		want, _ := plainRenderer().Render(cmd)
		if got != want {
			t.Errorf("expected plain output %q, got %q", want, got)
		}
	})
}

func TestRenderColors(t *testing.T) {
	r := colorRenderer()
	payload := make([]byte, 40)
	for i := range payload {
		payload[i] = byte(i)
	}

	line, err := r.Render(models.Command{Tick: 1, ActionType: moveCode(t), Bytes: payload})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	t.Run("name token has its own colour", func(t *testing.T) {
		if !strings.HasPrefix(line, r.palette.name.Render("Move")) {
			t.Errorf("expected line to start with coloured name, got %q", line)
		}
		for _, e := range []Emphasis{EmphasisNone, EmphasisA, EmphasisB, EmphasisC} {
			if r.palette.Style(e).Render("Move") == r.palette.name.Render("Move") {
				t.Errorf("name colour reused by emphasis %s", e)
			}
		}
	})

	t.Run("each byte uses its class style", func(t *testing.T) {
		var want strings.Builder
		for i, v := range payload {
			want.WriteString(r.palette.Style(EmphasisAt(i)).Render(hex(v)))
			want.WriteByte(' ')
		}
		if !strings.HasSuffix(line, ": "+want.String()) {
			t.Errorf("payload rendering mismatch:\n got %q\nwant suffix %q", line, want.String())
		}
	})

	t.Run("classes render differently", func(t *testing.T) {
		seen := map[string]Emphasis{}
		for _, e := range []Emphasis{EmphasisNone, EmphasisA, EmphasisB, EmphasisC} {
			out := r.palette.Style(e).Render("00")
			if prev, ok := seen[out]; ok {
				t.Errorf("emphasis %s renders like %s", e, prev)
			}
			seen[out] = e
		}
	})
}

func TestNewRenderer(t *testing.T) {
	payload := make([]byte, 40)
	cmd := models.Command{Tick: 1, ActionType: moveCode(t), Bytes: payload}

	t.Run("colour on without a tty keeps emphasis", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("CLICOLOR", "")

		r := NewRenderer(RendererOpts{Output: &bytes.Buffer{}})
		line, err := r.Render(cmd)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if !strings.Contains(line, "\x1b[") {
			t.Errorf("expected escape codes in %q", line)
		}

		want := r.palette.Style(EmphasisC).Render(hex(payload[35]))
		if want == hex(payload[35]) || !strings.Contains(line, want) {
			t.Errorf("expected emphasis C styling %q in %q", want, line)
		}
	})

	t.Run("NO_COLOR drops escape codes", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		line, err := NewRenderer(RendererOpts{Output: &bytes.Buffer{}}).Render(cmd)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if strings.Contains(line, "\x1b[") {
			t.Errorf("unexpected escape codes in %q", line)
		}
	})

	t.Run("explicit profile wins over NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		line, err := colorRenderer().Render(cmd)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if !strings.Contains(line, "\x1b[") {
			t.Errorf("expected escape codes in %q", line)
		}
	})

	t.Run("colour disabled in config", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")

		display := shared.DefaultConfig().Display
		display.Color = false
		line, err := NewRenderer(RendererOpts{Output: &bytes.Buffer{}, Display: &display}).Render(cmd)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if strings.Contains(line, "\x1b[") {
			t.Errorf("unexpected escape codes in %q", line)
		}
	})
}

func hex(v byte) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[v>>4], digits[v&0x0F]})
}

func TestEmphasisAt(t *testing.T) {
	for i := 0; i < 40; i++ {
		var want Emphasis
		switch {
		case i == 2:
			want = EmphasisA
		case i == 3:
			want = EmphasisB
		case i >= 35 && i <= 38:
			want = EmphasisC
		default:
			want = EmphasisNone
		}
		if got := EmphasisAt(i); got != want {
			t.Errorf("EmphasisAt(%d) = %s, want %s", i, got, want)
		}
	}

	if EmphasisAt(2) == EmphasisAt(3) || EmphasisAt(2) == EmphasisAt(0) || EmphasisAt(3) == EmphasisAt(0) {
		t.Error("indices 0, 2 and 3 must all have different classes")
	}
}

func TestNamePadding(t *testing.T) {
	tc := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "short", input: "Move", want: 31},
		{name: "one below width", input: strings.Repeat("x", NameColumnWidth-1), want: 1},
		{name: "exact width", input: strings.Repeat("x", NameColumnWidth), wantErr: true},
		{name: "longer than width", input: strings.Repeat("x", NameColumnWidth+10), wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := namePadding(tt.input)
			if tt.wantErr {
				if !errors.Is(err, shared.ErrInvalidFormat) {
					t.Errorf("namePadding(%q) error = %v, want ErrInvalidFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("namePadding(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	cmds := []models.Command{
		{Tick: 1, ActionType: moveCode(t), Bytes: []byte{0x00, 0x01}},
		{Tick: 2, ActionType: 0xFE},
	}

	t.Run("one line per command", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := plainRenderer().Write(&buf, cmds)
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if n != 2 {
			t.Errorf("expected 2 lines written, got %d", n)
		}

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
		}
		if !strings.HasPrefix(lines[0], "Move ") || !strings.HasPrefix(lines[1], "Unknown(0xFE) ") {
			t.Errorf("unexpected lines: %q", lines)
		}
	})

	t.Run("write failure", func(t *testing.T) {
		if _, err := plainRenderer().Write(&th.FWriter{}, cmds); err == nil {
			t.Error("expected write error")
		}
	})

	t.Run("partial write failure", func(t *testing.T) {
		var buf bytes.Buffer
		w := th.NewLimitedWriter(1, 0, &buf)
		n, err := plainRenderer().Write(&w, cmds)
		if err == nil {
			t.Error("expected write error")
		}
		if n != 1 {
			t.Errorf("expected 1 line written, got %d", n)
		}
	})
}
