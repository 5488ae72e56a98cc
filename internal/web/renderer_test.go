package web

import (
	"strings"
	"testing"
	"time"
)

type indexData struct {
	Name        string
	Known       bool
	Error       string
	CurrentTime time.Time
}

func TestRenderer_Index(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	var out strings.Builder
	data := indexData{Name: "alice", Known: true, CurrentTime: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	if err := r.Render(&out, "index.html", data, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	page := out.String()
	if !strings.Contains(page, "Hello, alice!") {
		t.Errorf("expected greeting for alice, got:\n%s", page)
	}
	if !strings.Contains(page, "Happy to see you again!") {
		t.Errorf("expected known-visitor message, got:\n%s", page)
	}
	if !strings.Contains(page, "2024-05-01 12:00:00") {
		t.Errorf("expected formatted time, got:\n%s", page)
	}
}

func TestRenderer_IndexStranger(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	var out strings.Builder
	if err := r.Render(&out, "index.html", indexData{CurrentTime: time.Now().UTC()}, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out.String(), "Hello, Stranger!") {
		t.Errorf("expected stranger greeting, got:\n%s", out.String())
	}
}

func TestRenderer_IndexEscapesName(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	var out strings.Builder
	data := indexData{Name: "<script>alert(1)</script>", CurrentTime: time.Now().UTC()}
	if err := r.Render(&out, "index.html", data, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out.String(), "<script>alert(1)</script>") {
		t.Errorf("name must be HTML-escaped")
	}
}

func TestRenderer_User(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	var out strings.Builder
	if err := r.Render(&out, "user.html", struct{ Name string }{"bob"}, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out.String(), "bob") {
		t.Errorf("expected the page to contain the name, got:\n%s", out.String())
	}
}

func TestRenderMail_NewUser(t *testing.T) {
	text, html, err := RenderMail("new_user", struct{ Username string }{"alice"})
	if err != nil {
		t.Fatalf("RenderMail: %v", err)
	}
	if !strings.Contains(text, "alice") {
		t.Errorf("text body missing username:\n%s", text)
	}
	if !strings.Contains(html, "<strong>alice</strong>") {
		t.Errorf("html body missing username:\n%s", html)
	}
}

func TestRenderMail_UnknownTemplate(t *testing.T) {
	if _, _, err := RenderMail("no_such_template", nil); err == nil {
		t.Fatalf("expected an error for a missing template")
	}
}
