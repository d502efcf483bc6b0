package prototype

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/require"
)

func TestResumeCloneIsDeep(t *testing.T) {
	r := NewResume("John Doe", 28)
	r.AddExperience("ABC Corp")
	r.AddSkill("Rust")

	c := r.Clone().(*Resume)
	c.SetName("Jane Smith")
	c.AddExperience("New Corp")
	c.AddSkill("Go")
	c.Skills[0] = "Python"

	require.Equal(t, "John Doe", r.Name)
	require.Equal(t, []string{"ABC Corp"}, r.Experience)
	require.Equal(t, []string{"Rust"}, r.Skills)
	require.Equal(t, []string{"Python", "Go"}, c.Skills)
	require.Equal(t, "Jane Smith's Resume", c.Title())
}

func TestReportClone(t *testing.T) {
	r := NewReport("Q4 Sales Report", "Sales Department")
	r.SetContent("on target")

	c := r.Clone().(*Report)
	require.Equal(t, r, c)
	require.NotSame(t, r, c)

	c.SetTitle("Annual Technical Report")
	require.Equal(t, "Q4 Sales Report", r.Title())
	require.Equal(t, "Annual Technical Report", c.Title())
	require.Equal(t, time.Now().UTC().Format(time.DateOnly), r.Date)
}

func TestManagerCreate(t *testing.T) {
	m := NewManager(io.Discard)
	name := randomdata.FullName(randomdata.RandomGender)
	tpl := NewResume(name, 30)
	tpl.AddSkill("Go")
	require.NoError(t, m.Register("resume", tpl))

	// mutating the caller's copy leaves the stored template alone
	tpl.AddSkill("Rust")

	doc, err := m.Create("resume")
	require.NoError(t, err)
	got := doc.(*Resume)
	require.Equal(t, name, got.Name)
	require.Equal(t, []string{"Go"}, got.Skills)

	got.AddSkill("C")
	again, err := m.Create("resume")
	require.NoError(t, err)
	require.Equal(t, []string{"Go"}, again.(*Resume).Skills)
}

func TestManagerUnknownTemplate(t *testing.T) {
	m := NewManager(io.Discard)
	_, err := m.Create("missing")
	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestManagerUnregister(t *testing.T) {
	m := NewManager(io.Discard)
	require.NoError(t, m.Register("resume", NewResume("Ann", 20)))
	require.NoError(t, m.Register("report", NewReport("Q4", "Sales")))

	clone, err := m.Create("resume")
	require.NoError(t, err)

	require.NoError(t, m.Unregister("resume"))
	require.Equal(t, []string{"report"}, m.Templates())
	_, err = m.Create("resume")
	require.ErrorIs(t, err, ErrTemplateNotFound)
	require.ErrorIs(t, m.Unregister("resume"), ErrTemplateNotFound)
	require.Equal(t, "Ann's Resume", clone.Title())

	// the name can be registered again
	require.NoError(t, m.Register("resume", NewResume("Bob", 30)))
	require.Equal(t, []string{"report", "resume"}, m.Templates())
}

func TestManagerTemplates(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(&buf)
	require.NoError(t, m.Register("b", NewReport("B", "x")))
	require.NoError(t, m.Register("a", NewResume("Ann", 20)))
	require.NoError(t, m.Register("b", NewReport("B2", "x")))
	require.Equal(t, []string{"b", "a"}, m.Templates())

	m.ListTemplates()
	require.Contains(t, buf.String(), "  - b: B2\n")
	require.Contains(t, buf.String(), "  - a: Ann's Resume\n")
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	out := buf.String()
	require.Contains(t, out, "Name: Jane Smith")
	require.Contains(t, out, "Title: Annual Technical Report")
	require.Contains(t, out, "  4. Go\n")
}
