package prototype

import (
	"fmt"
	"io"
	"time"

	"github.com/jinzhu/copier"
	"github.com/reusedev/pattern-hub/tools"
)

// Document is a prototype: new documents are made by cloning a template.
type Document interface {
	Clone() Document
	Title() string
	Display(w io.Writer)
}

type Resume struct {
	Name       string
	Age        uint32
	Experience []string
	Skills     []string
}

func NewResume(name string, age uint32) *Resume {
	return &Resume{Name: name, Age: age}
}

func (r *Resume) AddExperience(experience string) {
	r.Experience = append(r.Experience, experience)
}

func (r *Resume) AddSkill(skill string) {
	r.Skills = append(r.Skills, skill)
}

func (r *Resume) SetName(name string) {
	r.Name = name
}

func (r *Resume) Clone() Document {
	c := &Resume{}
	deepCopy(c, r)
	return c
}

func (r *Resume) Title() string {
	return fmt.Sprintf("%s's Resume", r.Name)
}

func (r *Resume) Display(w io.Writer) {
	tools.Println(w, "=== Resume ===")
	tools.Printf(w, "Name: %s\n", r.Name)
	tools.Printf(w, "Age: %d\n", r.Age)
	tools.Println(w, "Experience:")
	for i, exp := range r.Experience {
		tools.Printf(w, "  %d. %s\n", i+1, exp)
	}
	tools.Println(w, "Skills:")
	for i, skill := range r.Skills {
		tools.Printf(w, "  %d. %s\n", i+1, skill)
	}
	tools.Println(w)
}

type Report struct {
	Heading string
	Content string
	Author  string
	Date    string
}

// NewReport stamps the report with today's UTC date.
func NewReport(heading, author string) *Report {
	return &Report{Heading: heading, Author: author, Date: time.Now().UTC().Format(time.DateOnly)}
}

func (r *Report) SetContent(content string) {
	r.Content = content
}

func (r *Report) SetTitle(heading string) {
	r.Heading = heading
}

func (r *Report) Clone() Document {
	c := &Report{}
	deepCopy(c, r)
	return c
}

func (r *Report) Title() string {
	return r.Heading
}

func (r *Report) Display(w io.Writer) {
	tools.Println(w, "=== Report ===")
	tools.Printf(w, "Title: %s\n", r.Heading)
	tools.Printf(w, "Author: %s\n", r.Author)
	tools.Printf(w, "Date: %s\n", r.Date)
	tools.Printf(w, "Content: %s\n", r.Content)
	tools.Println(w)
}

// deepCopy only fails on mismatched kinds, which the callers never pass.
func deepCopy(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
}
