package prototype

import (
	"fmt"
	"io"

	"github.com/reusedev/pattern-hub/tools"
)

const (
	resumeTemplate = "Resume Template"
	reportTemplate = "Report Template"
)

func Demo(w io.Writer) error {
	tools.Println(w, "📄 Prototype Pattern Example - Document Templates")
	tools.Rule(w, "=", 45)

	m := NewManager(w)

	resume := NewResume("John Doe", 28)
	resume.AddExperience("ABC Corp - Software Engineer (2020-2023)")
	resume.AddExperience("XYZ Inc - Junior Developer (2018-2020)")
	resume.AddSkill("Rust")
	resume.AddSkill("Python")
	resume.AddSkill("JavaScript")

	report := NewReport("Q4 Sales Report", "Sales Department")
	report.SetContent("This quarter's sales have reached the target...")

	if err := m.Register(resumeTemplate, resume); err != nil {
		return err
	}
	if err := m.Register(reportTemplate, report); err != nil {
		return err
	}
	m.ListTemplates()

	tools.Println(w, "=== Creating New Documents Using Prototype ===")

	doc, err := m.Create(resumeTemplate)
	if err != nil {
		return err
	}
	newResume, ok := doc.(*Resume)
	if !ok {
		return fmt.Errorf("%s is a %T, not a resume", resumeTemplate, doc)
	}
	newResume.SetName("Jane Smith")
	newResume.AddExperience("New Corp - Senior Engineer (2023-Present)")
	newResume.AddSkill("Go")

	original, err := m.Create(resumeTemplate)
	if err != nil {
		return err
	}
	tools.Println(w, "Original resume template:")
	original.Display(w)
	tools.Println(w, "Modified resume:")
	newResume.Display(w)

	doc, err = m.Create(reportTemplate)
	if err != nil {
		return err
	}
	newReport, ok := doc.(*Report)
	if !ok {
		return fmt.Errorf("%s is a %T, not a report", reportTemplate, doc)
	}
	newReport.SetTitle("Annual Technical Report")
	newReport.SetContent("Annual technical development summary...")

	original, err = m.Create(reportTemplate)
	if err != nil {
		return err
	}
	tools.Println(w, "Original report template:")
	original.Display(w)
	tools.Println(w, "Modified report:")
	newReport.Display(w)

	tools.Println(w, "=== Prototype Pattern Advantages ===")
	tools.Println(w, "1. Avoid repetitive initialization code")
	tools.Println(w, "2. Quickly create copies of complex objects")
	tools.Println(w, "3. Reduce the number of subclasses")
	tools.Println(w, "4. Provide an alternative to inheritance")
	tools.Println(w, "5. Deep copies keep slices in clones independent of the template")
	return nil
}
