package ai

import (
	"fmt"
	"strings"

	"resume-builder/internal/model"
)

// summaryPrompt frames the document and the target job description for a
// summary rewrite. Experience entries are inlined as compact context.
func summaryPrompt(doc model.Document, jobDescription string) string {
	var b strings.Builder

	b.WriteString("You are a professional resume writer. Write a concise professional summary (2-3 sentences) for the candidate below")
	if strings.TrimSpace(jobDescription) != "" {
		b.WriteString(", tailored to the target job description")
	}
	b.WriteString(".\n\n")

	b.WriteString("Candidate:\n")
	if doc.PersonalInfo.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", doc.PersonalInfo.Name)
	}
	if doc.Summary != "" {
		fmt.Fprintf(&b, "Current summary: %s\n", doc.Summary)
	}
	if skills := model.RenderSkills(doc.Skills); len(skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(skills, ", "))
	}
	for _, exp := range doc.Experience {
		if exp.Company == "" && exp.Role == "" {
			continue
		}
		fmt.Fprintf(&b, "Experience: %s at %s (%s)\n", exp.Role, exp.Company, exp.Date)
		for _, bullet := range exp.BulletPoints {
			if strings.TrimSpace(bullet) != "" {
				fmt.Fprintf(&b, "  - %s\n", bullet)
			}
		}
	}

	if strings.TrimSpace(jobDescription) != "" {
		fmt.Fprintf(&b, "\nTarget job description:\n%s\n", jobDescription)
	}

	b.WriteString("\nRespond with the summary text only. No headings, no quotes, no markdown.")
	return b.String()
}

// bulletsPrompt asks for a JSON string array of rewritten bullet points for
// one experience entry.
func bulletsPrompt(entry model.Experience, jobDescription string) string {
	var b strings.Builder

	b.WriteString("You are a professional resume writer. Rewrite the bullet points for the experience entry below into 3-5 strong, achievement-oriented bullet points")
	if strings.TrimSpace(jobDescription) != "" {
		b.WriteString(", tailored to the target job description")
	}
	b.WriteString(".\n\n")

	fmt.Fprintf(&b, "Role: %s\nCompany: %s\nDates: %s\n", entry.Role, entry.Company, entry.Date)
	if len(entry.BulletPoints) > 0 {
		b.WriteString("Current bullet points:\n")
		for _, bullet := range entry.BulletPoints {
			if strings.TrimSpace(bullet) != "" {
				fmt.Fprintf(&b, "- %s\n", bullet)
			}
		}
	}

	if strings.TrimSpace(jobDescription) != "" {
		fmt.Fprintf(&b, "\nTarget job description:\n%s\n", jobDescription)
	}

	b.WriteString("\nRespond with a JSON array of strings and nothing else. Example: [\"Led X\", \"Built Y\"]")
	return b.String()
}
