package profile

import (
	"fmt"
	"strings"

	"mfuertes.net/portfolio/internal/content"
	"mfuertes.net/portfolio/internal/query"
)

const (
	NoExperience    = "No experience found matching your query."
	NoProjects      = "No projects found matching your query."
	NoContributions = "No contributions found matching your query."
)

// ProfileText renders the bio and contact block.
func (d *Data) ProfileText() string {
	p := d.Profile
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n**%s**\n\n%s\n\n", p.Name, p.Title, p.Bio)
	b.WriteString("## Contact\n")
	fmt.Fprintf(&b, "- Email: %s\n", p.Email)
	fmt.Fprintf(&b, "- GitHub: %s\n", p.GitHub)
	fmt.Fprintf(&b, "- LinkedIn: %s\n", p.LinkedIn)
	fmt.Fprintf(&b, "- Website: %s\n", p.Website)
	fmt.Fprintf(&b, "- Location: %s\n", p.Location)
	return b.String()
}

// TechStackText renders the skills block.
func (d *Data) TechStackText() string {
	var b strings.Builder
	b.WriteString("# Technical Stack & Skills\n")
	section := func(title string, items []string) {
		fmt.Fprintf(&b, "\n## %s\n", title)
		for _, it := range items {
			fmt.Fprintf(&b, "- %s\n", it)
		}
	}
	section("Programming Languages", d.Skills.Languages)
	section("Frameworks & Tools", d.Skills.Frameworks)
	section("Cloud & Infrastructure", d.Skills.CloudInfrastructure)
	section("Domain Expertise", d.Skills.Domains)
	return b.String()
}

// ExperienceText renders the experiences whose company contains company.
func (d *Data) ExperienceText(company string) string {
	found := query.Find(d.Experience, query.Contains(func(e Experience) string { return e.Company }, company))
	if len(found) == 0 {
		return NoExperience
	}
	var b strings.Builder
	b.WriteString("# Professional Experience\n\n")
	for _, e := range found {
		fmt.Fprintf(&b, "## %s - %s\n", e.Company, e.Position)
		fmt.Fprintf(&b, "**%s** | %s\n\n", e.Period, e.Location)
		fmt.Fprintf(&b, "%s\n\n", e.Summary)
		b.WriteString("### Key Highlights\n")
		for _, h := range e.Highlights {
			fmt.Fprintf(&b, "- %s\n", h)
		}
		b.WriteString("\n### Tech Stack\n")
		for _, s := range e.Stack {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ProjectsText renders the projects whose name or description contains q.
func (d *Data) ProjectsText(q string) string {
	found := query.Find(d.FeaturedProjects, query.ContainsAny(q,
		func(p Project) string { return p.Name },
		Project.description,
	))
	if len(found) == 0 {
		return NoProjects
	}
	var b strings.Builder
	b.WriteString("# Featured Projects\n\n")
	for _, p := range found {
		fmt.Fprintf(&b, "## %s\n", p.Name)
		if p.Description != nil {
			fmt.Fprintf(&b, "%s\n\n", *p.Description)
		} else {
			b.WriteString("No description\n\n")
		}
		fmt.Fprintf(&b, "- URL: %s\n", p.URL)
		if p.Stars > 0 {
			fmt.Fprintf(&b, "- Stars: %d\n", p.Stars)
		}
		if p.Forks > 0 {
			fmt.Fprintf(&b, "- Forks: %d\n", p.Forks)
		}
		if len(p.Topics) > 0 {
			fmt.Fprintf(&b, "- Topics: %s\n", strings.Join(p.Topics, ", "))
		}
		if p.Status != "" {
			fmt.Fprintf(&b, "- Status: %s\n", p.Status)
		}
		if p.Period != "" {
			fmt.Fprintf(&b, "- Period: %s\n", p.Period)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// EducationText renders the education block.
func (d *Data) EducationText() string {
	var b strings.Builder
	b.WriteString("# Education\n\n")
	for _, e := range d.Education {
		fmt.Fprintf(&b, "## %s\n", e.Degree)
		fmt.Fprintf(&b, "**%s** | %s\n", e.Institution, e.Period)
		fmt.Fprintf(&b, "%s\n", e.Location)
		if e.Note != "" {
			fmt.Fprintf(&b, "\n%s\n", e.Note)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ContributionsText renders the contribution records whose title or
// repository contains q.
func ContributionsText(records []*content.Record, q string) string {
	found := query.Records(records, q)
	if len(found) == 0 {
		return NoContributions
	}
	var b strings.Builder
	b.WriteString("# Open Source Contributions\n\n")
	for _, r := range found {
		fmt.Fprintf(&b, "## %s\n", r.Title)
		if c := r.Contribution; c != nil {
			fmt.Fprintf(&b, "**%s#%d** | %s\n\n", c.Repo, c.PRNumber, c.State)
			fmt.Fprintf(&b, "- URL: %s\n", r.URL)
			fmt.Fprintf(&b, "- Opened: %s\n", r.Date.Format("2006-01-02"))
			if c.MergedAt != nil {
				fmt.Fprintf(&b, "- Merged: %s\n", c.MergedAt.Format("2006-01-02"))
			}
			fmt.Fprintf(&b, "- Changes: +%d / -%d\n", c.Additions, c.Deletions)
		} else {
			fmt.Fprintf(&b, "- URL: %s\n", r.URL)
		}
		b.WriteString("\n")
	}
	return b.String()
}
