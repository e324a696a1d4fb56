package content

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/moh-adedamola/portfolio/errs"
	"github.com/moh-adedamola/portfolio/models"
)

func validate(doc *document) error {
	seen := make(map[string]int, len(doc.Projects))
	for i, p := range doc.Projects {
		location := fmt.Sprintf("projects[%d]", i)
		if err := validateProject(p); err != nil {
			return errs.NewCatalogError(location, err)
		}
		title := strings.TrimSpace(p.Title)
		if first, dup := seen[title]; dup {
			return errs.NewCatalogError(fmt.Sprintf("%s (first seen at projects[%d])", location, first), errs.NewDuplicateTitleError(title))
		}
		seen[title] = i
	}

	links := map[string]string{
		"profile.resume":      doc.Profile.Resume.Href,
		"profile.allProjects": doc.Profile.AllProjects.Href,
	}
	for i, c := range doc.Contact.Channels {
		links[fmt.Sprintf("contact.channels[%d]", i)] = c.Link.Href
	}
	for i, s := range doc.Contact.Socials {
		links[fmt.Sprintf("contact.socials[%d]", i)] = s.Link.Href
	}
	for location, href := range links {
		if href == "" {
			continue
		}
		if err := validateOutbound("href", href, "http", "https", "mailto", "tel"); err != nil {
			return errs.NewCatalogError(location, err)
		}
	}

	return nil
}

func validateProject(p models.Project) error {
	required := []struct {
		field string
		value string
	}{
		{"title", p.Title},
		{"problem", p.Problem},
		{"solution", p.Solution},
		{"impact", p.Impact},
		{"details", p.Details},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errs.NewMissingRequiredFieldError(r.field)
		}
	}

	if link, ok := p.DemoURL(); ok {
		if err := validateOutbound("link", link, "http", "https"); err != nil {
			return err
		}
	}
	if link, ok := p.SourceURL(); ok {
		if err := validateOutbound("githubLink", link, "http", "https"); err != nil {
			return err
		}
	}
	return nil
}

// validateOutbound checks that raw is an absolute URL with one of the schemes.
func validateOutbound(field, raw string, schemes ...string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errs.NewInvalidFieldError(field, err.Error())
	}
	for _, s := range schemes {
		if strings.EqualFold(u.Scheme, s) {
			if (s == "http" || s == "https") && u.Host == "" {
				return errs.NewInvalidFieldError(field, "missing host")
			}
			return nil
		}
	}
	return errs.NewInvalidFieldError(field, fmt.Sprintf("scheme %q not allowed", u.Scheme))
}
