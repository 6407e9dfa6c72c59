// Package settings holds the placeholder shown where app preferences will live.
package settings

// StatusComingSoon marks a page that has no functionality yet.
const StatusComingSoon = "coming_soon"

type Page struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// ComingSoon returns the settings placeholder.
func ComingSoon() Page {
	return Page{
		Title:    "Settings",
		Subtitle: "Manage your preferences",
		Status:   StatusComingSoon,
		Message:  "App settings and preferences will be available here soon.",
	}
}

func (p Page) String() string {
	return p.Title + "\n" + p.Subtitle + "\n\nComing Soon\n" + p.Message
}
