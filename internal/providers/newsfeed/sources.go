package newsfeed

// Source describes one headline page and where its articles live in the markup.
type Source struct {
	Name string
	URL  string
	// Item selects one element per article; the other selectors are relative to it.
	Item  string
	Title string
	Link  string
	// Time selects the element holding the publish time, read from TimeAttr or its text.
	Time     string
	TimeAttr string
}

// DefaultSources are scraped when none are configured.
var DefaultSources = []Source{
	{
		Name:     "NBA.com",
		URL:      "https://www.nba.com/news",
		Item:     "article",
		Title:    "h2, h3",
		Link:     "a[href]",
		Time:     "time",
		TimeAttr: "datetime",
	},
	{
		Name:     "ESPN",
		URL:      "https://www.espn.com/nba/",
		Item:     "article, .contentItem",
		Title:    "h1, h2, .contentItem__title",
		Link:     "a[href]",
		Time:     "time, [data-date]",
		TimeAttr: "datetime",
	},
}
