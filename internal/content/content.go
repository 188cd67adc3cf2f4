// Package content holds the static marketing copy rendered by the site.
package content

// CTA is a call to action link.
type CTA struct {
	Label string
	Href  string
}

// Hero is the banner at the top of a page.
type Hero struct {
	Eyebrow   string
	Headline  string
	Subhead   string
	Primary   CTA
	Secondary CTA
}

// Stat is a single headline number.
type Stat struct {
	Value string
	Label string
}

// Step is one stage of the "how it works" strip.
type Step struct {
	Title string
	Body  string
}

// HomePage is the copy for the landing page.
type HomePage struct {
	Hero          Hero
	Stats         []Stat
	Steps         []Step
	FeaturedID    string
	Testimonial   string
	TestimonialBy string
}

// Segment is a partner-segment landing page.
type Segment struct {
	Slug     string
	Title    string
	Hero     Hero
	Benefits []string
	CTA      CTA
}

var joinCTA = CTA{Label: "Join the initiative", Href: "/join"}

var home = HomePage{
	Hero: Hero{
		Eyebrow:   "Expert medical second opinions",
		Headline:  "Be sure before you decide.",
		Subhead:   "Board-certified specialists from leading academic centers review your diagnosis and treatment plan, usually within five business days.",
		Primary:   joinCTA,
		Secondary: CTA{Label: "How it works", Href: "#how-it-works"},
	},
	Stats: []Stat{
		{Value: "1 in 5", Label: "reviews change the diagnosis"},
		{Value: "5 days", Label: "typical turnaround"},
		{Value: "40+", Label: "specialties covered"},
	},
	Steps: []Step{
		{Title: "Share your records", Body: "Upload imaging, pathology and notes, or let us collect them from your providers."},
		{Title: "Matched with a specialist", Body: "We pair your case with a sub-specialist who treats your condition every day."},
		{Title: "Receive your opinion", Body: "Get a written report and a video consultation to walk through it."},
	},
	FeaturedID:    "dr-elena-marsh",
	Testimonial:   "The review caught a staging error. My treatment plan changed completely.",
	TestimonialBy: "Maria, 54, breast cancer patient",
}

var segments = []Segment{
	{
		Slug:  "employers",
		Title: "For employers",
		Hero: Hero{
			Eyebrow:  "Employers",
			Headline: "Better outcomes for your people, lower costs for your plan.",
			Subhead:  "Offer expert second opinions as a benefit and reduce unnecessary surgeries and misdiagnoses.",
		},
		Benefits: []string{
			"No cost to employees at the point of care",
			"Quarterly outcomes and savings reports",
			"Launch in under 30 days with our communications kit",
		},
		CTA: joinCTA,
	},
	{
		Slug:  "health-plans",
		Title: "For health plans",
		Hero: Hero{
			Eyebrow:  "Health plans",
			Headline: "Get the diagnosis right the first time.",
			Subhead:  "Integrate specialist review into utilization management and complex case programs.",
		},
		Benefits: []string{
			"Eligibility file and claims integration",
			"Clinical review in more than 40 specialties",
			"Member engagement support from our care team",
		},
		CTA: joinCTA,
	},
	{
		Slug:  "brokers",
		Title: "For brokers and consultants",
		Hero: Hero{
			Eyebrow:  "Brokers",
			Headline: "A differentiated benefit your clients will notice.",
			Subhead:  "Bring a measurable quality-of-care program to every renewal conversation.",
		},
		Benefits: []string{
			"Ready-made ROI models for client presentations",
			"Dedicated partner manager",
			"Co-branded enrollment materials",
		},
		CTA: joinCTA,
	},
	{
		Slug:  "providers",
		Title: "For physicians",
		Hero: Hero{
			Eyebrow:  "Physicians",
			Headline: "Lend your expertise to patients who need it most.",
			Subhead:  "Join our network of reviewing specialists and consult on complex cases remotely.",
		},
		Benefits: []string{
			"Flexible remote case reviews",
			"Structured, records-complete case packets",
			"Competitive per-case compensation",
		},
		CTA: CTA{Label: "Apply to review", Href: "/join"},
	},
}

// Home returns the landing page copy.
func Home() HomePage { return home }

// Segments returns every partner segment in display order.
func Segments() []Segment {
	out := make([]Segment, len(segments))
	copy(out, segments)
	return out
}

// FindSegment returns the segment with the given slug.
func FindSegment(slug string) (Segment, bool) {
	for _, s := range segments {
		if s.Slug == slug {
			return s, true
		}
	}
	return Segment{}, false
}
