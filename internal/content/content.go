// Package content holds the portfolio's static content tables.
package content

import "github.com/verte-zerg/folio/internal/model"

// Profile is the page owner.
var Profile = model.Profile{
	Name:     "Jubuhan TT",
	Initials: "JT",
	Role:     "Software Engineer",
	Location: "Vengera, Kerala, India",
	Summary: "Recent Computer Science graduate skilled in web and app development using ReactJS, Flutter, Django, and Python. " +
		"Passionate about building scalable, user-centric solutions with a focus on UI/UX, machine learning, and blockchain innovation.",
	Bio: "Graduate with Bachelor of Technology in Computer Science and Engineering from Government Engineering College, " +
		"Sreekrishnapuram (CGPA: 8.12/10). I'm passionate about innovation and research-driven development, particularly " +
		"in sustainable technology and blockchain applications.",
}

// Skills are rendered as progress bars in the about region.
var Skills = []model.Skill{
	{Name: "Flutter", Icon: "📱", Level: 90},
	{Name: "React.js", Icon: "⚛", Level: 85},
	{Name: "Python", Icon: "🐍", Level: 90},
	{Name: "Django", Icon: "🎸", Level: 80},
	{Name: "C", Icon: "⚙", Level: 75},
	{Name: "Machine Learning", Icon: "🤖", Level: 80},
	{Name: "AWS", Icon: "☁", Level: 70},
	{Name: "GitHub", Icon: "🐙", Level: 85},
}

// Projects are rendered as cards in the projects region.
var Projects = []model.Project{
	{
		Title:       "Vehicle Pooling App using Blockchain",
		Date:        "Mar 2025",
		Description: "Built a decentralized carpooling application using Solidity smart contracts, IPFS for decentralized file storage, and Flutter for mobile frontend.",
		Tech:        []string{"Solidity", "IPFS", "Flutter", "Blockchain"},
		Gradient:    "purple-pink",
		Icon:        "🚗",
	},
	{
		Title:       "Matrix 2.0 – Official Hackathon Website",
		Date:        "2024",
		Description: "Designed and developed the official website for Matrix Hackathon hosted by IEEE SB GEC Palakkad. Ensured responsive design and smooth user experience.",
		Tech:        []string{"React", "Web Design", "Responsive Design"},
		Gradient:    "blue-cyan",
		Icon:        "🌐",
	},
	{
		Title:       "Blink – Eye Care Website",
		Date:        "Apr 2024",
		Description: "Developed a platform for vision testing and eye exercises. Features include interactive games to encourage healthy eye habits and early detection of visual issues.",
		Tech:        []string{"Web Development", "Interactive Games", "Healthcare"},
		Gradient:    "green-emerald",
		Icon:        "👁",
	},
}

// Experience lists positions, most recent first.
var Experience = []model.ExperienceEntry{
	{
		Title:        "Flutter Intern",
		Organization: "Current Position",
		Period:       "Jun 2, 2025 – Present",
		Description:  "Contributing to developing cross-platform mobile applications using Flutter and Dart. Responsible for UI implementation, API integration, and performance optimization.",
		Icon:         "📱",
		Status:       model.StatusCurrent,
	},
	{
		Title:        "Web Developer",
		Organization: "IEEE SB GEC PALAKKAD",
		Period:       "Jan 2024 – Feb 2025",
		Description:  "Contributed to official websites and design systems for IEEE initiatives.",
		Icon:         "💻",
		Status:       model.StatusCompleted,
	},
	{
		Title:        "Execom Member",
		Organization: "Kerala Blockchain Academy Innovation Club (KBAIC)",
		Period:       "Jan 2024 – Feb 2025",
		Description:  "Active member contributing to blockchain innovation projects at GEC Palakkad.",
		Icon:         "🔗",
		Status:       model.StatusCompleted,
	},
}

// Certifications are rendered after the experience timeline.
var Certifications = []model.Certification{
	{Name: "Programming, Data Structures, and Algorithms using Python", Provider: "NPTEL", Icon: "🐍"},
	{Name: "Python Programming", Provider: "Edgaadi", Icon: "🎓"},
	{Name: "Machine Learning", Provider: "SuperDataScience", Icon: "🤖"},
}

// Education is listed in the about region.
var Education = []model.Education{
	{
		Degree:      "B.Tech in Computer Science and Engineering",
		Institution: "Government Engineering College, Sreekrishnapuram",
		Details:     "2021–2025 | CGPA: 8.12/10 | Graduated",
	},
	{
		Degree:      "Plus Two (HSE)",
		Institution: "PPTMYHSS, Cherur",
		Details:     "2018–2020 | Score: 83%",
	},
}

// Achievements are listed under the skills.
var Achievements = []model.Achievement{
	{Title: "Best Web Designer 2024–2025", Issuer: "IEEE SB GEC PALAKKAD"},
}

// Links are the outbound addresses in the contact region.
var Links = []model.Link{
	{Kind: model.LinkMail, Label: "jubuhantt@gmail.com", URL: "mailto:jubuhantt@gmail.com"},
	{Kind: model.LinkPhone, Label: "+91 7034361499", URL: "tel:+917034361499"},
	{Kind: model.LinkLinkedIn, Label: "LinkedIn", URL: "https://linkedin.com/in/jubuhan-tt"},
	{Kind: model.LinkGitHub, Label: "GitHub", URL: "https://github.com/jubuhan"},
}

// LinkFor returns the first link of the given kind.
func LinkFor(kind model.LinkKind) (model.Link, bool) {
	for _, l := range Links {
		if l.Kind == kind {
			return l, true
		}
	}
	return model.Link{}, false
}
