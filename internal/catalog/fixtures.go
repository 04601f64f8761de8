package catalog

import "github.com/Amuniare/eventease/internal/model"

// fixtureEvents is the demo event data set.
var fixtureEvents = []model.Event{
	{
		ID:            1,
		Name:          "Annual Tech Conference 2025",
		Date:          "2025-03-15",
		Location:      "San Francisco Convention Center, CA",
		Description:   "Join industry leaders for the biggest tech conference of the year. Featuring keynote speakers, workshops, and networking opportunities.",
		Capacity:      500,
		Category:      "Technology",
		Registrations: 235,
	},
	{
		ID:            2,
		Name:          "Spring Networking Mixer",
		Date:          "2025-04-10",
		Location:      "Downtown Hotel Ballroom, NYC",
		Description:   "Connect with professionals from various industries in a relaxed, social atmosphere. Includes dinner and drinks.",
		Capacity:      150,
		Category:      "Networking",
		Registrations: 87,
	},
	{
		ID:            3,
		Name:          "Startup Pitch Competition",
		Date:          "2025-05-20",
		Location:      "Innovation Hub, Austin, TX",
		Description:   "Watch aspiring entrepreneurs pitch their startup ideas to a panel of investors. Grand prize: $50,000 in funding.",
		Capacity:      300,
		Category:      "Business",
		Registrations: 156,
	},
	{
		ID:            4,
		Name:          "Web Development Workshop",
		Date:          "2025-06-05",
		Location:      "Tech Academy, Seattle, WA",
		Description:   "Hands-on workshop covering modern web development practices, React, and deployment strategies.",
		Capacity:      80,
		Category:      "Education",
		Registrations: 72,
	},
	{
		ID:            5,
		Name:          "Corporate Leadership Summit",
		Date:          "2025-07-12",
		Location:      "Business Center, Chicago, IL",
		Description:   "Executive-level summit focusing on leadership strategies, team management, and organizational growth.",
		Capacity:      200,
		Category:      "Corporate",
		Registrations: 189,
	},
	{
		ID:            6,
		Name:          "Summer Music Festival",
		Date:          "2025-08-18",
		Location:      "Riverside Park, Portland, OR",
		Description:   "Three-day music festival featuring local and international artists across multiple genres.",
		Capacity:      2000,
		Category:      "Entertainment",
		Registrations: 1450,
	},
	{
		ID:            7,
		Name:          "AI and Machine Learning Symposium",
		Date:          "2025-09-22",
		Location:      "University Campus, Boston, MA",
		Description:   "Academic and industry experts discuss the latest advancements in artificial intelligence and machine learning.",
		Capacity:      400,
		Category:      "Technology",
		Registrations: 203,
	},
	{
		ID:            8,
		Name:          "Charity Gala Dinner",
		Date:          "2025-10-08",
		Location:      "Grand Ballroom, Los Angeles, CA",
		Description:   "Formal fundraising event supporting local education initiatives. Black-tie attire required.",
		Capacity:      250,
		Category:      "Charity",
		Registrations: 98,
	},
	{
		ID:            9,
		Name:          "Product Launch Event",
		Date:          "2025-11-15",
		Location:      "Innovation Center, Denver, CO",
		Description:   "Be the first to experience our revolutionary new product line. Includes live demos and exclusive early access.",
		Capacity:      350,
		Category:      "Corporate",
		Registrations: 127,
	},
	{
		ID:            10,
		Name:          "Year-End Celebration",
		Date:          "2025-12-20",
		Location:      "City Plaza, Miami, FL",
		Description:   "Ring in the new year early with food, entertainment, and community celebration.",
		Capacity:      1000,
		Category:      "Social",
		Registrations: 542,
	},
}
