package catalog

// Default returns the built-in sample catalog used when no seed file is
// configured.
func Default() *Catalog {
	c, err := New(sampleJobs)
	if err != nil {
		// The sample set is compile-time data; a bad entry is a bug.
		panic(err)
	}
	return c
}

var sampleJobs = []Job{
	{
		ID:            "job-001",
		Title:         "Backend Engineer",
		Company:       "Flipkart",
		Location:      "Bangalore",
		Mode:          ModeHybrid,
		Experience:    2,
		SalaryRange:   "₹18-28 LPA",
		Skills:        []string{"Go", "SQL", "Kafka", "Docker"},
		Source:        SourceLinkedIn,
		PostedDaysAgo: 1,
		ApplyURL:      "https://www.flipkartcareers.com/jobs/backend-engineer",
	},
	{
		ID:            "job-002",
		Title:         "Frontend Developer",
		Company:       "Razorpay",
		Location:      "Bangalore",
		Mode:          ModeRemote,
		Experience:    1,
		SalaryRange:   "₹12-20 LPA",
		Skills:        []string{"React", "TypeScript", "CSS"},
		Source:        SourceNaukri,
		PostedDaysAgo: 3,
		ApplyURL:      "https://razorpay.com/jobs/frontend-developer",
	},
	{
		ID:            "job-003",
		Title:         "Full Stack Engineer",
		Company:       "Zerodha",
		Location:      "Bangalore",
		Mode:          ModeOnsite,
		Experience:    3,
		SalaryRange:   "₹20-35 LPA",
		Skills:        []string{"Go", "React", "PostgreSQL"},
		Source:        SourceCompany,
		PostedDaysAgo: 0,
		ApplyURL:      "https://zerodha.com/careers/full-stack-engineer",
	},
	{
		ID:            "job-004",
		Title:         "Data Engineer",
		Company:       "Swiggy",
		Location:      "Hyderabad",
		Mode:          ModeHybrid,
		Experience:    2,
		SalaryRange:   "₹15-25 LPA",
		Skills:        []string{"Python", "Spark", "SQL", "Airflow"},
		Source:        SourceLinkedIn,
		PostedDaysAgo: 5,
		ApplyURL:      "https://careers.swiggy.com/data-engineer",
	},
	{
		ID:            "job-005",
		Title:         "DevOps Engineer",
		Company:       "Zomato",
		Location:      "Gurgaon",
		Mode:          ModeOnsite,
		Experience:    4,
		SalaryRange:   "₹22-32 LPA",
		Skills:        []string{"Kubernetes", "Terraform", "AWS", "Docker"},
		Source:        SourceIndeed,
		PostedDaysAgo: 2,
		ApplyURL:      "https://www.zomato.com/careers/devops-engineer",
	},
	{
		ID:            "job-006",
		Title:         "Backend Developer",
		Company:       "CRED",
		Location:      "Bangalore",
		Mode:          ModeRemote,
		Experience:    3,
		SalaryRange:   "₹25-40 LPA",
		Skills:        []string{"Java", "Spring", "Kafka", "Redis"},
		Source:        SourceReferral,
		PostedDaysAgo: 7,
		ApplyURL:      "https://careers.cred.club/backend-developer",
	},
	{
		ID:            "job-007",
		Title:         "Machine Learning Engineer",
		Company:       "Fractal",
		Location:      "Mumbai",
		Mode:          ModeHybrid,
		Experience:    2,
		SalaryRange:   "₹16-26 LPA",
		Skills:        []string{"Python", "PyTorch", "SQL"},
		Source:        SourceNaukri,
		PostedDaysAgo: 4,
		ApplyURL:      "https://fractal.ai/careers/ml-engineer",
	},
	{
		ID:            "job-008",
		Title:         "Mobile Developer",
		Company:       "PhonePe",
		Location:      "Pune",
		Mode:          ModeOnsite,
		Experience:    1,
		SalaryRange:   "₹10-18 LPA",
		Skills:        []string{"Kotlin", "Android", "Jetpack Compose"},
		Source:        SourceLinkedIn,
		PostedDaysAgo: 6,
		ApplyURL:      "https://www.phonepe.com/careers/mobile-developer",
	},
	{
		ID:            "job-009",
		Title:         "Platform Engineer",
		Company:       "Freshworks",
		Location:      "Chennai",
		Mode:          ModeRemote,
		Experience:    5,
		SalaryRange:   "Competitive",
		Skills:        []string{"Go", "Kubernetes", "gRPC"},
		Source:        SourceAngelList,
		PostedDaysAgo: 9,
		ApplyURL:      "https://www.freshworks.com/careers/platform-engineer",
	},
	{
		ID:            "job-010",
		Title:         "QA Engineer",
		Company:       "BrowserStack",
		Location:      "Mumbai",
		Mode:          ModeHybrid,
		Experience:    2,
		SalaryRange:   "₹12-19 LPA",
		Skills:        []string{"Selenium", "Python", "CI/CD"},
		Source:        SourceIndeed,
		PostedDaysAgo: 8,
		ApplyURL:      "https://www.browserstack.com/careers/qa-engineer",
	},
	{
		ID:            "job-011",
		Title:         "Site Reliability Engineer",
		Company:       "Atlassian",
		Location:      "Bangalore",
		Mode:          ModeRemote,
		Experience:    4,
		SalaryRange:   "₹30-45 LPA",
		Skills:        []string{"Go", "Kubernetes", "Prometheus", "AWS"},
		Source:        SourceCompany,
		PostedDaysAgo: 2,
		ApplyURL:      "https://www.atlassian.com/company/careers/sre",
	},
	{
		ID:            "job-012",
		Title:         "Backend Engineer",
		Company:       "Meesho",
		Location:      "Bangalore",
		Mode:          ModeHybrid,
		Experience:    2,
		SalaryRange:   "₹15-25 LPA",
		Skills:        []string{"Java", "MySQL", "Redis"},
		Source:        SourceNaukri,
		PostedDaysAgo: 10,
		ApplyURL:      "https://www.meesho.io/jobs/backend-engineer",
	},
}
