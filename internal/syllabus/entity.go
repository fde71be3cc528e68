package syllabus

type Topic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SubjectArea string `json:"subjectArea"`
}

var catalog = []Topic{
	{ID: "electronics-semiconductors", Name: "Semiconductor Physics", SubjectArea: "Electronics"},
	{ID: "cs-datastructures", Name: "Data Structures", SubjectArea: "Computer Science"},
	{ID: "communication-systems", Name: "Communication Systems", SubjectArea: "Electronics"},
	{ID: "computer-networks", Name: "Computer Networks", SubjectArea: "Computer Science"},
	{ID: "operating-systems", Name: "Operating Systems", SubjectArea: "Computer Science"},
	{ID: "algorithms", Name: "Algorithms", SubjectArea: "Computer Science"},
	{ID: "cyber-security", Name: "Cyber Security", SubjectArea: "Computer Science"},
	{ID: "cryptography", Name: "Cryptography", SubjectArea: "Computer Science"},
	{ID: "information-theory", Name: "Information Theory", SubjectArea: "Electronics"},
	{ID: "digital-electronics", Name: "Digital Electronics", SubjectArea: "Electronics"},
	{ID: "analog-circuits", Name: "Analog Circuits", SubjectArea: "Electronics"},
	{ID: "database-management", Name: "Database Management", SubjectArea: "Computer Science"},
	{ID: "software-engineering", Name: "Software Engineering", SubjectArea: "Computer Science"},
	{ID: "web-technologies", Name: "Web Technologies", SubjectArea: "Computer Science"},
	{ID: "artificial-intelligence", Name: "Artificial Intelligence", SubjectArea: "Computer Science"},
	{ID: "machine-learning", Name: "Machine Learning", SubjectArea: "Computer Science"},
}

// Catalog returns the static topic catalog served over HTTP.
func Catalog() []Topic {
	out := make([]Topic, len(catalog))
	copy(out, catalog)
	return out
}

// DiagnosticTopics is the flat topic-id list diagnostics draw questions from.
func DiagnosticTopics() []string {
	return []string{
		"digital_electronics",
		"analog_circuits",
		"communication_systems",
		"computer_networks",
		"operating_systems",
		"data_structures",
		"algorithms",
		"cyber_security",
		"cryptography",
		"information_theory",
	}
}

// LessonTopics is the display-name list the daily lesson selector walks.
func LessonTopics() []string {
	return []string{
		"Data Structures", "Algorithms", "Computer Networks",
		"Operating Systems", "Database Management", "Cyber Security",
		"Digital Electronics", "Microprocessors", "Software Engineering",
		"Web Technologies", "Artificial Intelligence", "Machine Learning",
	}
}
