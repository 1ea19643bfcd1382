package models

// JobPosting описывает вакансию из фикстур. После загрузки не изменяется.
type JobPosting struct {
	ID          int        `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Company     string     `yaml:"company" json:"company"`
	Location    string     `yaml:"location" json:"location"`
	Salary      string     `yaml:"salary" json:"salary"`
	SalaryType  SalaryType `yaml:"salary_type" json:"salary_type"`
	Duration    string     `yaml:"duration" json:"duration"`
	Skills      []string   `yaml:"skills" json:"skills"`
	Posted      string     `yaml:"posted" json:"posted"`
	Description string     `yaml:"description" json:"description,omitempty"`
}
