package jsonresume

// Resume is the root of a JSON Resume document.
//
// Every field is optional. A nil pointer means the value was not provided;
// nil and empty slices are equivalent and both are omitted on encode.
type Resume struct {
	Basics       *Basics       `json:"basics,omitempty"`
	Work         []Work        `json:"work,omitempty"`
	Volunteer    []Volunteer   `json:"volunteer,omitempty"`
	Education    []Education   `json:"education,omitempty"`
	Awards       []Award       `json:"awards,omitempty"`
	Certificates []Certificate `json:"certificates,omitempty"`
	Publications []Publication `json:"publications,omitempty"`
	Skills       []Skill       `json:"skills,omitempty"`
	Languages    []Language    `json:"languages,omitempty"`
	Interests    []Interest    `json:"interests,omitempty"`
	References   []Reference   `json:"references,omitempty"`
	Projects     []Project     `json:"projects,omitempty"`
	// Extensions carries fields compiled in through build tags.
	Extensions
	Meta *Meta `json:"meta,omitempty"`
}

// Basics describes the person the résumé is about.
type Basics struct {
	Name  *string `json:"name,omitempty"`
	Label *string `json:"label,omitempty"` // e.g. Web Developer
	Image *string `json:"image,omitempty"` // URL to a JPEG or PNG
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	URL   *string `json:"url,omitempty"`
	// Summary is a short biography.
	Summary  *string   `json:"summary,omitempty"`
	Location Location  `json:"location"`
	Profiles []Profile `json:"profiles,omitempty"`
}

// Location is always present on Basics, even when all of its fields are absent.
type Location struct {
	// Address may span several lines separated by "\n".
	Address    *string `json:"address,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	City       *string `json:"city,omitempty"`
	// CountryCode is an ISO-3166-1 ALPHA-2 code such as US or IN.
	CountryCode *string `json:"countryCode,omitempty"`
	Region      *string `json:"region,omitempty"`
}

// Profile is an identity on a social network.
type Profile struct {
	Network  *string `json:"network,omitempty"`
	Username *string `json:"username,omitempty"`
	URL      *string `json:"url,omitempty"`
}

// Work is a job held at an employer.
type Work struct {
	Name        *string `json:"name,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
	// Positions lists several roles held at the same employer, each with its
	// own date range.
	Positions  []Position  `json:"positions,omitempty"`
	Position   *string     `json:"position,omitempty"`
	URL        *string     `json:"url,omitempty"`
	StartDate  *string     `json:"startDate,omitempty" resume:"date"`
	EndDate    *string     `json:"endDate,omitempty" resume:"date"`
	Highlights []Highlight `json:"highlights,omitempty"`
}

// Position is a role within a Work entry. Title is required on the wire.
type Position struct {
	Title     string  `json:"title" resume:"required"`
	StartDate *string `json:"startDate,omitempty" resume:"date"`
	EndDate   *string `json:"endDate,omitempty" resume:"date"`
}

// Volunteer is unpaid work for an organization.
type Volunteer struct {
	Organization *string     `json:"organization,omitempty"`
	Position     *string     `json:"position,omitempty"`
	URL          *string     `json:"url,omitempty"`
	StartDate    *string     `json:"startDate,omitempty" resume:"date"`
	EndDate      *string     `json:"endDate,omitempty" resume:"date"`
	Summary      *string     `json:"summary,omitempty"`
	Highlights   []Highlight `json:"highlights,omitempty"`
}

// Education is a period of study at an institution.
type Education struct {
	Institution *string `json:"institution,omitempty"`
	URL         *string `json:"url,omitempty"`
	// Degrees lists the degrees or certificates awarded by the institution.
	Degrees   []string `json:"degrees,omitempty"`
	Area      *string  `json:"area,omitempty"`      // e.g. Arts
	StudyType *string  `json:"studyType,omitempty"` // e.g. Bachelor
	StartDate *string  `json:"startDate,omitempty" resume:"date"`
	EndDate   *string  `json:"endDate,omitempty" resume:"date"`
	// Score is a grade point average such as 3.67/4.0.
	Score   *string  `json:"score,omitempty"`
	Courses []Course `json:"courses,omitempty"`
}

// Award is a prize or distinction received.
type Award struct {
	Title   *string `json:"title,omitempty"`
	Date    *string `json:"date,omitempty" resume:"date"`
	Awarder *string `json:"awarder,omitempty"`
	Summary *string `json:"summary,omitempty"`
}

// Certificate is a professional certification.
type Certificate struct {
	Name   *string `json:"name,omitempty"`
	Date   *string `json:"date,omitempty" resume:"date"`
	URL    *string `json:"url,omitempty"`
	Issuer *string `json:"issuer,omitempty"`
}

// Publication is a published article, book or paper.
type Publication struct {
	Name        *string `json:"name,omitempty"`
	Publisher   *string `json:"publisher,omitempty"`
	ReleaseDate *string `json:"releaseDate,omitempty" resume:"date"`
	URL         *string `json:"url,omitempty"`
	Summary     *string `json:"summary,omitempty"`
}

// Skill is an area of expertise with its related keywords.
type Skill struct {
	Name     *string   `json:"name,omitempty"`
	Level    *string   `json:"level,omitempty"` // e.g. Master
	Keywords []Keyword `json:"keywords,omitempty"`
}

// Language is a spoken language and the fluency in it.
type Language struct {
	Language *string `json:"language,omitempty"`
	Fluency  *string `json:"fluency,omitempty"`
}

// Interest is a personal interest.
type Interest struct {
	Name     *string   `json:"name,omitempty"`
	Keywords []Keyword `json:"keywords,omitempty"`
}

// Reference is a recommendation from a colleague or client.
type Reference struct {
	Name      *string `json:"name,omitempty"`
	Reference *string `json:"reference,omitempty"`
}

// Project is a career or side project.
type Project struct {
	Name        *string     `json:"name,omitempty"`
	Description *string     `json:"description,omitempty"`
	Highlights  []Highlight `json:"highlights,omitempty"`
	Duties      []Duty      `json:"duties,omitempty"`
	Profits     []Profit    `json:"profits,omitempty"`
	Features    []Feature   `json:"features,omitempty"`
	Keywords    []Keyword   `json:"keywords,omitempty"`
	StartDate   *string     `json:"startDate,omitempty" resume:"date"`
	EndDate     *string     `json:"endDate,omitempty" resume:"date"`
	URL         *string     `json:"url,omitempty"`
	Roles       []Role      `json:"roles,omitempty"`
	// Entity names the affiliated company or organization.
	Entity *string `json:"entity,omitempty"`
	// Type classifies the project: volunteering, talk, application, ...
	Type *string `json:"type,omitempty"`
}

// Feature describes a project feature in situation/task/action/result form.
// All fields are required on the wire.
type Feature struct {
	Name      string `json:"name" resume:"required"`
	Situation string `json:"situation" resume:"required"`
	Task      string `json:"task" resume:"required"`
	Action    string `json:"action" resume:"required"`
	Result    string `json:"result" resume:"required"`
}

// Meta holds the schema version and tooling configuration.
type Meta struct {
	Canonical *string `json:"canonical,omitempty"` // URL of the latest version of the document
	Version   *string `json:"version,omitempty"`   // SemVer, e.g. v1.0.0
	// LastModified uses ISO 8601 (YYYY-MM-DDThh:mm:ss). It is not a date
	// field for validation purposes.
	LastModified *string `json:"lastModified,omitempty"`
}

// String returns a pointer to s, for populating optional fields.
func String(s string) *string { return &s }
