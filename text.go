package jsonresume

// Single-value leaf types. Each one is its own named type so that, for
// example, a Duty cannot be appended to Roles without an explicit
// conversion. On the wire they are plain strings.

// Highlight is an accomplishment, e.g. "Increased profits by 20%".
type Highlight string

func (h Highlight) String() string { return string(h) }

// Course is a notable course, e.g. "H1302 - Introduction to American history".
type Course string

func (c Course) String() string { return string(c) }

// Keyword is a term attached to a skill, interest or project, e.g. "HTML".
type Keyword string

func (k Keyword) String() string { return string(k) }

// Duty is a responsibility carried on a project.
type Duty string

func (d Duty) String() string { return string(d) }

// Profit is a measurable benefit a project delivered.
type Profit string

func (p Profit) String() string { return string(p) }

// Role is a role held on a project, e.g. "Team Lead".
type Role string

func (r Role) String() string { return string(r) }
