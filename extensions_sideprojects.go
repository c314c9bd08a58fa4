//go:build sideprojects

package jsonresume

// Extensions holds the sideProjects list, compiled in by -tags sideprojects.
type Extensions struct {
	SideProjects []Project `json:"sideProjects,omitempty"`
}
