package figma

// FileResponse represents the response from the Figma file API endpoint.
// It contains the file metadata, the document tree, and the file's global
// definition tables for components, component sets, and styles.
type FileResponse struct {
	Name          string                  `json:"name"`
	LastModified  string                  `json:"lastModified"`
	Version       string                  `json:"version"`
	Document      Node                    `json:"document"`
	Components    map[string]Component    `json:"components"`
	ComponentSets map[string]ComponentSet `json:"componentSets"`
	Styles        map[string]Style        `json:"styles"`
	SchemaVersion int                     `json:"schemaVersion"`
}

// Component represents a Figma component definition with its metadata.
// Components are reusable design elements that can be instantiated throughout the file.
type Component struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ComponentSet represents a variant grouping of components.
type ComponentSet struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Style represents a published Figma style with its basic properties.
// Styles can be colors (FILL), text styles (TEXT), effects (EFFECT), or layout grids (GRID).
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StyleType   string `json:"styleType"`
}

// Node represents a single element in the Figma document tree hierarchy.
// Nodes can be frames, groups, text, components, component instances, or any
// other Figma element. Unrecognized node types still carry the common fields,
// so the tree walk can descend through them without special handling.
type Node struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Children   []Node `json:"children,omitempty"`
	Characters string `json:"characters,omitempty"`

	// ComponentID links an INSTANCE node to its component definition.
	ComponentID string `json:"componentId,omitempty"`

	// Styles maps a style slot (fill, text, grid, effect, stroke) to the
	// referenced style ID from the file's global styles table.
	Styles map[string]string `json:"styles,omitempty"`
}

// CommentsResponse represents the response from the Figma comments API endpoint.
type CommentsResponse struct {
	Comments []Comment `json:"comments"`
}

// Comment is a single comment attached to the file. Reply threading is not
// preserved; the pipeline treats comments as a flat list of annotations.
type Comment struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	User      User   `json:"user"`
}

// User identifies the author of a comment.
type User struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
}
