// Package suggest filters a suggestion catalog against a partial placeholder
// name and tracks the highlighted entry of the suggestion list.
package suggest

// Item is one entry of the suggestion catalog.
type Item struct {
	// Value is inserted into the document and uniquely identifies the item.
	Value string `json:"value" yaml:"value" toml:"value"`

	// Label is shown in the list. Defaults to Value when empty.
	Label string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`

	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`

	// DocsURL points at reference documentation for the value.
	DocsURL string `json:"docs_url,omitempty" yaml:"docs_url,omitempty" toml:"docs_url,omitempty"`

	// Link is attached to the category label.
	Link string `json:"link,omitempty" yaml:"link,omitempty" toml:"link,omitempty"`
}

// DisplayLabel returns Label, or Value when no label is set.
func (i Item) DisplayLabel() string {
	if i.Label != "" {
		return i.Label
	}
	return i.Value
}
