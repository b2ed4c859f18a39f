package valueobjects

// Artist is a credited performer
type Artist struct {
	Name string `json:"name" yaml:"name"`
	URI  string `json:"uri,omitempty" yaml:"uri,omitempty"`
}

// GetName returns the artist name
func (a Artist) GetName() string {
	return a.Name
}

// Image is one resolution of a cover or avatar
type Image struct {
	URL    string `json:"url" yaml:"url"`
	Width  int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height int    `json:"height,omitempty" yaml:"height,omitempty"`
}

// GetURL returns the image location
func (i Image) GetURL() string {
	return i.URL
}
