package library

// Game is one launchable program tracked by the library.
type Game struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
