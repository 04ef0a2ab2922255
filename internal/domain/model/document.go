package model

// RawDocument is a fetched resource before parsing.
type RawDocument struct {
	URL         string
	ContentType string
	Body        []byte
}
